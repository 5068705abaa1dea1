package handler

import (
	"net/http"

	"github.com/rlourenco/commission-api/internal/api/handler/router"
	"github.com/rlourenco/commission-api/internal/usecases/commissioning"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Commission(service commissioning.Calculator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/commission",
			Method:  http.MethodPost,
			Handler: CalculateCommission(service),
		},
		{
			Path:    "/v1/commission/rates",
			Method:  http.MethodGet,
			Handler: GetRateSchedule(),
		},
	}
}
