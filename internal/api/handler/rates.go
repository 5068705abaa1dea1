package handler

import (
	"net/http"

	"github.com/rlourenco/commission-api/internal/domain"
	"github.com/rlourenco/commission-api/pkg/apiErrors"
	"github.com/rlourenco/commission-api/pkg/log"
)

// GetRateSchedule retorna a tabela fixa de taxas e limites, usada pelo
// cliente para montar a legenda do comparativo
func GetRateSchedule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedule := domain.CurrentRateSchedule()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(schedule); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar tabela de taxas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error writing response")
			return
		}
	}
}
