package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rlourenco/commission-api/internal/domain"
	"github.com/rlourenco/commission-api/internal/usecases/commissioning"
	"github.com/rlourenco/commission-api/internal/usecases/commissioning/mocks"
	"github.com/rlourenco/commission-api/pkg/apiErrors"
	"github.com/rlourenco/commission-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func postCommission(t *testing.T, service commissioning.Calculator, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/commission", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	CalculateCommission(service)(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestCalculateCommission_Sucesso(t *testing.T) {
	service := commissioning.NewService()

	rec := postCommission(t, service,
		`{"localSalesCount":10,"foreignSalesCount":10,"averageSaleAmount":100.00}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var breakdown domain.CommissionBreakdown
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&breakdown))

	assert.True(t, breakdown.CompanyLocalCommission.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, breakdown.CompanyForeignCommission.Equal(decimal.RequireFromString("350.00")))
	assert.True(t, breakdown.CompanyTotalCommission.Equal(decimal.RequireFromString("550.00")))
	assert.True(t, breakdown.CompetitorLocalCommission.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, breakdown.CompetitorForeignCommission.Equal(decimal.RequireFromString("75.50")))
	assert.True(t, breakdown.CompetitorTotalCommission.Equal(decimal.RequireFromString("95.50")))
	assert.Equal(t, int64(10), breakdown.LocalSalesCount)
	assert.Equal(t, int64(10), breakdown.ForeignSalesCount)
}

func TestCalculateCommission_ValoresComoNumerosJSON(t *testing.T) {
	service := commissioning.NewService()

	rec := postCommission(t, service,
		`{"localSalesCount":10,"foreignSalesCount":10,"averageSaleAmount":100.00}`)

	require.Equal(t, http.StatusOK, rec.Code)

	// O cliente espera números JSON puros, sem aspas. Zeros à direita são
	// omitidos na serialização (550, 95.5); o valor numérico é o mesmo e a
	// formatação com 2 casas fica a cargo do cliente
	body := rec.Body.String()
	assert.Contains(t, body, `"companyTotalCommission":550,`)
	assert.Contains(t, body, `"competitorTotalCommission":95.5,`)
	assert.NotContains(t, body, `"companyTotalCommission":"`)
	assert.NotContains(t, body, `"competitorTotalCommission":"`)

	var breakdown domain.CommissionBreakdown
	require.NoError(t, json.NewDecoder(strings.NewReader(body)).Decode(&breakdown))
	assert.True(t, breakdown.CompanyTotalCommission.Equal(decimal.RequireFromString("550.00")))
	assert.True(t, breakdown.CompetitorTotalCommission.Equal(decimal.RequireFromString("95.50")))
}

func TestCalculateCommission_CorpoAusente(t *testing.T) {
	service := commissioning.NewService()

	tests := []struct {
		name string
		body string
	}{
		{name: "corpo vazio", body: ""},
		{name: "corpo null", body: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postCommission(t, service, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			apiErr := decodeError(t, rec)
			assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Error)
			assert.Equal(t, "Request body cannot be null", apiErr.Message)
		})
	}
}

func TestCalculateCommission_CorpoMalformado(t *testing.T) {
	service := commissioning.NewService()

	rec := postCommission(t, service, `{"localSalesCount":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Error)
}

func TestCalculateCommission_ErrosDeValidacao(t *testing.T) {
	service := commissioning.NewService()

	tests := []struct {
		name         string
		body         string
		expectedCode string
	}{
		{
			name:         "quantidade local negativa",
			body:         `{"localSalesCount":-5,"foreignSalesCount":10,"averageSaleAmount":100}`,
			expectedCode: apiErrors.ErrInvalidLocalCount,
		},
		{
			name:         "quantidade no exterior negativa",
			body:         `{"localSalesCount":5,"foreignSalesCount":-10,"averageSaleAmount":100}`,
			expectedCode: apiErrors.ErrInvalidForeignCount,
		},
		{
			name:         "ticket médio negativo",
			body:         `{"localSalesCount":5,"foreignSalesCount":10,"averageSaleAmount":-100}`,
			expectedCode: apiErrors.ErrInvalidAmount,
		},
		{
			name:         "quantidade acima do limite",
			body:         `{"localSalesCount":1000001,"foreignSalesCount":10,"averageSaleAmount":100}`,
			expectedCode: apiErrors.ErrCountTooLarge,
		},
		{
			name:         "ticket médio acima do limite",
			body:         `{"localSalesCount":5,"foreignSalesCount":10,"averageSaleAmount":1000000.01}`,
			expectedCode: apiErrors.ErrAmountTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postCommission(t, service, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			apiErr := decodeError(t, rec)
			assert.Equal(t, tt.expectedCode, apiErr.Error)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestCalculateCommission_ErroInesperadoDoServico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCalculator := mocks.NewMockCalculator(ctrl)
	mockCalculator.EXPECT().
		Calculate(gomock.Any()).
		Return(nil, errors.New("falha inesperada"))

	rec := postCommission(t, mockCalculator,
		`{"localSalesCount":1,"foreignSalesCount":1,"averageSaleAmount":1}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Error)
}

func TestCalculateCommission_EntradaRepassadaAoServico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCalculator := mocks.NewMockCalculator(ctrl)
	mockCalculator.EXPECT().
		Calculate(gomock.Any()).
		DoAndReturn(func(input *domain.SalesInput) (*domain.CommissionBreakdown, error) {
			require.NotNil(t, input)
			assert.Equal(t, int64(7), input.LocalSalesCount)
			assert.Equal(t, int64(3), input.ForeignSalesCount)
			assert.True(t, input.AverageSaleAmount.Equal(decimal.RequireFromString("123.45")))
			return &domain.CommissionBreakdown{}, nil
		})

	rec := postCommission(t, mockCalculator,
		`{"localSalesCount":7,"foreignSalesCount":3,"averageSaleAmount":123.45}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRateSchedule(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/commission/rates", nil)
	rec := httptest.NewRecorder()

	GetRateSchedule()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var schedule domain.RateSchedule
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&schedule))

	require.Len(t, schedule.Parties, 2)
	assert.Equal(t, "company", schedule.Parties[0].Party)
	assert.True(t, schedule.Parties[0].LocalRate.Equal(decimal.RequireFromString("0.20")))
	assert.True(t, schedule.Parties[0].ForeignRate.Equal(decimal.RequireFromString("0.35")))
	assert.Equal(t, "competitor", schedule.Parties[1].Party)
	assert.True(t, schedule.Parties[1].LocalRate.Equal(decimal.RequireFromString("0.02")))
	assert.True(t, schedule.Parties[1].ForeignRate.Equal(decimal.RequireFromString("0.0755")))
	assert.Equal(t, int64(1_000_000), schedule.MaxSalesCount)
}
