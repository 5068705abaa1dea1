package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/rlourenco/commission-api/internal/domain"
	"github.com/rlourenco/commission-api/internal/usecases/commissioning"
	"github.com/rlourenco/commission-api/pkg/apiErrors"
	"github.com/rlourenco/commission-api/pkg/log"
	"github.com/rlourenco/commission-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CalculateCommission calcula o detalhamento de comissões para os dados de
// vendas enviados pelo formulário do cliente
func CalculateCommission(service commissioning.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input *domain.SalesInput

		// Decodificar o corpo da requisição. Corpo vazio ou "null" segue
		// para a validação como entrada ausente, não como erro de transporte
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			if !errors.Is(err, io.EOF) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body")
				return
			}
			input = nil
		}

		// Identificador curto para correlacionar os logs deste cálculo
		calculationID, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Warn("Erro ao gerar identificador do cálculo")
		}

		breakdown, err := service.Calculate(input)
		if err != nil {
			handleCalculationError(w, logger, calculationID, err)
			return
		}

		logger.WithField("calculation_id", calculationID).
			Debug("Detalhamento de comissões calculado: ", utils.PrettyJson(breakdown))

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(breakdown); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta do cálculo de comissões")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error writing response")
			return
		}
	}
}

// handleCalculationError traduz os erros do serviço para a resposta HTTP
func handleCalculationError(w http.ResponseWriter, logger log.Logger, calculationID string, err error) {
	var validationErr *commissioning.ValidationError
	if errors.As(err, &validationErr) {
		logger.WithFields(log.Fields{
			"calculation_id": calculationID,
			"error_code":     validationErr.Code,
		}).Warn("Dados de vendas inválidos: ", validationErr.Error())

		apiErrors.WriteError(w, validationErr.Code, validationErr.Message)
		return
	}

	// Erro genérico se não conseguirmos identificar especificamente
	logger.WithField("calculation_id", calculationID).Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error")
}
