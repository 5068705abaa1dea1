package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos ao cliente
const (
	// Erros de validação dos dados de vendas
	ErrInvalidRequest      = "INVALID_REQUEST"       // Corpo da requisição ausente ou nulo
	ErrInvalidLocalCount   = "INVALID_LOCAL_COUNT"   // Quantidade de vendas locais negativa
	ErrInvalidForeignCount = "INVALID_FOREIGN_COUNT" // Quantidade de vendas no exterior negativa
	ErrInvalidAmount       = "INVALID_AMOUNT"        // Valor médio de venda negativo
	ErrCountTooLarge       = "COUNT_TOO_LARGE"       // Quantidade de vendas acima do limite
	ErrAmountTooLarge      = "AMOUNT_TOO_LARGE"      // Valor médio de venda acima do limite

	// Erros do servidor
	ErrInternalServer = "INTERNAL_ERROR" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrInvalidLocalCount:   http.StatusBadRequest,
	ErrInvalidForeignCount: http.StatusBadRequest,
	ErrInvalidAmount:       http.StatusBadRequest,
	ErrCountTooLarge:       http.StatusBadRequest,
	ErrAmountTooLarge:      http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado.
// O campo "error" carrega o código estável consumido pelo cliente.
type APIError struct {
	Error   string `json:"error"`             // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Error:   code,
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
