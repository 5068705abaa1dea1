package commissioning

import "errors"

// Erros base de validação dos dados de vendas
var (
	ErrNilInput             = errors.New("request body cannot be null")
	ErrNegativeLocalCount   = errors.New("local sales count cannot be negative")
	ErrNegativeForeignCount = errors.New("foreign sales count cannot be negative")
	ErrNegativeAmount       = errors.New("average sale amount cannot be negative")
	ErrCountTooLarge        = errors.New("sales count above the accepted limit")
	ErrAmountTooLarge       = errors.New("average sale amount above the accepted limit")
)

// ValidationError é um erro de validação com código estável para a API.
// A mensagem é o texto exibido pelo cliente, por isso fica em inglês.
type ValidationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Message string // Mensagem exibida ao usuário final
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// newValidationError cria um novo erro de validação
func newValidationError(baseErr error, code string, message string) *ValidationError {
	return &ValidationError{
		Err:     baseErr,
		Code:    code,
		Message: message,
	}
}
