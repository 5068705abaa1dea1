package commissioning

//go:generate mockgen -source=service.go -destination=mocks/calculator.go -package=mocks

import (
	"github.com/shopspring/decimal"

	"github.com/rlourenco/commission-api/internal/domain"
	"github.com/rlourenco/commission-api/pkg/apiErrors"
	"github.com/rlourenco/commission-api/pkg/utils"
)

// Calculator valida os dados de vendas e calcula o detalhamento de comissões
// das duas partes. O cálculo é uma função pura: sem estado, sem I/O.
type Calculator interface {
	Calculate(input *domain.SalesInput) (*domain.CommissionBreakdown, error)
}

type Service struct{}

func NewService() Calculator {
	return &Service{}
}

// Calculate aplica a tabela fixa de taxas sobre os dados de vendas.
// Retorna *ValidationError quando a entrada é inválida.
func (s *Service) Calculate(input *domain.SalesInput) (*domain.CommissionBreakdown, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	localCount := decimal.NewFromInt(input.LocalSalesCount)
	foreignCount := decimal.NewFromInt(input.ForeignSalesCount)
	amount := input.AverageSaleAmount

	// Cada valor parcial é arredondado para 2 casas antes de compor o total;
	// o total é arredondado de novo, o que é idempotente com parcelas já
	// em centavos
	companyLocal := utils.RoundCurrency(localCount.Mul(amount).Mul(domain.CompanyLocalRate))
	companyForeign := utils.RoundCurrency(foreignCount.Mul(amount).Mul(domain.CompanyForeignRate))
	companyTotal := utils.RoundCurrency(companyLocal.Add(companyForeign))

	competitorLocal := utils.RoundCurrency(localCount.Mul(amount).Mul(domain.CompetitorLocalRate))
	competitorForeign := utils.RoundCurrency(foreignCount.Mul(amount).Mul(domain.CompetitorForeignRate))
	competitorTotal := utils.RoundCurrency(competitorLocal.Add(competitorForeign))

	return &domain.CommissionBreakdown{
		CompanyLocalCommission:      companyLocal,
		CompanyForeignCommission:    companyForeign,
		CompanyTotalCommission:      companyTotal,
		CompetitorLocalCommission:   competitorLocal,
		CompetitorForeignCommission: competitorForeign,
		CompetitorTotalCommission:   competitorTotal,
		LocalSalesCount:             input.LocalSalesCount,
		ForeignSalesCount:           input.ForeignSalesCount,
		AverageSaleAmount:           input.AverageSaleAmount,
	}, nil
}

// validate executa a sequência de validações na ordem contratual,
// interrompendo na primeira falha. A ordem define qual erro é reportado
// quando mais de um campo é inválido.
func validate(input *domain.SalesInput) *ValidationError {
	if input == nil {
		return newValidationError(ErrNilInput, apiErrors.ErrInvalidRequest,
			"Request body cannot be null")
	}

	if input.LocalSalesCount < 0 {
		return newValidationError(ErrNegativeLocalCount, apiErrors.ErrInvalidLocalCount,
			"Local sales count cannot be negative")
	}

	if input.ForeignSalesCount < 0 {
		return newValidationError(ErrNegativeForeignCount, apiErrors.ErrInvalidForeignCount,
			"Foreign sales count cannot be negative")
	}

	if input.AverageSaleAmount.IsNegative() {
		return newValidationError(ErrNegativeAmount, apiErrors.ErrInvalidAmount,
			"Average sale amount cannot be negative")
	}

	if input.LocalSalesCount > domain.MaxSalesCount || input.ForeignSalesCount > domain.MaxSalesCount {
		return newValidationError(ErrCountTooLarge, apiErrors.ErrCountTooLarge,
			"Sales counts cannot exceed 1,000,000")
	}

	if input.AverageSaleAmount.GreaterThan(domain.MaxAverageSaleAmount) {
		return newValidationError(ErrAmountTooLarge, apiErrors.ErrAmountTooLarge,
			"Average sale amount cannot exceed £1,000,000")
	}

	return nil
}
