package domain

import "github.com/shopspring/decimal"

func init() {
	// O cliente espera números JSON puros nos valores monetários,
	// não strings entre aspas
	decimal.MarshalJSONWithoutQuotes = true
}

// Taxas fixas de comissão por parte (local / exterior)
var (
	CompanyLocalRate      = decimal.RequireFromString("0.20")
	CompanyForeignRate    = decimal.RequireFromString("0.35")
	CompetitorLocalRate   = decimal.RequireFromString("0.02")
	CompetitorForeignRate = decimal.RequireFromString("0.0755")
)

// Limites superiores aceitos para os dados de entrada
var (
	MaxSalesCount        int64 = 1_000_000
	MaxAverageSaleAmount       = decimal.NewFromInt(1_000_000)
)

// SalesInput representa os dados de vendas enviados pelo formulário do cliente
type SalesInput struct {
	LocalSalesCount   int64           `json:"localSalesCount"`
	ForeignSalesCount int64           `json:"foreignSalesCount"`
	AverageSaleAmount decimal.Decimal `json:"averageSaleAmount"`
}

// CommissionBreakdown é o detalhamento de comissões calculado para as duas
// partes, com os dados de entrada ecoados sem modificação.
// Todos os valores monetários têm precisão de 2 casas decimais.
type CommissionBreakdown struct {
	CompanyLocalCommission      decimal.Decimal `json:"companyLocalCommission"`
	CompanyForeignCommission    decimal.Decimal `json:"companyForeignCommission"`
	CompanyTotalCommission      decimal.Decimal `json:"companyTotalCommission"`
	CompetitorLocalCommission   decimal.Decimal `json:"competitorLocalCommission"`
	CompetitorForeignCommission decimal.Decimal `json:"competitorForeignCommission"`
	CompetitorTotalCommission   decimal.Decimal `json:"competitorTotalCommission"`

	LocalSalesCount   int64           `json:"localSalesCount"`
	ForeignSalesCount int64           `json:"foreignSalesCount"`
	AverageSaleAmount decimal.Decimal `json:"averageSaleAmount"`
}

// PartyRates são as taxas de uma parte, expostas de forma somente leitura
// pelo endpoint de consulta de taxas
type PartyRates struct {
	Party       string          `json:"party"`
	LocalRate   decimal.Decimal `json:"localRate"`
	ForeignRate decimal.Decimal `json:"foreignRate"`
}

// RateSchedule é a tabela de taxas e limites vigentes
type RateSchedule struct {
	Parties              []PartyRates    `json:"parties"`
	MaxSalesCount        int64           `json:"maxSalesCount"`
	MaxAverageSaleAmount decimal.Decimal `json:"maxAverageSaleAmount"`
}

// CurrentRateSchedule monta a tabela de taxas a partir das constantes fixas
func CurrentRateSchedule() *RateSchedule {
	return &RateSchedule{
		Parties: []PartyRates{
			{Party: "company", LocalRate: CompanyLocalRate, ForeignRate: CompanyForeignRate},
			{Party: "competitor", LocalRate: CompetitorLocalRate, ForeignRate: CompetitorForeignRate},
		},
		MaxSalesCount:        MaxSalesCount,
		MaxAverageSaleAmount: MaxAverageSaleAmount,
	}
}
