package utils

import "github.com/shopspring/decimal"

// RoundCurrency arredonda um valor monetário para 2 casas decimais,
// com a metade indo para longe de zero (arredondamento comercial,
// não bancário)
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
