package models

import (
	"github.com/shopspring/decimal"
)

// GasReport summarises what the deployment transaction cost
type GasReport struct {
	GasUsed uint64
	// GasPriceGwei is the price the cost is computed with
	GasPriceGwei decimal.Decimal
	// GasPriceSource is "api" when taken from the gas price API, "receipt" otherwise
	GasPriceSource string
	Token          string
	CostNative     decimal.Decimal

	Currency   string
	TokenPrice *decimal.Decimal
	CostFiat   *decimal.Decimal
}

// HasFiat reports whether a market quote was available
func (r *GasReport) HasFiat() bool {
	return r.CostFiat != nil
}
