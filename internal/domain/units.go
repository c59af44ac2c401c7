package domain

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenDecimals is the number of decimals of both ether and the USVP token
const TokenDecimals = 18

// MaxSupply is the USVP hard cap in whole tokens, shown in the deployment report
var MaxSupply = decimal.NewFromInt(1_000_000_000)

// FormatEther renders a wei amount in whole units, always keeping at least one
// decimal place ("1000000.0", "0.5").
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(wei, -TokenDecimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatUnits renders an amount as a whole-number string with thousand separators
func FormatUnits(amount decimal.Decimal) string {
	whole := amount.Truncate(0).String()
	neg := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
