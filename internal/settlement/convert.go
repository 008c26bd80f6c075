// Package settlement converts claim amounts from the source currency into
// the smallest indivisible unit of the settlement currency.
//
// This is pure domain logic - no I/O, no side effects. The scale constants
// are injected from config so accounting and display share one rate.
package settlement

import (
	"math"
	"strconv"

	"trustlynk/internal/platform/config"
	dErrors "trustlynk/pkg/domain-errors"
)

// Converter performs source-currency to settlement-unit conversion.
type Converter struct {
	scale config.Settlement
}

// NewConverter builds a Converter from the shared settlement configuration.
func NewConverter(scale config.Settlement) *Converter {
	return &Converter{scale: scale}
}

// ToSettlementUnits converts a source-currency amount into settlement units:
// floor(amount * UnitsPerSettlement / SourceRate). Truncation, not rounding:
// fractional settlement units are discarded, never rounded up.
func (c *Converter) ToSettlementUnits(sourceAmount float64) (int64, error) {
	if math.IsNaN(sourceAmount) || math.IsInf(sourceAmount, 0) {
		return 0, dErrors.New(dErrors.CodeValidation, "amount must be a finite number")
	}
	if sourceAmount < 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "amount must not be negative")
	}

	units := math.Floor(sourceAmount * float64(c.scale.UnitsPerSettlement) / float64(c.scale.SourceRate))
	// math.MaxInt64 converts to 2^63 here, which itself does not fit int64.
	if units >= math.MaxInt64 {
		return 0, dErrors.New(dErrors.CodeValidation, "amount exceeds settlement range")
	}
	return int64(units), nil
}

// ToDisplayUnits formats a settlement-unit count as whole settlement
// currency with 4 fractional digits. Display only - settlement accounting
// must use the integer unit count.
func (c *Converter) ToDisplayUnits(units int64) (string, error) {
	if units < 0 {
		return "", dErrors.New(dErrors.CodeValidation, "settlement units must not be negative")
	}
	return strconv.FormatFloat(float64(units)/float64(c.scale.UnitsPerSettlement), 'f', 4, 64), nil
}
