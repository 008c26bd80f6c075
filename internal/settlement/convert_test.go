package settlement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustlynk/internal/platform/config"
	dErrors "trustlynk/pkg/domain-errors"
)

func newConverter() *Converter {
	return NewConverter(config.DefaultSettlement())
}

func TestToSettlementUnits(t *testing.T) {
	c := newConverter()

	t.Run("documented formula", func(t *testing.T) {
		// floor(5000 * 10_000_000 / 1_000_000) = 50000
		units, err := c.ToSettlementUnits(5000)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), units)
	})

	t.Run("fractional units are truncated, never rounded up", func(t *testing.T) {
		// 0.19 * 10 = 1.9 -> 1
		units, err := c.ToSettlementUnits(0.19)
		require.NoError(t, err)
		assert.Equal(t, int64(1), units)
	})

	t.Run("zero converts to zero", func(t *testing.T) {
		units, err := c.ToSettlementUnits(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), units)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := c.ToSettlementUnits(-1)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	})

	t.Run("non-finite amounts rejected", func(t *testing.T) {
		for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := c.ToSettlementUnits(amount)
			assert.True(t, dErrors.Is(err, dErrors.CodeValidation), "amount %v", amount)
		}
	})

	t.Run("amounts beyond settlement range rejected", func(t *testing.T) {
		for _, amount := range []float64{1e18, math.MaxInt64} {
			_, err := c.ToSettlementUnits(amount)
			assert.True(t, dErrors.Is(err, dErrors.CodeValidation), "amount %v", amount)
		}
	})

	t.Run("conversion never yields negative units", func(t *testing.T) {
		for _, amount := range []float64{0.0000001, 0.5, 1, 3.14159, 42, 99999.99} {
			units, err := c.ToSettlementUnits(amount)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, units, int64(0), "amount %v", amount)
		}
	})
}

func TestToDisplayUnits(t *testing.T) {
	c := newConverter()

	t.Run("four decimal places with standard rounding", func(t *testing.T) {
		// 12345678 / 10_000_000 = 1.2345678 -> "1.2346"
		display, err := c.ToDisplayUnits(12345678)
		require.NoError(t, err)
		assert.Equal(t, "1.2346", display)
	})

	t.Run("whole settlement units", func(t *testing.T) {
		display, err := c.ToDisplayUnits(50000)
		require.NoError(t, err)
		assert.Equal(t, "0.0050", display)
	})

	t.Run("zero units", func(t *testing.T) {
		display, err := c.ToDisplayUnits(0)
		require.NoError(t, err)
		assert.Equal(t, "0.0000", display)
	})

	t.Run("negative units rejected", func(t *testing.T) {
		_, err := c.ToDisplayUnits(-1)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	})
}

func TestConvertDisplayConsistency(t *testing.T) {
	c := newConverter()

	// Floor truncation is lossy, so a round trip need not be exact, but the
	// unit count must stay a non-negative integer throughout.
	for _, amount := range []float64{0.01, 1, 5000, 12345.6789} {
		units, err := c.ToSettlementUnits(amount)
		require.NoError(t, err)
		require.GreaterOrEqual(t, units, int64(0))

		_, err = c.ToDisplayUnits(units)
		require.NoError(t, err)
	}
}
