package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxMoneyScale is the largest number of fractional digits a Money value may carry.
const MaxMoneyScale int32 = 18

// maxInt64Digits is the number of decimal digits in math.MaxInt64.
const maxInt64Digits = 19

// Money is an exact decimal amount stored as a scaled integer:
// the value is units / 10^scale. The zero value is 0 at scale 0.
type Money struct {
	units int64
	scale int32
}

// NewMoney builds a Money from its scaled integer and scale. It rejects
// scales outside [0, MaxMoneyScale] and the one int64 that cannot be negated.
func NewMoney(units int64, scale int32) (Money, error) {
	if scale < 0 || scale > MaxMoneyScale {
		return Money{}, fmt.Errorf("%w: scale %d outside [0, %d]", apperrors.ErrInvalidAmount, scale, MaxMoneyScale)
	}
	if units == math.MinInt64 {
		return Money{}, fmt.Errorf("%w: %d has no negation", apperrors.ErrInvalidAmount, units)
	}
	return Money{units: units, scale: scale}, nil
}

// MoneyFromDecimal converts d to a Money at the given scale. The conversion
// must be exact: a value with more fractional digits than scale is rejected.
// Magnitudes are bounded from the digit count and exponent before any
// big-integer work, so an extreme exponent fails fast.
func MoneyFromDecimal(d decimal.Decimal, scale int32) (Money, error) {
	if scale < 0 || scale > MaxMoneyScale {
		return Money{}, fmt.Errorf("%w: scale %d outside [0, %d]", apperrors.ErrInvalidAmount, scale, MaxMoneyScale)
	}
	if d.IsZero() {
		return NewMoney(0, scale)
	}
	digits := int64(d.NumDigits())
	exp := int64(d.Exponent()) + int64(scale)
	if digits+exp > maxInt64Digits {
		return Money{}, fmt.Errorf("%w: amount does not fit at scale %d", apperrors.ErrInvalidAmount, scale)
	}
	if -exp >= digits {
		return Money{}, fmt.Errorf("%w: amount has more than %d fractional digits", apperrors.ErrInvalidAmount, scale)
	}
	shifted := d.Shift(scale)
	if !shifted.IsInteger() {
		return Money{}, fmt.Errorf("%w: amount has more than %d fractional digits", apperrors.ErrInvalidAmount, scale)
	}
	bi := shifted.BigInt()
	if !bi.IsInt64() {
		return Money{}, fmt.Errorf("%w: amount does not fit at scale %d", apperrors.ErrInvalidAmount, scale)
	}
	return NewMoney(bi.Int64(), scale)
}

// ParseMoney parses a decimal string such as "10000.00" at the given scale.
func ParseMoney(s string, scale int32) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%w: not a decimal number", apperrors.ErrInvalidAmount)
	}
	return MoneyFromDecimal(d, scale)
}

// ScaledInteger returns the stored integer form of the amount.
func (m Money) ScaledInteger() int64 { return m.units }

// Scale returns the number of fractional digits.
func (m Money) Scale() int32 { return m.scale }

// Negate returns the additive inverse at the same scale.
func (m Money) Negate() Money {
	return Money{units: -m.units, scale: m.scale}
}

// Rescale converts the amount to another scale without losing precision.
func (m Money) Rescale(scale int32) (Money, error) {
	if scale == m.scale {
		return m, nil
	}
	return MoneyFromDecimal(m.Decimal(), scale)
}

// Decimal returns the exact decimal value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.units, -m.scale)
}

func (m Money) IsZero() bool { return m.units == 0 }

// Sign returns -1, 0 or +1.
func (m Money) Sign() int {
	switch {
	case m.units < 0:
		return -1
	case m.units > 0:
		return 1
	}
	return 0
}

// Cmp compares numeric values, so 1.5 at scale 1 equals 1.50 at scale 2.
func (m Money) Cmp(other Money) int {
	return m.Decimal().Cmp(other.Decimal())
}

// Equal reports numeric equality regardless of scale.
func (m Money) Equal(other Money) bool {
	return m.Cmp(other) == 0
}

// String renders the amount with exactly Scale fractional digits.
func (m Money) String() string {
	return m.Decimal().StringFixed(m.scale)
}

// MarshalJSON encodes the amount as a decimal string to avoid float rounding.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// SumMoney adds amounts of any scale exactly.
func SumMoney(amounts ...Money) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Decimal())
	}
	return total
}
