package pfm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a string is not a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is an exact decimal money value, without currency.
//
// The zero value is a valid zero amount. Amounts can be negative.
type Amount struct {
	value decimal.Decimal
}

// A returns the Amount for value.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// maxMagnitude bounds the decimal exponent of an amount, like 1e308 for a float64.
const maxMagnitude = 308

// ParseAmount parses a decimal number like "250.50", "-3" or "1e3".
// Surrounding whitespace is ignored.
//
// Non zero amounts whose magnitude is beyond 1e±308 are rejected.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w %q: %w", ErrInvalidAmount, s, err)
	}
	if v.IsZero() {
		return Amount{}, nil
	}
	// magnitude of the leading digit: 1234.5 is 12345e-1 so 3.
	if m := int64(v.Exponent()) + int64(v.NumDigits()) - 1; m > maxMagnitude || m < -maxMagnitude {
		return Amount{}, fmt.Errorf("%w %q: out of range", ErrInvalidAmount, s)
	}
	return Amount{value: v}, nil
}

// Equal reports whether a and b are the same amount, regardless of trailing zeros.
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }

// IsZero reports whether a is zero.
func (a Amount) IsZero() bool { return a.value.IsZero() }

// Add returns a + b, exactly.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }

// Sub returns a - b, exactly.
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// String returns the amount rounded to two decimal places, like "1000.00".
func (a Amount) String() string { return a.value.StringFixed(2) }
