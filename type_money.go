package wealth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the single currency this ledger operates in.
// Multi-currency support is an explicit non-goal.
const ReportingCurrency = "EUR"

// ErrInvalidAmount reports an amount that could not be parsed or is not
// strictly positive. Operations reject it before any mutation.
var ErrInvalidAmount = errors.New("invalid amount")

// Money represents a monetary value in the reporting currency.
type Money struct {
	value decimal.Decimal // as major unit value
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// M creates a Money value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseAmount parses a locale-flexible decimal amount. Both "," and "." are
// accepted as the decimal separator ("12,26" and "12.26" are the same value).
// Non-positive or unparseable input returns ErrInvalidAmount.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !v.IsPositive() {
		return Money{}, fmt.Errorf("%w: %q must be positive", ErrInvalidAmount, s)
	}
	return Money{value: v}, nil
}

// String formats the value with the reporting currency symbol, e.g. "€1,234.50".
func (m Money) String() string {
	cur := *money.New(0, ReportingCurrency).Currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// Share returns the portion ratio/total of m. A zero total yields zero
// (callers decide whether that degenerate case is an error).
func (m Money) Share(ratio, total decimal.Decimal) Money {
	if total.IsZero() {
		return Money{}
	}
	return Money{value: m.value.Mul(ratio).Div(total)}
}

// Div divides the value by an integer, rounding up to the next cent,
// which is the right direction for savings suggestions.
func (m Money) Div(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n))).RoundUp(2)}
}

// Percent computes m as a percentage of total, or 0 when total is zero.
func (m Money) Percent(total Money) Percent {
	if total.IsZero() {
		return 0
	}
	p, _ := m.value.Div(total.value).Mul(decimal.NewFromInt(100)).Float64()
	return Percent(p)
}

// MarshalJSON persists the bare decimal number. Every amount is in the
// reporting currency, so the files carry no currency code.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(2).MarshalJSON()
}

// UnmarshalJSON reads the bare decimal number.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}

// Percent is a display type for ratios expressed in percent.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", p)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}
