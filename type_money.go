package estate

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in whole currency units.
//
// The currency itself is a property of the portfolio, not of each amount, and
// only matters when formatting (see Formatter).
type Money struct {
	value decimal.Decimal
}

// M creates a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// String returns the amount formatted in the default currency, e.g. "$12,500".
func (m Money) String() string { return FormatCurrency(m) }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value)} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// Int returns the amount rounded to the nearest whole unit.
func (m Money) Int() int64 { return m.value.Round(0).IntPart() }

// Decimal exposes the exact amount.
func (m Money) Decimal() decimal.Decimal { return m.value }

// MarshalJSON writes the amount as a bare JSON number, e.g. 285000.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts both bare and quoted numbers.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}

// sumOf adds up f over all items, exactly.
func sumOf[T any](items []T, f func(T) Money) Money {
	total := M(0)
	for _, item := range items {
		total = total.Add(f(item))
	}
	return total
}
