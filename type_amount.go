package holdings

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value expressed in major units.
//
// Amounts do not carry their currency: the engine folds transactions as they
// are recorded and the currency is only used to format a value.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) Add(b Amount) Amount              { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount              { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Mul(q Quantity) Amount            { return Amount{value: a.value.Mul(q.value)} }
func (a Amount) Div(q Quantity) Amount            { return Amount{value: a.value.Div(q.value)} }
func (a Amount) Scale(f decimal.Decimal) Amount   { return Amount{value: a.value.Mul(f)} }
func (a Amount) Decimal() decimal.Decimal         { return a.value }
func (a Amount) String() string                   { return a.value.StringFixed(2) }
func (a Amount) MarshalJSON() ([]byte, error)     { return a.value.MarshalJSON() }
func (a *Amount) UnmarshalJSON(data []byte) error { return a.value.UnmarshalJSON(data) }

// Ratio returns a/b as a percentage, 0 when b is zero.
func (a Amount) Ratio(b Amount) Percent {
	if b.value.IsZero() {
		return 0
	}
	return Percent(a.value.Div(b.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// Format returns the amount formatted in the given currency, e.g. "€1,234.50".
func (a Amount) Format(cur Currency) string {
	c := money.GetCurrency(string(cur))
	if c == nil {
		return a.String() + " " + string(cur)
	}
	minor := a.value.Shift(int32(c.Fraction)).Round(0).IntPart()
	return c.Formatter().Format(minor)
}

// SignedFormat is like Format with an explicit sign, "-" for zero.
func (a Amount) SignedFormat(cur Currency) string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.Format(cur)
	}
	return a.Format(cur)
}
