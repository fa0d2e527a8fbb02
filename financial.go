package holdings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Frequency tells how often an income or a cost occurs.
type Frequency string

const (
	Once      Frequency = "once"
	Weekly    Frequency = "weekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// ParseFrequency parses a frequency, an empty string means monthly.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return Monthly, nil
	case Once, Weekly, Monthly, Quarterly, Yearly:
		return f, nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// Entry is a line of the financial data: a cash account, a debt, an income or
// a fixed cost.
type Entry struct {
	Name      string
	Category  string
	Amount    Amount
	Currency  Currency
	Frequency Frequency
}

// Monthly returns the entry amount normalized to a month. Balances (once) are
// returned as is.
func (e Entry) Monthly() Amount {
	v := e.Amount.Decimal()
	switch e.Frequency {
	case Weekly:
		return A(v.Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12)))
	case Quarterly:
		return A(v.Div(decimal.NewFromInt(3)))
	case Yearly:
		return A(v.Div(decimal.NewFromInt(12)))
	}
	return e.Amount
}

func (e Entry) equal(o Entry) bool {
	return e.Name == o.Name && e.Category == o.Category && e.Amount.Equal(o.Amount) &&
		e.Currency == o.Currency && e.Frequency == o.Frequency
}

// FinancialData gathers the non investment side of the household finances.
type FinancialData struct {
	Cash       []Entry
	Debts      []Entry
	Incomes    []Entry
	FixedCosts []Entry
}

// Equal reports whether both data sets hold the same entries in the same order.
func (d FinancialData) Equal(o FinancialData) bool {
	eq := func(a, b Entry) bool { return a.equal(b) }
	return slices.EqualFunc(d.Cash, o.Cash, eq) &&
		slices.EqualFunc(d.Debts, o.Debts, eq) &&
		slices.EqualFunc(d.Incomes, o.Incomes, eq) &&
		slices.EqualFunc(d.FixedCosts, o.FixedCosts, eq)
}

func (d FinancialData) clone() FinancialData {
	return FinancialData{
		Cash:       slices.Clone(d.Cash),
		Debts:      slices.Clone(d.Debts),
		Incomes:    slices.Clone(d.Incomes),
		FixedCosts: slices.Clone(d.FixedCosts),
	}
}

// CostShare is the monthly amount of a cost category and its share of all
// fixed costs.
type CostShare struct {
	Category string
	Monthly  Amount
	Share    Percent
}

// FinancialCalculator computes household metrics over financial data.
//
// Entries handed to a calculator are already expressed in the home currency.
type FinancialCalculator interface {
	NetWorth(cash, debts []Entry, investments Amount) (Amount, error)
	SavingsRate(incomes, fixedCosts []Entry) (Percent, error)
	// CashRunway returns the number of months of fixed costs the cash covers.
	CashRunway(cash, fixedCosts []Entry) (float64, error)
	DebtToIncomeRatio(debts, incomes []Entry) (Percent, error)
	InvestmentRatio(cash []Entry, investments Amount) (Percent, error)
	CostBreakdown(fixedCosts []Entry) ([]CostShare, error)
}

// FinancialMetrics is the composition of the investment portfolio with the
// household finances.
type FinancialMetrics struct {
	InvestmentTotal Amount
	NetWorth        Amount
	SavingsRate     Percent
	CashRunway      float64 // months
	DebtToIncome    Percent
	InvestmentRatio Percent
	CostBreakdown   []CostShare
	Degraded        bool // true when only the investment total could be computed
}

// clone returns a copy sharing no slice with m.
func (m FinancialMetrics) clone() FinancialMetrics {
	m.CostBreakdown = slices.Clone(m.CostBreakdown)
	return m
}

// degraded returns the metrics available without a calculator.
func degraded(investments Amount) FinancialMetrics {
	return FinancialMetrics{
		InvestmentTotal: investments,
		NetWorth:        investments,
		Degraded:        true,
	}
}
