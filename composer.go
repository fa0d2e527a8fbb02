package holdings

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Inputs are everything the composer depends on.
type Inputs struct {
	Data            FinancialData
	InvestmentTotal Amount          // in the home currency
	ExchangeRate    decimal.Decimal // 1 home currency unit = ExchangeRate secondary units
}

func (in Inputs) equal(o Inputs) bool {
	return in.InvestmentTotal.Equal(o.InvestmentTotal) &&
		in.ExchangeRate.Equal(o.ExchangeRate) &&
		in.Data.Equal(o.Data)
}

// Composer merges the investment total with the household finances.
//
// The calculator is optional: without it, or when it fails, the composer
// returns the degraded metrics where the net worth is the investment total.
// Results are memoized on the inputs, it is safe for concurrent use.
type Composer struct {
	calc   FinancialCalculator
	home   Currency
	logger zerolog.Logger

	mu       sync.Mutex
	last     *Inputs
	result   FinancialMetrics
	computed int
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithLogger sets the logger used to report degraded results.
func WithLogger(l zerolog.Logger) ComposerOption { return func(c *Composer) { c.logger = l } }

// WithHomeCurrency sets the currency the metrics are expressed in, EUR by default.
func WithHomeCurrency(cur Currency) ComposerOption { return func(c *Composer) { c.home = cur } }

// NewComposer creates a composer, calc may be nil.
func NewComposer(calc FinancialCalculator, opts ...ComposerOption) *Composer {
	c := &Composer{calc: calc, home: EUR, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Computations returns how many times the metrics were actually computed.
func (c *Composer) Computations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computed
}

// Compose returns the financial metrics for the inputs. It never fails.
func (c *Composer) Compose(in Inputs) FinancialMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last != nil && c.last.equal(in) {
		return c.result.clone()
	}
	c.computed++

	m, err := c.compute(in)
	if err != nil {
		c.logger.Warn().Err(err).Str("investments", in.InvestmentTotal.String()).Msg("financial metrics degraded")
		m = degraded(in.InvestmentTotal)
	}

	last := Inputs{Data: in.Data.clone(), InvestmentTotal: in.InvestmentTotal, ExchangeRate: in.ExchangeRate}
	c.last, c.result = &last, m.clone()
	return m
}

// compute calls the calculator, turning a panic into an error.
func (c *Composer) compute(in Inputs) (m FinancialMetrics, err error) {
	if c.calc == nil {
		return m, errors.New("no financial calculator available")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("financial calculator panicked: %v", r)
		}
	}()

	data, err := c.convert(in.Data, in.ExchangeRate)
	if err != nil {
		return m, err
	}

	m.InvestmentTotal = in.InvestmentTotal
	if m.NetWorth, err = c.calc.NetWorth(data.Cash, data.Debts, in.InvestmentTotal); err != nil {
		return m, fmt.Errorf("net worth: %w", err)
	}
	if m.SavingsRate, err = c.calc.SavingsRate(data.Incomes, data.FixedCosts); err != nil {
		return m, fmt.Errorf("savings rate: %w", err)
	}
	if m.CashRunway, err = c.calc.CashRunway(data.Cash, data.FixedCosts); err != nil {
		return m, fmt.Errorf("cash runway: %w", err)
	}
	if m.DebtToIncome, err = c.calc.DebtToIncomeRatio(data.Debts, data.Incomes); err != nil {
		return m, fmt.Errorf("debt to income ratio: %w", err)
	}
	if m.InvestmentRatio, err = c.calc.InvestmentRatio(data.Cash, in.InvestmentTotal); err != nil {
		return m, fmt.Errorf("investment ratio: %w", err)
	}
	if m.CostBreakdown, err = c.calc.CostBreakdown(data.FixedCosts); err != nil {
		return m, fmt.Errorf("cost breakdown: %w", err)
	}
	return m, nil
}

// convert expresses every entry in the home currency.
func (c *Composer) convert(d FinancialData, rate decimal.Decimal) (FinancialData, error) {
	needsRate := false
	conv := func(entries []Entry) []Entry {
		res := make([]Entry, len(entries))
		for i, e := range entries {
			if e.Currency != "" && e.Currency != c.home {
				needsRate = true
				if rate.IsPositive() {
					e.Amount = A(e.Amount.Decimal().Div(rate))
				}
				e.Currency = c.home
			}
			res[i] = e
		}
		return res
	}
	out := FinancialData{
		Cash:       conv(d.Cash),
		Debts:      conv(d.Debts),
		Incomes:    conv(d.Incomes),
		FixedCosts: conv(d.FixedCosts),
	}
	if needsRate && !rate.IsPositive() {
		return out, fmt.Errorf("invalid exchange rate %s", rate)
	}
	return out, nil
}
