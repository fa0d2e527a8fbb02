// Package finance implements the household metrics over cash accounts, debts,
// incomes and fixed costs.
//
// Balances (cash, debts) are taken as is, incomes and fixed costs are
// normalized to monthly amounts according to their frequency.
package finance

import (
	"cmp"
	"slices"

	"github.com/etnz/holdings"
	"github.com/shopspring/decimal"
)

// Uncategorized is the category of fixed costs without one.
const Uncategorized = "other"

// Calculator is the default holdings.FinancialCalculator.
type Calculator struct{}

var _ holdings.FinancialCalculator = Calculator{}

func balance(entries []holdings.Entry) holdings.Amount {
	var total holdings.Amount
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

func monthly(entries []holdings.Entry) holdings.Amount {
	var total holdings.Amount
	for _, e := range entries {
		total = total.Add(e.Monthly())
	}
	return total
}

// NetWorth is the cash plus the investments minus the debts.
func (Calculator) NetWorth(cash, debts []holdings.Entry, investments holdings.Amount) (holdings.Amount, error) {
	return balance(cash).Add(investments).Sub(balance(debts)), nil
}

// SavingsRate is the share of the monthly income left after fixed costs.
func (Calculator) SavingsRate(incomes, fixedCosts []holdings.Entry) (holdings.Percent, error) {
	income := monthly(incomes)
	return income.Sub(monthly(fixedCosts)).Ratio(income), nil
}

// CashRunway is the number of months the cash covers the fixed costs, 0 when
// there are no fixed costs.
func (Calculator) CashRunway(cash, fixedCosts []holdings.Entry) (float64, error) {
	costs := monthly(fixedCosts)
	if !costs.IsPositive() {
		return 0, nil
	}
	return balance(cash).Decimal().Div(costs.Decimal()).Round(2).InexactFloat64(), nil
}

// DebtToIncomeRatio is the outstanding debt relative to a year of income.
func (Calculator) DebtToIncomeRatio(debts, incomes []holdings.Entry) (holdings.Percent, error) {
	yearly := monthly(incomes).Scale(decimal.NewFromInt(12))
	return balance(debts).Ratio(yearly), nil
}

// InvestmentRatio is the share of the liquid assets that is invested.
func (Calculator) InvestmentRatio(cash []holdings.Entry, investments holdings.Amount) (holdings.Percent, error) {
	return investments.Ratio(balance(cash).Add(investments)), nil
}

// CostBreakdown groups fixed costs by category, largest first.
func (Calculator) CostBreakdown(fixedCosts []holdings.Entry) ([]holdings.CostShare, error) {
	index := make(map[string]int)
	var shares []holdings.CostShare
	for _, e := range fixedCosts {
		cat := e.Category
		if cat == "" {
			cat = Uncategorized
		}
		i, ok := index[cat]
		if !ok {
			i = len(shares)
			index[cat] = i
			shares = append(shares, holdings.CostShare{Category: cat})
		}
		shares[i].Monthly = shares[i].Monthly.Add(e.Monthly())
	}
	total := monthly(fixedCosts)
	for i := range shares {
		shares[i].Share = shares[i].Monthly.Ratio(total)
	}
	slices.SortStableFunc(shares, func(a, b holdings.CostShare) int {
		if c := b.Monthly.Decimal().Cmp(a.Monthly.Decimal()); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return shares, nil
}
