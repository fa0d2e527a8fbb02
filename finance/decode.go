package finance

import (
	"errors"
	"fmt"
	"io"

	"github.com/etnz/holdings"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type yamlEntry struct {
	Name      string  `yaml:"name"`
	Category  string  `yaml:"category,omitempty"`
	Amount    float64 `yaml:"amount"`
	Currency  string  `yaml:"currency,omitempty"`
	Frequency string  `yaml:"frequency,omitempty"`
}

type yamlData struct {
	Cash       []yamlEntry `yaml:"cash"`
	Debts      []yamlEntry `yaml:"debts"`
	Incomes    []yamlEntry `yaml:"incomes"`
	FixedCosts []yamlEntry `yaml:"fixedCosts"`
}

// Decode reads the household finances from a YAML document:
//
//	cash:
//	  - name: checking
//	    amount: 5000
//	incomes:
//	  - name: salary
//	    amount: 3200
//	    frequency: monthly
//	fixedCosts:
//	  - name: rent
//	    category: housing
//	    amount: 1100
//
// Currencies default to the empty currency (the home currency), frequencies
// to monthly for incomes and costs and to once for balances.
func Decode(r io.Reader) (holdings.FinancialData, error) {
	var doc yamlData
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return holdings.FinancialData{}, fmt.Errorf("cannot decode financial data: %w", err)
	}

	var data holdings.FinancialData
	var err error
	if data.Cash, err = entries("cash", doc.Cash, holdings.Once); err != nil {
		return data, err
	}
	if data.Debts, err = entries("debts", doc.Debts, holdings.Once); err != nil {
		return data, err
	}
	if data.Incomes, err = entries("incomes", doc.Incomes, holdings.Monthly); err != nil {
		return data, err
	}
	if data.FixedCosts, err = entries("fixedCosts", doc.FixedCosts, holdings.Monthly); err != nil {
		return data, err
	}
	return data, nil
}

func entries(section string, in []yamlEntry, freq holdings.Frequency) ([]holdings.Entry, error) {
	res := make([]holdings.Entry, 0, len(in))
	for i, e := range in {
		entry := holdings.Entry{
			Name:      e.Name,
			Category:  e.Category,
			Amount:    holdings.A(decimal.NewFromFloat(e.Amount)),
			Frequency: freq,
		}
		if e.Currency != "" {
			cur, err := holdings.ParseCurrency(e.Currency)
			if err != nil {
				return nil, fmt.Errorf("%s[%d] %q: %w", section, i, e.Name, err)
			}
			entry.Currency = cur
		}
		if e.Frequency != "" {
			f, err := holdings.ParseFrequency(e.Frequency)
			if err != nil {
				return nil, fmt.Errorf("%s[%d] %q: %w", section, i, e.Name, err)
			}
			entry.Frequency = f
		}
		if entry.Amount.IsNegative() {
			return nil, fmt.Errorf("%s[%d] %q: amount must not be negative, got %s", section, i, e.Name, entry.Amount)
		}
		res = append(res, entry)
	}
	return res, nil
}
