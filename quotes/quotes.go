// Package quotes loads market prices and exchange rates from JSON documents.
//
// The documents are produced by third party services, each with its own
// layout, so the relevant part is selected with a jsonpath expression before
// being interpreted. For instance with the document
//
//	{"data": {"btc": {"price": 20000}, "eth": {"price": "2500.5"}}}
//
// the expression "$.data" selects the symbol to price object.
package quotes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/holdings"
	"github.com/shopspring/decimal"
)

// Root is the jsonpath expression selecting the whole document.
const Root = "$"

var ErrNotAPrice = errors.New("not a price")

// decode reads the JSON document and applies the jsonpath expression.
func decode(r io.Reader, path string) (any, error) {
	if path == "" {
		path = Root
	}
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode JSON document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return jval, nil
}

// Load reads the prices selected by path in a JSON document.
//
// The selection is either an object mapping symbols to prices, or a list of
// objects with a "symbol" and a "price" field. A price is a number, a numeric
// string, or an object with a "price" field.
func Load(r io.Reader, path string) (holdings.Quotes, error) {
	jval, err := decode(r, path)
	if err != nil {
		return nil, err
	}

	quotes := holdings.Quotes{}
	// symbols are case insensitive, "BTC" and "btc" are the same quote.
	set := func(symbol string, price holdings.Amount) error {
		if _, dup := quotes[strings.ToLower(symbol)]; dup {
			return fmt.Errorf("duplicate symbol %q", symbol)
		}
		quotes.Set(symbol, price)
		return nil
	}
	switch v := jval.(type) {
	case map[string]any:
		for symbol, jprice := range v {
			price, err := parsePrice(jprice)
			if err != nil {
				return nil, fmt.Errorf("symbol %q: %w", symbol, err)
			}
			if err := set(symbol, price); err != nil {
				return nil, err
			}
		}
	case []any:
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("item %d: want an object, got %T", i, item)
			}
			symbol, _ := obj["symbol"].(string)
			if strings.TrimSpace(symbol) == "" {
				return nil, fmt.Errorf("item %d: symbol is missing", i)
			}
			price, err := parsePrice(obj["price"])
			if err != nil {
				return nil, fmt.Errorf("symbol %q: %w", symbol, err)
			}
			if err := set(symbol, price); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
	default:
		return nil, fmt.Errorf("%q selects a %T, want an object or a list", path, jval)
	}
	return quotes, nil
}

// LoadRate reads the exchange rate selected by path in a JSON document.
// The rate must be positive.
func LoadRate(r io.Reader, path string) (decimal.Decimal, error) {
	jval, err := decode(r, path)
	if err != nil {
		return decimal.Zero, err
	}
	// jsonpath returns a list for filters and slices, keep the first answer.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	rate, err := parseNumber(jval)
	if err != nil {
		return decimal.Zero, fmt.Errorf("exchange rate at %q: %w", path, err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("exchange rate at %q must be positive, got %s", path, rate)
	}
	return rate, nil
}

func parsePrice(jval any) (holdings.Amount, error) {
	if obj, ok := jval.(map[string]any); ok {
		jval = obj["price"]
	}
	d, err := parseNumber(jval)
	if err != nil {
		return holdings.Amount{}, err
	}
	return holdings.A(d), nil
}

func parseNumber(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrNotAPrice, v)
		}
		return d, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %v", ErrNotAPrice, jval)
}
