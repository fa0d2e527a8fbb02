package quotes

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/holdings"
	"github.com/shopspring/decimal"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		path string
		want map[string]float64
	}{
		{
			name: "flat object",
			doc:  `{"BTC": 20000, "eth": 2500.5}`,
			want: map[string]float64{"btc": 20000, "ETH": 2500.5},
		},
		{
			name: "numeric strings",
			doc:  `{"AAPL": "195.50"}`,
			path: "$",
			want: map[string]float64{"aapl": 195.5},
		},
		{
			name: "nested price objects",
			doc:  `{"data": {"btc": {"price": 20000, "change": 1.2}, "eth": {"price": "2500"}}}`,
			path: "$.data",
			want: map[string]float64{"BTC": 20000, "Eth": 2500},
		},
		{
			name: "list of symbols",
			doc:  `{"items": [{"symbol": "AK-47 | Redline", "price": 25.3}, {"symbol": "AAPL", "price": 195}]}`,
			path: "$.items",
			want: map[string]float64{"ak-47 | redline": 25.3, "aapl": 195},
		},
		{
			name: "empty",
			doc:  `{}`,
			want: map[string]float64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(tc.doc), tc.path)
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Errorf("Load() = %v, want %d quotes", got, len(tc.want))
			}
			for symbol, want := range tc.want {
				price, ok := got.Quote(symbol)
				if !ok || !price.Equal(holdings.A(want)) {
					t.Errorf("Quote(%q) = %v, %v, want %v", symbol, price, ok, want)
				}
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		path string
	}{
		{"malformed", `{"btc":`, ""},
		{"not a price", `{"btc": true}`, ""},
		{"not numeric", `{"btc": "moon"}`, ""},
		{"scalar selection", `{"btc": 1}`, "$.btc"},
		{"missing symbol", `[{"price": 1}]`, ""},
		{"missing path", `{"btc": 1}`, "$.data"},
		{"duplicate symbol", `{"BTC": 1, "btc": 2}`, ""},
		{"duplicate list symbol", `[{"symbol": "ETH", "price": 1}, {"symbol": "eth", "price": 1}]`, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tc.doc), tc.path); err == nil {
				t.Error("Load() succeeded, want an error")
			}
		})
	}

	_, err := Load(strings.NewReader(`{"btc": "moon"}`), "")
	if !errors.Is(err, ErrNotAPrice) {
		t.Errorf("Load() error = %v, want ErrNotAPrice", err)
	}
}

func TestLoadRate(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		path    string
		want    string
		wantErr bool
	}{
		{name: "number", doc: `{"rates": {"USD": 1.0876}}`, path: "$.rates.USD", want: "1.0876"},
		{name: "string", doc: `{"rate": "1.1"}`, path: "$.rate", want: "1.1"},
		{name: "last of a series", doc: `{"series": [[1, 1.04], [2, 1.05]]}`, path: "$.series[-1:][1]", want: "1.05"},
		{name: "zero", doc: `{"rate": 0}`, path: "$.rate", wantErr: true},
		{name: "not a number", doc: `{"rate": {}}`, path: "$.rate", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LoadRate(strings.NewReader(tc.doc), tc.path)
			if tc.wantErr {
				if err == nil {
					t.Errorf("LoadRate() = %v, want an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadRate() unexpected error: %v", err)
			}
			if want := decimal.RequireFromString(tc.want); !got.Equal(want) {
				t.Errorf("LoadRate() = %v, want %v", got, want)
			}
		})
	}
}
