package holdings

import (
	"math"
	"testing"
)

// asset is a helper for tests to create an enriched asset from constants.
func asset(symbol string, cat Category, invested, value, share float64) EnrichedAsset {
	a := EnrichedAsset{
		Position:           Position{Symbol: symbol, Category: cat, Amount: Q(1), PurchasePrice: A(invested), CurrentPrice: A(value)},
		Bucket:             cat.Bucket(),
		Priced:             true,
		Value:              A(value),
		Invested:           A(invested),
		PercentOfPortfolio: Percent(share),
	}
	a.Profit = a.Value.Sub(a.Invested)
	a.ProfitPct = a.Profit.Ratio(a.Invested)
	return a
}

func symbols(assets []EnrichedAsset) []string {
	var res []string
	for _, a := range assets {
		res = append(res, a.Symbol)
	}
	return res
}

func TestPerformers(t *testing.T) {
	assets := []EnrichedAsset{
		asset("A", Crypto, 100, 110, 0), // +10%
		asset("B", Crypto, 100, 150, 0), // +50%
		asset("C", Stocks, 100, 80, 0),  // -20%
		asset("D", Stocks, 0, 10, 0),    // nothing invested
		asset("E", CS2, 100, 110, 0),    // +10%, ties with A
		asset("F", CS2, 100, 95, 0),     // -5%
	}

	testCases := []struct {
		name  string
		got   []EnrichedAsset
		wants []string
	}{
		{"top", TopPerformers(assets, 3), []string{"B", "A", "E"}},
		{"worst", WorstPerformers(assets, 3), []string{"C", "F", "A"}},
		{"default limit", TopPerformers(assets, 0), []string{"B", "A", "E", "F", "C"}},
		{"limit above size", WorstPerformers(assets, 10), []string{"C", "F", "A", "E", "B"}},
		{"empty", TopPerformers(nil, 5), nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := symbols(tc.got)
			if len(got) != len(tc.wants) {
				t.Fatalf("got %v, want %v", got, tc.wants)
			}
			for i := range got {
				if got[i] != tc.wants[i] {
					t.Errorf("got %v, want %v", got, tc.wants)
					break
				}
			}
		})
	}
}

func TestDiversificationScore(t *testing.T) {
	testCases := []struct {
		name   string
		shares []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single asset", []float64{100}, 0},
		{"two equal", []float64{50, 50}, 50},
		{"four equal", []float64{25, 25, 25, 25}, 75},
		{"unbalanced", []float64{90, 10}, 18},
		{"nothing valued", []float64{0, 0}, 100},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var assets []EnrichedAsset
			for _, s := range tc.shares {
				assets = append(assets, asset("X", Crypto, 1, 1, s))
			}
			got := DiversificationScore(assets)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("DiversificationScore() = %v, want %v", got, tc.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("DiversificationScore() = %v, out of [0, 100]", got)
			}
		})
	}
}

func TestAverageReturn(t *testing.T) {
	assets := []EnrichedAsset{
		asset("A", Crypto, 100, 150, 0), // +50%
		asset("B", Crypto, 100, 90, 0),  // -10%
		asset("C", Crypto, 0, 90, 0),    // ignored
	}
	if got, want := AverageReturn(assets), Percent(20); !got.Equal(want) {
		t.Errorf("AverageReturn() = %v, want %v", got, want)
	}
	if got := AverageReturn(nil); got != 0 {
		t.Errorf("AverageReturn(nil) = %v, want 0", got)
	}
}

func TestClassifyRisk(t *testing.T) {
	testCases := []struct {
		score float64
		avg   Percent
		want  RiskLevel
	}{
		{0, 0, HighRisk},
		{29.9, 10, HighRisk},
		{80, 50.1, HighRisk},
		{80, -60, HighRisk},
		{30, 0, MediumRisk},
		{59.9, 0, MediumRisk},
		{80, 25.1, MediumRisk},
		{80, -30, MediumRisk},
		{60, 25, LowRisk},
		{100, -25, LowRisk},
	}
	for _, tc := range testCases {
		if got := ClassifyRisk(tc.score, tc.avg); got != tc.want {
			t.Errorf("ClassifyRisk(%v, %v) = %v, want %v", tc.score, tc.avg, got, tc.want)
		}
	}
}

func TestClassifyConcentration(t *testing.T) {
	testCases := []struct {
		score float64
		want  Concentration
	}{
		{100, Diversified},
		{70, Diversified},
		{69.9, Balanced},
		{40, Balanced},
		{39.9, HighlyConcentrated},
		{0, HighlyConcentrated},
	}
	for _, tc := range testCases {
		if got := ClassifyConcentration(tc.score); got != tc.want {
			t.Errorf("ClassifyConcentration(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestHealth(t *testing.T) {
	winner := asset("W", Crypto, 100, 200, 50)
	loser := asset("L", Crypto, 100, 50, 50)

	testCases := []struct {
		name      string
		score     float64
		avg       Percent
		assets    []EnrichedAsset
		wantScore float64
		wantLabel string
		wantColor string
	}{
		// 100*0.3 + 100*0.4 + 100*0.3
		{"excellent", 100, 50, []EnrichedAsset{winner}, 100, "Excellent", "#10b981"},
		// 50*0.3 + 80*0.4 + 50*0.3
		{"good", 50, 30, []EnrichedAsset{winner, loser}, 62, "Good", "#3b82f6"},
		// 50*0.3 + 50*0.4 + 50*0.3
		{"fair", 50, 0, []EnrichedAsset{winner, loser}, 50, "Fair", "#f59e0b"},
		// 0*0.3 + 0*0.4 + 0*0.3
		{"poor", 0, -50, []EnrichedAsset{loser}, 0, "Poor", "#ef4444"},
		// 0*0.3 + (-50)*0.4 + 0, scores can go below zero
		{"negative", 0, -100, nil, -20, "Poor", "#ef4444"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Health(tc.score, tc.avg, tc.assets)
			if math.Abs(got.Score-tc.wantScore) > 1e-9 {
				t.Errorf("Score = %v, want %v", got.Score, tc.wantScore)
			}
			if got.Label != tc.wantLabel || got.Color != tc.wantColor {
				t.Errorf("Health() = %s %s, want %s %s", got.Label, got.Color, tc.wantLabel, tc.wantColor)
			}
		})
	}
}

func TestLargestPosition(t *testing.T) {
	if _, ok := LargestPosition(nil); ok {
		t.Error("LargestPosition(nil) ok = true, want false")
	}
	got, ok := LargestPosition([]EnrichedAsset{
		asset("A", Crypto, 1, 10, 0),
		asset("B", Stocks, 1, 30, 0),
		asset("C", CS2, 1, 30, 0),
	})
	if !ok || got.Symbol != "B" {
		t.Errorf("LargestPosition() = %s, %v, want B, true", got.Symbol, ok)
	}
}

func TestSummarize(t *testing.T) {
	assets := []EnrichedAsset{
		asset("A", Crypto, 100, 150, 0),
		asset("B", Crypto, 100, 90, 0),
		asset("C", CS2, 50, 60, 0),
	}
	assets[0].Fees = A(2)

	s := Summarize(assets)
	if s.Total.Count != 3 || !s.Total.Value.Equal(A(300)) || !s.Total.Invested.Equal(A(250)) {
		t.Errorf("Total = %+v", s.Total)
	}
	if want := Percent(20); !s.Total.ProfitPct.Equal(want) {
		t.Errorf("Total.ProfitPct = %v, want %v", s.Total.ProfitPct, want)
	}
	if !s.Total.Fees.Equal(A(2)) {
		t.Errorf("Total.Fees = %v, want 2", s.Total.Fees)
	}
	if got := s.ByBucket[CryptoBucket]; got.Count != 2 || !got.Profit.Equal(A(40)) {
		t.Errorf("crypto totals = %+v", got)
	}
	if got, ok := s.ByBucket[StocksBucket]; !ok || got.Count != 0 {
		t.Errorf("stocks totals = %+v, %v, want an empty bucket", got, ok)
	}
	if got := s.ByBucket[Skins]; got.Count != 1 || !got.Value.Equal(A(60)) {
		t.Errorf("skins totals = %+v", got)
	}
}

func TestAnalyze(t *testing.T) {
	ps := Reconstruct([]Transaction{buy("2025-01-01", BTC, 1, 10000, 10)})
	quotes := Quotes{}
	quotes.Set("BTC", A(20000))
	a := Analyze(EnrichAll(ps, quotes, fixedNow), 0)

	if a.DiversificationScore != 0 {
		t.Errorf("DiversificationScore = %v, want 0", a.DiversificationScore)
	}
	if a.Risk != HighRisk {
		t.Errorf("Risk = %v, want %v", a.Risk, HighRisk)
	}
	if a.Concentration != HighlyConcentrated {
		t.Errorf("Concentration = %v, want %v", a.Concentration, HighlyConcentrated)
	}
	// 0*0.3 + 149.9*0.4 + 100*0.3
	if math.Abs(a.Health.Score-89.96) > 1e-6 || a.Health.Label != "Excellent" {
		t.Errorf("Health = %+v, want 89.96 Excellent", a.Health)
	}
	if !a.HasLargest || a.Largest.Symbol != "BTC" {
		t.Errorf("Largest = %s, %v, want BTC", a.Largest.Symbol, a.HasLargest)
	}
	if len(a.Top) != 1 || len(a.Worst) != 1 {
		t.Errorf("Top = %d, Worst = %d, want 1 and 1", len(a.Top), len(a.Worst))
	}
	if !a.Summary.Total.Profit.Equal(A(9990)) {
		t.Errorf("Summary.Total.Profit = %v, want 9990", a.Summary.Total.Profit)
	}
}
