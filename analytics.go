package holdings

import (
	"math"
	"slices"
)

// DefaultPerformersLimit is the number of performers returned when no limit is given.
const DefaultPerformersLimit = 5

// RiskLevel classifies the portfolio risk.
type RiskLevel string

const (
	LowRisk    RiskLevel = "Low"
	MediumRisk RiskLevel = "Medium"
	HighRisk   RiskLevel = "High"
)

// Concentration labels the diversification score.
type Concentration string

const (
	Diversified        Concentration = "Diversified"
	Balanced           Concentration = "Balanced"
	HighlyConcentrated Concentration = "Highly Concentrated"
)

// HealthRating is the composite health of the portfolio.
type HealthRating struct {
	Score float64
	Label string
	Color string // display color, as a css hex value
}

// health bands, from the best to the worst.
var healthBands = []struct {
	min   float64
	label string
	color string
}{
	{75, "Excellent", "#10b981"},
	{60, "Good", "#3b82f6"},
	{40, "Fair", "#f59e0b"},
	{math.Inf(-1), "Poor", "#ef4444"},
}

// invested keeps assets with a positive invested amount, in input order.
func invested(assets []EnrichedAsset) []EnrichedAsset {
	var res []EnrichedAsset
	for _, a := range assets {
		if a.Invested.IsPositive() {
			res = append(res, a)
		}
	}
	return res
}

func performers(assets []EnrichedAsset, limit int, cmp func(a, b EnrichedAsset) int) []EnrichedAsset {
	if limit <= 0 {
		limit = DefaultPerformersLimit
	}
	res := invested(assets)
	slices.SortStableFunc(res, cmp)
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

// TopPerformers returns up to limit assets with the best return, best first.
// Assets with nothing invested are ignored; ties keep the input order.
func TopPerformers(assets []EnrichedAsset, limit int) []EnrichedAsset {
	return performers(assets, limit, func(a, b EnrichedAsset) int {
		return compare(b.ProfitPct, a.ProfitPct)
	})
}

// WorstPerformers returns up to limit assets with the worst return, worst first.
func WorstPerformers(assets []EnrichedAsset, limit int) []EnrichedAsset {
	return performers(assets, limit, func(a, b EnrichedAsset) int {
		return compare(a.ProfitPct, b.ProfitPct)
	})
}

func compare(a, b Percent) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// HHI returns the Herfindahl–Hirschman index of the portfolio: the sum of the
// squared percentage shares (10000 for a single asset).
func HHI(assets []EnrichedAsset) float64 {
	var hhi float64
	for _, a := range assets {
		share := float64(a.PercentOfPortfolio)
		hhi += share * share
	}
	return hhi
}

// DiversificationScore maps the HHI to a 0..100 score, 0 being a single asset.
// An empty portfolio scores 0.
func DiversificationScore(assets []EnrichedAsset) float64 {
	if len(assets) == 0 {
		return 0
	}
	return math.Max(0, 100-HHI(assets)/100)
}

// AverageReturn is the mean return of the assets with a positive invested amount.
func AverageReturn(assets []EnrichedAsset) Percent {
	inv := invested(assets)
	if len(inv) == 0 {
		return 0
	}
	var sum Percent
	for _, a := range inv {
		sum += a.ProfitPct
	}
	return sum / Percent(len(inv))
}

// ClassifyRisk derives the risk level from the diversification score and the
// average return.
func ClassifyRisk(score float64, avg Percent) RiskLevel {
	switch {
	case score < 30 || avg.Abs() > 50:
		return HighRisk
	case score < 60 || avg.Abs() > 25:
		return MediumRisk
	}
	return LowRisk
}

// ClassifyConcentration labels a diversification score.
func ClassifyConcentration(score float64) Concentration {
	switch {
	case score >= 70:
		return Diversified
	case score >= 40:
		return Balanced
	}
	return HighlyConcentrated
}

// ProfitableRatio is the percentage of assets with a positive profit.
func ProfitableRatio(assets []EnrichedAsset) Percent {
	if len(assets) == 0 {
		return 0
	}
	n := 0
	for _, a := range assets {
		if a.Profit.IsPositive() {
			n++
		}
	}
	return Percent(100 * float64(n) / float64(len(assets)))
}

// Health rates the portfolio from its diversification score, average return
// and share of profitable assets.
func Health(score float64, avg Percent, assets []EnrichedAsset) HealthRating {
	s := score*0.3 + float64(avg+50)*0.4 + float64(ProfitableRatio(assets))*0.3
	for _, b := range healthBands {
		if s >= b.min {
			return HealthRating{Score: s, Label: b.label, Color: b.color}
		}
	}
	// unreachable, the last band has no lower bound.
	return HealthRating{Score: s}
}

// LargestPosition returns the asset with the highest value, the first one on
// ties. ok is false for an empty portfolio.
func LargestPosition(assets []EnrichedAsset) (largest EnrichedAsset, ok bool) {
	for i, a := range assets {
		if i == 0 || a.Value.GreaterThan(largest.Value) {
			largest = a
		}
	}
	return largest, len(assets) > 0
}

// Totals aggregates a set of assets.
type Totals struct {
	Count     int
	Value     Amount
	Invested  Amount
	Fees      Amount
	Profit    Amount
	ProfitPct Percent
}

func (t *Totals) add(a EnrichedAsset) {
	t.Count++
	t.Value = t.Value.Add(a.Value)
	t.Invested = t.Invested.Add(a.Invested)
	t.Fees = t.Fees.Add(a.Fees)
	t.Profit = t.Profit.Add(a.Profit)
	t.ProfitPct = t.Profit.Ratio(t.Invested)
}

// Summary holds the portfolio totals, overall and per bucket.
type Summary struct {
	Total    Totals
	ByBucket map[Bucket]Totals
}

// Summarize computes the portfolio totals.
func Summarize(assets []EnrichedAsset) Summary {
	s := Summary{ByBucket: make(map[Bucket]Totals, len(Buckets))}
	for _, b := range Buckets {
		s.ByBucket[b] = Totals{}
	}
	for _, a := range assets {
		s.Total.add(a)
		t := s.ByBucket[a.Bucket]
		t.add(a)
		s.ByBucket[a.Bucket] = t
	}
	return s
}

// Analysis gathers every portfolio level metric.
type Analysis struct {
	Summary              Summary
	Top                  []EnrichedAsset
	Worst                []EnrichedAsset
	DiversificationScore float64
	AverageReturn        Percent
	Risk                 RiskLevel
	Concentration        Concentration
	Health               HealthRating
	Largest              EnrichedAsset
	HasLargest           bool
}

// Analyze computes every portfolio metric of the enriched assets.
// limit bounds the top and worst performer lists.
func Analyze(assets []EnrichedAsset, limit int) Analysis {
	score := DiversificationScore(assets)
	avg := AverageReturn(assets)
	largest, ok := LargestPosition(assets)
	return Analysis{
		Summary:              Summarize(assets),
		Top:                  TopPerformers(assets, limit),
		Worst:                WorstPerformers(assets, limit),
		DiversificationScore: score,
		AverageReturn:        avg,
		Risk:                 ClassifyRisk(score, avg),
		Concentration:        ClassifyConcentration(score),
		Health:               Health(score, avg, assets),
		Largest:              largest,
		HasLargest:           ok,
	}
}
