package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/holdings"
	md "github.com/nao1215/markdown"
)

// AnalysisMarkdown renders the portfolio analytics.
func AnalysisMarkdown(a holdings.Analysis, cur holdings.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Analysis")

	total := a.Summary.Total
	summary := md.TableSet{
		Header: []string{"Bucket", "Positions", "Invested", "Value", "Profit", "Return"},
	}
	for _, b := range holdings.Buckets {
		t := a.Summary.ByBucket[b]
		summary.Rows = append(summary.Rows, []string{
			BucketTitle(b),
			fmt.Sprint(t.Count),
			t.Invested.Format(cur),
			t.Value.Format(cur),
			t.Profit.SignedFormat(cur),
			t.ProfitPct.SignedString(),
		})
	}
	summary.Rows = append(summary.Rows, []string{
		md.Bold("Total"),
		md.Bold(fmt.Sprint(total.Count)),
		md.Bold(total.Invested.Format(cur)),
		md.Bold(total.Value.Format(cur)),
		md.Bold(total.Profit.SignedFormat(cur)),
		md.Bold(total.ProfitPct.SignedString()),
	})
	doc.Table(summary)
	if !total.Fees.IsZero() {
		doc.PlainText(fmt.Sprintf("Fees paid: %s", total.Fees.Format(cur)))
	}

	doc.H2("Health")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Health", fmt.Sprintf("%s (%.1f)", a.Health.Label, a.Health.Score)},
			{"Diversification", fmt.Sprintf("%.1f / 100", a.DiversificationScore)},
			{"Concentration", string(a.Concentration)},
			{"Risk", string(a.Risk)},
			{"Average Return", a.AverageReturn.SignedString()},
		},
	})
	if a.HasLargest {
		doc.PlainText(fmt.Sprintf("Largest position: %s with %s of the portfolio (%s).",
			escape(a.Largest.Symbol), a.Largest.PercentOfPortfolio, a.Largest.Value.Format(cur)))
	}

	performers := func(title string, assets []holdings.EnrichedAsset) {
		if len(assets) == 0 {
			return
		}
		doc.H2(title)
		table := md.TableSet{
			Header: []string{"Symbol", "Bucket", "Profit", "Return"},
		}
		for _, asset := range assets {
			table.Rows = append(table.Rows, []string{
				escape(asset.Symbol),
				BucketTitle(asset.Bucket),
				asset.Profit.SignedFormat(cur),
				asset.ProfitPct.SignedString(),
			})
		}
		doc.Table(table)
	}
	performers("Top Performers", a.Top)
	performers("Worst Performers", a.Worst)

	return doc.String()
}
