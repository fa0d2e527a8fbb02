package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/holdings"
	md "github.com/nao1215/markdown"
)

var bucketTitles = map[holdings.Bucket]string{
	holdings.CryptoBucket: "Crypto",
	holdings.StocksBucket: "Stocks",
	holdings.Skins:        "Skins",
}

// BucketTitle returns the display title of a bucket.
func BucketTitle(b holdings.Bucket) string {
	if t, ok := bucketTitles[b]; ok {
		return t
	}
	return string(b)
}

// PositionsMarkdown renders the valued positions, one table per non empty
// bucket. Positions valued at their purchase price are flagged with a '*'.
func PositionsMarkdown(assets []holdings.EnrichedAsset, cur holdings.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Positions")

	if len(assets) == 0 {
		doc.PlainText("No open position.")
		return doc.String()
	}

	unpriced := false
	for _, b := range holdings.Buckets {
		table := md.TableSet{
			Header: []string{"Symbol", "Amount", "Avg. Price", "Price", "Value", "Profit", "Return", "Share", "Days"},
		}
		for _, a := range assets {
			if a.Bucket != b {
				continue
			}
			price := a.CurrentPrice.Format(cur)
			if !a.Priced {
				price += "*"
				unpriced = true
			}
			table.Rows = append(table.Rows, []string{
				escape(a.Symbol),
				a.Amount.String(),
				a.PurchasePrice.Format(cur),
				price,
				a.Value.Format(cur),
				a.Profit.SignedFormat(cur),
				a.ProfitPct.SignedString(),
				a.PercentOfPortfolio.String(),
				fmt.Sprint(a.HoldingDays),
			})
		}
		if len(table.Rows) == 0 {
			continue
		}
		doc.H2(BucketTitle(b))
		doc.Table(table)
	}
	if unpriced {
		doc.PlainText("\\* no current price, valued at the purchase price.")
	}
	return doc.String()
}

// HoldingsMarkdown renders every holding of the log, closed ones included,
// with their raw aggregates.
func HoldingsMarkdown(hs []holdings.Holding, cur holdings.Currency) string {
	var b strings.Builder
	s := newSection(func(w io.Writer) {
		fmt.Fprintln(w, "# Holdings")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Asset | Quantity | Total Cost | Fees | Avg. Price | Since | Trades | Status |")
		fmt.Fprintln(w, "|:---|---:|---:|---:|---:|:---|---:|:---|")
	})
	for _, h := range hs {
		s.row(&b)
		status := "open"
		if h.Closed() {
			status = "closed"
		}
		since := "-"
		if on := h.PurchaseDate(); !on.IsZero() {
			since = on.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %d | %s |\n",
			escape(h.Asset.String()),
			h.TotalQuantity,
			h.TotalCost.Format(cur),
			h.TotalFees.Format(cur),
			h.AveragePrice().Format(cur),
			since,
			len(h.Transactions),
			status,
		)
	}
	s.close(&b)
	return b.String()
}

// escape protects the characters that would break a markdown table cell.
func escape(s string) string { return strings.ReplaceAll(s, "|", "\\|") }
