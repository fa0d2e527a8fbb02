package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/holdings"
)

// Transaction renders a transaction to a one line sentence.
func Transaction(tx holdings.Transaction) string {
	var verb string
	switch tx.Type {
	case holdings.Buy:
		verb = "Bought"
	case holdings.Sell:
		verb = "Sold"
	default:
		verb = string(tx.Type)
	}
	s := fmt.Sprintf("%s %s %s (%s) at %s", verb, tx.Quantity, tx.Asset.Symbol, tx.Asset.Category, tx.Price.Format(tx.Currency))
	if !tx.Fees.IsZero() {
		s += fmt.Sprintf(" + %s fees", tx.Fees.Format(tx.Currency))
	}
	return s
}

// TransactionsMarkdown renders the transactions as a table, in the given order.
func TransactionsMarkdown(txs []holdings.Transaction) string {
	var b strings.Builder
	s := newSection(func(w io.Writer) {
		fmt.Fprintln(w, "| Date | Type | Symbol | Category | Quantity | Price | Total | Fees | Memo |")
		fmt.Fprintln(w, "|:---|:---|:---|:---|---:|---:|---:|---:|:---|")
	}).withFooter(func(w io.Writer) {
		fmt.Fprintf(w, "\n%d transactions\n", len(txs))
	})
	for _, tx := range txs {
		s.row(&b)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Type,
			escape(tx.Asset.Symbol),
			tx.Asset.Category,
			tx.Quantity,
			tx.Price.Format(tx.Currency),
			tx.TotalCost.Format(tx.Currency),
			tx.Fees.Format(tx.Currency),
			escape(tx.Memo),
		)
	}
	s.close(&b)
	if b.Len() == 0 {
		return "No transactions.\n"
	}
	return b.String()
}
