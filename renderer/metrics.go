package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/holdings"
)

// MetricsMarkdown renders the composed financial metrics.
func MetricsMarkdown(m holdings.FinancialMetrics, cur holdings.Currency) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Financial Metrics")
	fmt.Fprintln(&b)
	if m.Degraded {
		fmt.Fprintln(&b, "> Household finances are unavailable, the net worth only accounts for the investments.")
		fmt.Fprintln(&b)
	}
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Net Worth | %s |\n", m.NetWorth.Format(cur))
	fmt.Fprintf(&b, "| Investments | %s |\n", m.InvestmentTotal.Format(cur))
	if !m.Degraded {
		fmt.Fprintf(&b, "| Savings Rate | %s |\n", m.SavingsRate)
		fmt.Fprintf(&b, "| Cash Runway | %.1f months |\n", m.CashRunway)
		fmt.Fprintf(&b, "| Debt to Income | %s |\n", m.DebtToIncome)
		fmt.Fprintf(&b, "| Investment Ratio | %s |\n", m.InvestmentRatio)
	}

	conditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "## Fixed Costs")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Category | Monthly | Share |")
		fmt.Fprintln(w, "|:---|---:|---:|")
		for _, c := range m.CostBreakdown {
			fmt.Fprintf(w, "| %s | %s | %s |\n", escape(c.Category), c.Monthly.Format(cur), c.Share)
		}
		return len(m.CostBreakdown) > 0
	})
	return b.String()
}
