// Package holdings rebuilds investment positions from an append-only
// transaction log and derives portfolio analytics from them.
//
// The engine is a chain of pure steps:
//   - Ledger: the append-only store of buy and sell transactions, persisted as
//     JSONL in insertion order.
//   - Reconstruct: folds the transactions into one open Position per asset,
//     grouped by display bucket (crypto, stocks, skins).
//   - Enrich: values each position with the current market price, falling back
//     to the purchase price when no quote is known.
//   - Analyze: computes the portfolio level metrics (performers,
//     diversification, risk, health, totals).
//   - Composer: merges the investment total with the household finances
//     (cash, debts, incomes and fixed costs) through a FinancialCalculator,
//     degrading to the investment total alone when the calculator is missing
//     or fails.
//
// Holdings are never persisted: they are recomputed from the ledger each time.
//
// This package serves as the engine of the `hld` command-line tool.
package holdings
