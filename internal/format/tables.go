package format

import (
	"fmt"
	"sort"
	"strings"
)

// row converts a list element to a Record. Non-object elements yield an
// empty record so every field access falls back to its default instead of
// aborting the table.
func row(item any) Record {
	if rec, ok := asRecord(item); ok {
		return rec
	}
	return Record{}
}

// ordersTable renders orders as a fixed-width table.
func ordersTable(orders []any) string {
	if len(orders) == 0 {
		return "No orders found"
	}

	sep := strings.Repeat("=", 100)
	out := []string{
		"\n" + sep,
		fmt.Sprintf("%-20s %-15s %-5s %-5s %-10s %-10s %-12s %-20s",
			"Order ID", "Symbol", "Type", "Qty", "Price", "Avg", "Status", "Time"),
		sep,
	}

	for _, item := range orders {
		rec := row(item)
		out = append(out, fmt.Sprintf("%-20s %-15s %-5s %-5s %-10.2f %-10.2f %-12s %-20s",
			lastN(rec.ID("order_id", placeholder), 10),
			firstN(rec.Str("tradingsymbol", placeholder), 14),
			firstN(rec.Str("transaction_type", placeholder), 4),
			formatQty(rec.Num("quantity", 0)),
			rec.Num("price", 0),
			rec.Num("average_price", 0),
			firstN(rec.Str("status", placeholder), 11),
			timeOfDay(rec.Str("order_timestamp", "")),
		))
	}

	out = append(out, sep)
	out = append(out, fmt.Sprintf("\nTotal orders: %d", len(orders)))

	return strings.Join(out, "\n")
}

// holdingsTable renders portfolio holdings with portfolio-level totals.
func holdingsTable(holdings []any) string {
	if len(holdings) == 0 {
		return "No holdings found"
	}

	sep := strings.Repeat("=", 90)
	out := []string{
		"\n" + sep,
		fmt.Sprintf("%-15s %-8s %-12s %-12s %-15s %-10s",
			"Symbol", "Qty", "Avg Cost", "LTP", "P&L", "P&L %"),
		sep,
	}

	var totalInvestment, totalCurrent float64

	for _, item := range holdings {
		rec := row(item)
		qty := rec.Num("quantity", 0)
		avgPrice := rec.Num("average_price", 0)
		ltp := rec.Num("last_price", 0)
		pnl := rec.Num("pnl", 0)

		investment := avgPrice * qty
		currentValue := ltp * qty
		// Zero-cost rows report 0% rather than dividing by zero.
		pnlPct := 0.0
		if investment > 0 {
			pnlPct = (currentValue - investment) / investment * 100
		}

		totalInvestment += investment
		totalCurrent += currentValue

		out = append(out, fmt.Sprintf("%-15s %-8s %s%-10.2f %s%-10.2f %-15s %6.2f%%",
			firstN(rec.Str("tradingsymbol", placeholder), 14),
			formatQty(qty),
			rupee, avgPrice,
			rupee, ltp,
			signedMoney(pnl),
			pnlPct,
		))
	}

	out = append(out, sep)

	totalPnl := totalCurrent - totalInvestment
	totalPnlPct := 0.0
	if totalInvestment > 0 {
		totalPnlPct = totalPnl / totalInvestment * 100
	}
	out = append(out, fmt.Sprintf("\nTotal Investment: %s%s", rupee, comma2(totalInvestment)))
	out = append(out, fmt.Sprintf("Current Value: %s%s", rupee, comma2(totalCurrent)))
	out = append(out, fmt.Sprintf("Total P&L: %s%s (%+.2f%%)", rupee, comma2(totalPnl), totalPnlPct))

	return strings.Join(out, "\n")
}

// positionsTable renders open positions with per-row P&L, no totals.
func positionsTable(positions []any) string {
	if len(positions) == 0 {
		return "No positions found"
	}

	sep := strings.Repeat("=", 100)
	out := []string{
		"\n" + sep,
		fmt.Sprintf("%-15s %-8s %-6s %-10s %-10s %-15s %-10s",
			"Symbol", "Product", "Qty", "Avg", "LTP", "P&L", "P&L %"),
		sep,
	}

	for _, item := range positions {
		rec := row(item)
		avgPrice := rec.Num("average_price", 0)
		ltp := rec.Num("last_price", 0)
		pnl := rec.Num("pnl", 0)

		pnlPct := 0.0
		if avgPrice > 0 {
			pnlPct = (ltp - avgPrice) / avgPrice * 100
		}

		out = append(out, fmt.Sprintf("%-15s %-8s %-6s %s%-8.2f %s%-8.2f %-15s %6.2f%%",
			firstN(rec.Str("tradingsymbol", placeholder), 14),
			firstN(rec.Str("product", placeholder), 7),
			formatQty(rec.Num("quantity", 0)),
			rupee, avgPrice,
			rupee, ltp,
			signedMoney(pnl),
			pnlPct,
		))
	}

	out = append(out, sep)
	out = append(out, fmt.Sprintf("\nTotal positions: %d", len(positions)))

	return strings.Join(out, "\n")
}

// tradesTable renders executed trades.
func tradesTable(trades []any) string {
	if len(trades) == 0 {
		return "No trades found"
	}

	sep := strings.Repeat("=", 90)
	out := []string{
		"\n" + sep,
		fmt.Sprintf("%-15s %-15s %-5s %-5s %-12s %-20s",
			"Trade ID", "Symbol", "Type", "Qty", "Price", "Time"),
		sep,
	}

	for _, item := range trades {
		rec := row(item)
		out = append(out, fmt.Sprintf("%-15s %-15s %-5s %-5s %s%-10.2f %-20s",
			lastN(rec.ID("trade_id", placeholder), 10),
			firstN(rec.Str("tradingsymbol", placeholder), 14),
			firstN(rec.Str("transaction_type", placeholder), 4),
			formatQty(rec.Num("quantity", 0)),
			rupee, rec.Num("price", 0),
			timeOfDay(rec.Str("fill_timestamp", "")),
		))
	}

	out = append(out, sep)
	out = append(out, fmt.Sprintf("\nTotal trades: %d", len(trades)))

	return strings.Join(out, "\n")
}

// signedMoney renders a currency amount with the sign ahead of the symbol
// for negative values, e.g. "-₹1,234.50".
func signedMoney(v float64) string {
	if v >= 0 {
		return rupee + comma2(v)
	}
	return "-" + rupee + comma2(-v)
}

// genericList summarizes a list with no semantic layout. Short lists are
// shown whole as indented JSON; longer ones as up to five numbered entries
// with a trailer for the remainder.
func genericList(items []any) string {
	if len(items) <= 3 {
		return indentJSON(items)
	}

	out := []string{fmt.Sprintf("\nShowing %d records:", len(items))}

	limit := len(items)
	if limit > 5 {
		limit = 5
	}
	for i, item := range items[:limit] {
		if rec, ok := asRecord(item); ok {
			keys := sortedKeys(rec)
			if len(keys) > 3 {
				keys = keys[:3]
			}
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, fmt.Sprintf("%s: %v", k, rec[k]))
			}
			out = append(out, fmt.Sprintf("%d. %s...", i+1, strings.Join(parts, ", ")))
		} else {
			out = append(out, fmt.Sprintf("%d. %v", i+1, item))
		}
	}

	if len(items) > 5 {
		out = append(out, fmt.Sprintf("... and %d more", len(items)-5))
	}

	return strings.Join(out, "\n")
}

// keyValueListing renders an object one key per line, with numeric values
// comma-grouped.
func keyValueListing(data map[string]any) string {
	keys := sortedKeys(data)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := data[k].(type) {
		case float64:
			out = append(out, fmt.Sprintf("%s: %s", k, commaNumber(v)))
		default:
			out = append(out, fmt.Sprintf("%s: %v", k, v))
		}
	}
	return strings.Join(out, "\n")
}

// sortedKeys returns the map's keys in lexical order. JSON object order is
// not preserved by decoding, so sorting keeps rendering deterministic.
func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
