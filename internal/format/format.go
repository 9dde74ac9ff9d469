// Package format renders decoded tool-result payloads as human-readable
// text. List-shaped data is laid out as a fixed-width table selected by a
// caller-supplied layout; objects become key/value listings and anything
// else falls back to indented JSON. Rendering is total: missing or mistyped
// record fields default rather than fail, and no input aborts the pipeline.
package format

import (
	"encoding/json"
	"fmt"

	"github.com/pankajmaurya/kite-mcp-exploration/internal/envelope"
)

// Layout selects the table layout applied to list-shaped data. It is always
// asserted by the caller, never inferred from the payload itself.
type Layout int

const (
	// LayoutNone applies no semantic layout; lists render generically.
	LayoutNone Layout = iota
	// LayoutOrders renders an order-book table.
	LayoutOrders
	// LayoutHoldings renders a portfolio holdings table with totals.
	LayoutHoldings
	// LayoutPositions renders a per-row positions table.
	LayoutPositions
	// LayoutTrades renders an executed-trades table.
	LayoutTrades
	// LayoutGeneric forces the generic list summary.
	LayoutGeneric
)

const (
	placeholder = "N/A"
	rupee       = "₹"

	noData    = "No data available"
	noRecords = "No records found"
)

// Render formats a raw tool-result envelope for display. The text payload is
// extracted first; when the envelope carries none, the raw value's default
// string conversion is returned. Text that fails to decode as JSON is
// already human-readable and is returned unchanged.
func Render(raw any, layout Layout) string {
	text, ok := envelope.Text(raw)
	if !ok {
		return fmt.Sprintf("%v", raw)
	}

	var data any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return text
	}

	return renderValue(data, layout)
}

// renderValue dispatches on the decoded value's shape.
func renderValue(data any, layout Layout) string {
	switch v := data.(type) {
	case nil:
		return noData

	case []any:
		if len(v) == 0 {
			return noRecords
		}
		switch layout {
		case LayoutOrders:
			return ordersTable(v)
		case LayoutHoldings:
			return holdingsTable(v)
		case LayoutPositions:
			return positionsTable(v)
		case LayoutTrades:
			return tradesTable(v)
		default:
			return genericList(v)
		}

	case map[string]any:
		if len(v) == 0 {
			return noData
		}
		return keyValueListing(v)

	default:
		return indentJSON(v)
	}
}

// indentJSON re-serializes a value with two-space indentation.
func indentJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
