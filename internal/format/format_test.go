package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func TestRenderNoTextFallsBackToStringConversion(t *testing.T) {
	got := Render(42, LayoutNone)
	if got != "42" {
		t.Errorf("Render(42) = %q, want %q", got, "42")
	}
}

func TestRenderNonJSONTextReturnedUnchanged(t *testing.T) {
	text := "Please complete login at https://kite.zerodha.com/connect/login"
	got := Render(textResult(text), LayoutNone)
	if got != text {
		t.Errorf("Render() = %q, want raw text unchanged", got)
	}
}

func TestRenderEmptyShapes(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"null", "null", "No data available"},
		{"empty object", "{}", "No data available"},
		{"empty list", "[]", "No records found"},
	}

	layouts := []Layout{LayoutNone, LayoutOrders, LayoutHoldings, LayoutPositions, LayoutTrades, LayoutGeneric}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, layout := range layouts {
				if got := Render(textResult(tc.text), layout); got != tc.want {
					t.Errorf("Render(%s, layout %d) = %q, want %q", tc.text, layout, got, tc.want)
				}
			}
		})
	}
}

func TestRenderOrdersScenario(t *testing.T) {
	text := `[{"order_id":"ORD1234567890","tradingsymbol":"INFY","transaction_type":"BUY",` +
		`"quantity":10,"price":1500.0,"average_price":1499.5,"status":"COMPLETE",` +
		`"order_timestamp":"2024-01-01T10:30:00"}]`

	sep := strings.Repeat("=", 100)
	want := strings.Join([]string{
		"\n" + sep,
		fmt.Sprintf("%-20s %-15s %-5s %-5s %-10s %-10s %-12s %-20s",
			"Order ID", "Symbol", "Type", "Qty", "Price", "Avg", "Status", "Time"),
		sep,
		fmt.Sprintf("%-20s %-15s %-5s %-5s %-10.2f %-10.2f %-12s %-20s",
			"1234567890", "INFY", "BUY", "10", 1500.0, 1499.5, "COMPLETE", "10:30:00"),
		sep,
		"\nTotal orders: 1",
	}, "\n")

	got := Render(textResult(text), LayoutOrders)
	if got != want {
		t.Errorf("orders table mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderOrdersMissingFieldsDefault(t *testing.T) {
	got := Render(textResult(`[{}]`), LayoutOrders)

	if !strings.Contains(got, "N/A") {
		t.Errorf("missing string fields should render the placeholder, got:\n%s", got)
	}
	if !strings.Contains(got, "0.00") {
		t.Errorf("missing numeric fields should default to zero, got:\n%s", got)
	}
	if !strings.Contains(got, "Total orders: 1") {
		t.Errorf("footer should count rows, got:\n%s", got)
	}
}

func TestRenderHoldingsTotals(t *testing.T) {
	text := `[
		{"tradingsymbol":"INFY","quantity":10,"average_price":1400.0,"last_price":1500.0,"pnl":1000.0},
		{"tradingsymbol":"FREEBIE","quantity":5,"average_price":0,"last_price":2.0,"pnl":10.0}
	]`

	got := Render(textResult(text), LayoutHoldings)

	// Investment 14,000; current 15,000 + 10 = 15,010.
	for _, want := range []string{
		"Total Investment: ₹14,000.00",
		"Current Value: ₹15,010.00",
		"Total P&L: ₹1,010.00 (+7.21%)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("holdings footer missing %q\ngot:\n%s", want, got)
		}
	}

	// The zero-cost row must report 0.00%, not a division failure.
	if !strings.Contains(got, "  0.00%") {
		t.Errorf("zero average cost should report 0%%, got:\n%s", got)
	}
	// Row-level P&L % for INFY: (15000-14000)/14000*100.
	if !strings.Contains(got, "  7.14%") {
		t.Errorf("expected per-row P&L%% 7.14, got:\n%s", got)
	}
}

func TestRenderHoldingsNegativePnl(t *testing.T) {
	text := `[{"tradingsymbol":"WIPRO","quantity":2,"average_price":500.0,"last_price":400.0,"pnl":-200.0}]`

	got := Render(textResult(text), LayoutHoldings)

	if !strings.Contains(got, "-₹200.00") {
		t.Errorf("negative row P&L should place the minus before the currency symbol, got:\n%s", got)
	}
	if !strings.Contains(got, "Total P&L: ₹-200.00 (-20.00%)") {
		t.Errorf("negative totals line mismatch, got:\n%s", got)
	}
}

func TestRenderPositions(t *testing.T) {
	text := `[
		{"tradingsymbol":"SBIN","product":"MIS","quantity":50,"average_price":600.0,"last_price":615.0,"pnl":750.0},
		{"tradingsymbol":"GIFT","product":"CNC","quantity":1,"average_price":0,"last_price":10.0,"pnl":10.0}
	]`

	got := Render(textResult(text), LayoutPositions)

	if !strings.Contains(got, "  2.50%") {
		t.Errorf("per-row P&L%% (615-600)/600 should be 2.50, got:\n%s", got)
	}
	if !strings.Contains(got, "  0.00%") {
		t.Errorf("zero average price should report 0%%, got:\n%s", got)
	}
	if !strings.Contains(got, "Total positions: 2") {
		t.Errorf("positions footer should count rows, got:\n%s", got)
	}
	if strings.Contains(got, "Total Investment") {
		t.Errorf("positions table must not aggregate portfolio totals, got:\n%s", got)
	}
}

func TestRenderTradesNumericID(t *testing.T) {
	text := `[{"trade_id":123456789012,"tradingsymbol":"RELIANCE","transaction_type":"SELL",` +
		`"quantity":3,"price":2400.0,"fill_timestamp":"2024-01-01T11:45:30"}]`

	got := Render(textResult(text), LayoutTrades)

	if !strings.Contains(got, "3456789012") {
		t.Errorf("numeric trade id should be stringified and kept to last 10 chars, got:\n%s", got)
	}
	if strings.Contains(got, "123456789012") {
		t.Errorf("trade id should be truncated to 10 chars, got:\n%s", got)
	}
	if !strings.Contains(got, "11:45:30") {
		t.Errorf("fill time-of-day missing, got:\n%s", got)
	}
	if !strings.Contains(got, "Total trades: 1") {
		t.Errorf("trades footer should count rows, got:\n%s", got)
	}
}

func TestRenderGenericListSeven(t *testing.T) {
	got := Render(textResult(`[1,2,3,4,5,6,7]`), LayoutGeneric)

	want := "\nShowing 7 records:\n" +
		"1. 1\n2. 2\n3. 3\n4. 4\n5. 5\n" +
		"... and 2 more"
	if got != want {
		t.Errorf("generic list = %q, want %q", got, want)
	}
}

func TestRenderGenericListShortIsJSON(t *testing.T) {
	got := Render(textResult(`[1,2,3]`), LayoutNone)

	if !strings.HasPrefix(got, "[") || !strings.Contains(got, "  1") {
		t.Errorf("short lists should re-serialize as indented JSON, got %q", got)
	}
}

func TestRenderGenericListMapElements(t *testing.T) {
	text := `[
		{"a":1,"b":2,"c":3,"d":4},
		{"x":"y"},
		{"k":1},
		{"m":2},
		{"n":3},
		{"o":4}
	]`

	got := Render(textResult(text), LayoutNone)

	if !strings.Contains(got, "Showing 6 records:") {
		t.Errorf("expected record count header, got:\n%s", got)
	}
	// Map elements show at most 3 key:value pairs with a trailing ellipsis.
	if !strings.Contains(got, "1. a: 1, b: 2, c: 3...") {
		t.Errorf("map summary should list first 3 sorted pairs, got:\n%s", got)
	}
	if !strings.Contains(got, "... and 1 more") {
		t.Errorf("expected remainder trailer, got:\n%s", got)
	}
}

func TestRenderMapping(t *testing.T) {
	text := `{"user_id":"AB1234","net_value":1500000.5,"segment":"equity"}`

	got := Render(textResult(text), LayoutNone)

	want := "net_value: 1,500,000.5\nsegment: equity\nuser_id: AB1234"
	if got != want {
		t.Errorf("mapping rendering = %q, want %q", got, want)
	}
}

func TestRenderScalar(t *testing.T) {
	if got := Render(textResult(`"hello"`), LayoutNone); got != `"hello"` {
		t.Errorf("scalar string = %q, want %q", got, `"hello"`)
	}
	if got := Render(textResult(`3.5`), LayoutNone); got != "3.5" {
		t.Errorf("scalar number = %q, want %q", got, "3.5")
	}
}

func TestRenderIdempotent(t *testing.T) {
	res := textResult(`[{"order_id":"ORD1","tradingsymbol":"TCS","quantity":1,"price":4000.0}]`)

	first := Render(res, LayoutOrders)
	second := Render(res, LayoutOrders)
	if first != second {
		t.Error("rendering the same value twice should yield identical output")
	}
}

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		"name":  "INFY",
		"qty":   float64(10),
		"id":    float64(12345),
		"wrong": []any{"not", "a", "scalar"},
	}

	if got := rec.Str("name", "N/A"); got != "INFY" {
		t.Errorf("Str = %q, want INFY", got)
	}
	if got := rec.Str("missing", "N/A"); got != "N/A" {
		t.Errorf("Str default = %q, want N/A", got)
	}
	if got := rec.Str("qty", "N/A"); got != "N/A" {
		t.Errorf("Str on numeric field = %q, want default", got)
	}
	if got := rec.Num("qty", 0); got != 10 {
		t.Errorf("Num = %v, want 10", got)
	}
	if got := rec.Num("wrong", -1); got != -1 {
		t.Errorf("Num on mistyped field = %v, want default", got)
	}
	if got := rec.ID("id", "N/A"); got != "12345" {
		t.Errorf("ID = %q, want 12345", got)
	}
	if got := rec.ID("name", "N/A"); got != "INFY" {
		t.Errorf("ID on string = %q, want INFY", got)
	}
	if got := rec.ID("wrong", "N/A"); got != "N/A" {
		t.Errorf("ID on mistyped field = %q, want default", got)
	}
}

func TestNumberHelpers(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1000, "1,000.00"},
		{1234.5, "1,234.50"},
		{-1234.5, "-1,234.50"},
		{1234567.89, "1,234,567.89"},
	}
	for _, tc := range cases {
		if got := comma2(tc.in); got != tc.want {
			t.Errorf("comma2(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got := commaNumber(1500000.5); got != "1,500,000.5" {
		t.Errorf("commaNumber = %q, want 1,500,000.5", got)
	}
	if got := commaNumber(42); got != "42" {
		t.Errorf("commaNumber(42) = %q, want 42", got)
	}

	if got := timeOfDay("2024-01-01T10:30:00"); got != "10:30:00" {
		t.Errorf("timeOfDay = %q, want 10:30:00", got)
	}
	if got := timeOfDay("2024-01-01 10:30:00"); got != "N/A" {
		t.Errorf("timeOfDay without separator = %q, want N/A", got)
	}
	if got := timeOfDay("2024-01-01T"); got != "" {
		t.Errorf("timeOfDay with empty clock = %q, want empty", got)
	}

	if got := lastN("ORD1234567890", 10); got != "1234567890" {
		t.Errorf("lastN = %q, want 1234567890", got)
	}
	if got := firstN("AB", 14); got != "AB" {
		t.Errorf("firstN = %q, want AB", got)
	}
}
