package kite

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Convenience wrappers for the common account-data tools.

// Holdings fetches the current holdings.
func (c *Client) Holdings(ctx context.Context) (*mcp.CallToolResult, error) {
	return c.Invoke(ctx, "get_holdings", nil)
}

// Positions fetches the current positions.
func (c *Client) Positions(ctx context.Context) (*mcp.CallToolResult, error) {
	return c.Invoke(ctx, "get_positions", nil)
}

// Orders fetches all orders.
func (c *Client) Orders(ctx context.Context) (*mcp.CallToolResult, error) {
	return c.Invoke(ctx, "get_orders", nil)
}

// OrderHistory fetches the history of a single order.
func (c *Client) OrderHistory(ctx context.Context, orderID string) (*mcp.CallToolResult, error) {
	return c.Invoke(ctx, "get_order_history", map[string]any{"order_id": orderID})
}

// Trades fetches all executed trades.
func (c *Client) Trades(ctx context.Context) (*mcp.CallToolResult, error) {
	return c.Invoke(ctx, "get_trades", nil)
}

// Instruments fetches the instrument list for an exchange.
func (c *Client) Instruments(ctx context.Context, exchange string) (*mcp.CallToolResult, error) {
	return c.Invoke(ctx, "get_instruments", map[string]any{"exchange": exchange})
}

// Quote fetches quotes for the given instruments.
func (c *Client) Quote(ctx context.Context, instruments []string) (*mcp.CallToolResult, error) {
	return c.Invoke(ctx, "get_quote", map[string]any{"instruments": instruments})
}

// Profile fetches the account profile.
func (c *Client) Profile(ctx context.Context) (*mcp.CallToolResult, error) {
	return c.Invoke(ctx, "get_profile", nil)
}

// PlaceOrder submits an order with the given parameters, e.g. tradingsymbol,
// exchange, transaction_type, quantity, order_type, product.
func (c *Client) PlaceOrder(ctx context.Context, params map[string]any) (*mcp.CallToolResult, error) {
	return c.Invoke(ctx, "place_order", params)
}
