// Package kite is the client for the Kite MCP tool-invocation server. It
// owns the transport session, the logged-in flag, and the browser-based
// login flow; every remote operation goes through Invoke.
package kite

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	clientName    = "kite-mcp-exploration"
	clientVersion = "0.1.0"
)

// transportBuilder is overridden in tests to stub the transport factory.
var transportBuilder = func(endpoint string) mcp.Transport {
	return &mcp.SSEClientTransport{Endpoint: endpoint}
}

// Client talks to the Kite MCP server. It is not safe for concurrent use;
// the shell drives exactly one operation at a time.
type Client struct {
	url     string
	impl    *mcp.Client
	session *mcp.ClientSession

	loggedIn bool

	autoOpenBrowser bool
	confirmDelay    time.Duration
	confirmIn       *bufio.Reader

	log *slog.Logger
	out io.Writer
}

// Options configures a Client. Zero-value fields fall back to stdout, stdin,
// and the default slog logger.
type Options struct {
	URL             string
	AutoOpenBrowser bool
	ConfirmDelay    time.Duration
	Logger          *slog.Logger
	Out             io.Writer
	ConfirmInput    io.Reader
}

// New creates a client for the given MCP endpoint. Connect must be called
// before any tool invocation.
func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	confirmIn := opts.ConfirmInput
	if confirmIn == nil {
		confirmIn = os.Stdin
	}

	return &Client{
		url:             opts.URL,
		impl:            mcp.NewClient(&mcp.Implementation{Name: clientName, Version: clientVersion}, nil),
		autoOpenBrowser: opts.AutoOpenBrowser,
		confirmDelay:    opts.ConfirmDelay,
		confirmIn:       bufio.NewReader(confirmIn),
		log:             logger,
		out:             out,
	}
}

// Connect establishes the MCP session over the configured transport.
func (c *Client) Connect(ctx context.Context) error {
	transport := transportBuilder(c.url)
	session, err := c.impl.Connect(ctx, transport, nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", c.url, err)
	}
	c.session = session
	c.log.Info("connected to kite mcp server", "url", c.url)
	fmt.Fprintf(c.out, "Connected to Kite MCP server at %s\n", c.url)
	return nil
}

// Close releases the transport session. Safe to call on every exit path,
// including before Connect or after a failed Connect.
func (c *Client) Close() error {
	if c == nil || c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

// Invoke calls a named remote tool with the given parameter map and returns
// the raw result envelope. Calling before login succeeds emits a warning but
// is not blocked; the login tool itself is exempt. Transport failures are
// logged with the tool name and propagated; there are no retries.
func (c *Client) Invoke(ctx context.Context, name string, params map[string]any) (*mcp.CallToolResult, error) {
	if c.session == nil {
		return nil, errors.New("not connected")
	}

	if !c.loggedIn && name != "login" {
		fmt.Fprintln(c.out, "Warning: not logged in. Some tools may fail.")
	}

	if params == nil {
		params = map[string]any{}
	}

	c.log.Info("calling tool", "tool", name)
	fmt.Fprintf(c.out, "Calling tool: %s\n", name)

	res, err := c.session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: params})
	if err != nil {
		c.log.Error("tool call failed", "tool", name, "error", err)
		return nil, fmt.Errorf("calling %s: %w", name, err)
	}
	return res, nil
}

// ListTools returns the names of all tools the server advertises.
func (c *Client) ListTools(ctx context.Context) ([]string, error) {
	if c.session == nil {
		return nil, errors.New("not connected")
	}

	var names []string
	for tool, err := range c.session.Tools(ctx, nil) {
		if err != nil {
			return nil, fmt.Errorf("listing tools: %w", err)
		}
		names = append(names, tool.Name)
	}
	return names, nil
}

// LoggedIn reports whether the login flow has completed.
func (c *Client) LoggedIn() bool {
	return c.loggedIn
}
