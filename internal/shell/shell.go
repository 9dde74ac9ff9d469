// Package shell is the interactive menu loop: it maps user commands to tool
// invocations and renders the results. Every failure inside the loop is
// printed and the loop continues; only exit commands, end of input, or
// context cancellation terminate it.
package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pankajmaurya/kite-mcp-exploration/internal/format"
)

// Styles.
var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Session abstracts the Kite MCP client operations the shell drives.
type Session interface {
	Login(ctx context.Context) error
	Invoke(ctx context.Context, name string, params map[string]any) (*mcp.CallToolResult, error)
	ListTools(ctx context.Context) ([]string, error)
	Holdings(ctx context.Context) (*mcp.CallToolResult, error)
	Positions(ctx context.Context) (*mcp.CallToolResult, error)
	Orders(ctx context.Context) (*mcp.CallToolResult, error)
	Trades(ctx context.Context) (*mcp.CallToolResult, error)
	Profile(ctx context.Context) (*mcp.CallToolResult, error)
}

// Shell drives a Session from line-oriented user input.
type Shell struct {
	sess Session
	in   *bufio.Scanner
	out  io.Writer
	log  *slog.Logger
}

// New creates a shell reading commands from in and writing to out.
func New(sess Session, in io.Reader, out io.Writer, log *slog.Logger) *Shell {
	return &Shell{
		sess: sess,
		in:   bufio.NewScanner(in),
		out:  out,
		log:  log,
	}
}

// Run logs in and then serves the interactive menu until the user exits or
// input ends. A failed login aborts the session; failures inside the loop do
// not.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.sess.Login(ctx); err != nil {
		fmt.Fprintf(s.out, "Login failed: %v\n", err)
		return fmt.Errorf("login: %w", err)
	}

	banner := strings.Repeat("=", 60)
	fmt.Fprintln(s.out, "\n"+banner)
	fmt.Fprintln(s.out, bannerStyle.Render("Kite MCP Interactive Mode"))
	fmt.Fprintln(s.out, banner)
	s.printMenu()

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(s.out, "\nInterrupted. Goodbye!")
			return nil
		}

		line, ok := s.readLine("\nEnter command number or name: ")
		if !ok {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		}
		choice := strings.ToLower(strings.TrimSpace(line))

		switch choice {
		case "0", "exit", "quit":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil

		case "1", "holdings":
			s.show(ctx, "HOLDINGS", format.LayoutHoldings, s.sess.Holdings)

		case "2", "positions":
			s.show(ctx, "POSITIONS", format.LayoutPositions, s.sess.Positions)

		case "3", "orders":
			s.show(ctx, "ORDERS", format.LayoutOrders, s.sess.Orders)

		case "4", "trades":
			s.show(ctx, "TRADES", format.LayoutTrades, s.sess.Trades)

		case "6", "tools":
			s.listTools(ctx)

		case "7", "custom":
			s.customTool(ctx)

		default:
			fmt.Fprintln(s.out, errorStyle.Render("Invalid command. Try again."))
		}
	}
}

// printMenu lists the available commands.
func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "\nAvailable commands:")
	for _, entry := range []string{
		"  1. holdings     - Get your holdings",
		"  2. positions    - Get your positions",
		"  3. orders       - Get all orders",
		"  4. trades       - Get all trades",
		"  6. tools        - List all available tools",
		"  7. custom       - Call a custom tool",
		"  0. exit         - Exit the program",
	} {
		fmt.Fprintln(s.out, dimStyle.Render(entry))
	}
}

// show fetches via fn and renders the result under a heading. Failures are
// printed; the menu continues.
func (s *Shell) show(ctx context.Context, title string, layout format.Layout, fn func(context.Context) (*mcp.CallToolResult, error)) {
	res, err := fn(ctx)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return
	}
	fmt.Fprintln(s.out, "\n"+headingStyle.Render(title))
	fmt.Fprintln(s.out, format.Render(res, layout))
}

func (s *Shell) listTools(ctx context.Context) {
	names, err := s.sess.ListTools(ctx)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("Error listing tools: %v", err)))
		return
	}
	fmt.Fprintln(s.out, "\n"+headingStyle.Render("Available Tools:"))
	for _, name := range names {
		fmt.Fprintf(s.out, "  - %s\n", name)
	}
}

// customTool prompts for a tool name and a JSON parameter object and invokes
// the tool. Malformed JSON is reported and the menu continues.
func (s *Shell) customTool(ctx context.Context) {
	name, ok := s.readLine("Enter tool name: ")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)

	paramsStr, ok := s.readLine("Enter params as JSON (or leave empty): ")
	if !ok {
		return
	}
	paramsStr = strings.TrimSpace(paramsStr)

	params := map[string]any{}
	if paramsStr != "" {
		if err := json.Unmarshal([]byte(paramsStr), &params); err != nil {
			fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("Invalid JSON params: %v", err)))
			return
		}
	}

	res, err := s.sess.Invoke(ctx, name, params)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return
	}
	fmt.Fprintln(s.out, "\n"+headingStyle.Render("Result:"))
	fmt.Fprintln(s.out, format.Render(res, format.LayoutNone))
}

// readLine prompts and reads one line; ok is false at end of input.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
