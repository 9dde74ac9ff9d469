package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/pankajmaurya/kite-mcp-exploration/internal/format"
)

// Example runs a scripted, non-interactive demonstration: login, then the
// common account-data tools in sequence. Selected by the --example argument.
func Example(ctx context.Context, sess Session, out io.Writer) error {
	if err := sess.Login(ctx); err != nil {
		fmt.Fprintf(out, "Login failed: %v\n", err)
		return fmt.Errorf("login: %w", err)
	}

	steps := []struct {
		title  string
		layout format.Layout
		fn     func(context.Context) (res any, err error)
	}{
		{"HOLDINGS", format.LayoutHoldings, wrap(sess.Holdings)},
		{"POSITIONS", format.LayoutPositions, wrap(sess.Positions)},
		{"ORDERS", format.LayoutOrders, wrap(sess.Orders)},
		{"Profile:", format.LayoutNone, wrap(sess.Profile)},
	}

	for _, step := range steps {
		res, err := step.fn(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "\n"+headingStyle.Render(step.title))
		fmt.Fprintln(out, format.Render(res, step.layout))
	}
	return nil
}

func wrap[T any](fn func(context.Context) (T, error)) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return fn(ctx)
	}
}
