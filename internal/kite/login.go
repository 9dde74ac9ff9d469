package kite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pankajmaurya/kite-mcp-exploration/internal/envelope"
)

const warningBannerWidth = 60

// Login runs the browser-based authentication handshake: invoke the login
// tool, surface any server warning, open the redirect URL, block until the
// user confirms, and after a short propagation delay mark the session
// authenticated. Any failed step aborts the flow; there is no retry.
func (c *Client) Login(ctx context.Context) error {
	fmt.Fprintln(c.out, "\nInitiating login...")

	res, err := c.Invoke(ctx, "login", nil)
	if err != nil {
		return err
	}

	text, ok := envelope.Text(res)
	if !ok {
		return errors.New("no response from login tool")
	}

	if strings.Contains(text, "WARNING") {
		c.printWarnings(text)
	}

	loginURL, ok := envelope.LastURL(text)
	if !ok {
		return errors.New("could not extract login URL")
	}

	fmt.Fprintf(c.out, "\nLogin URL: %s\n\n", loginURL)

	if c.autoOpenBrowser {
		if err := openBrowserFn(loginURL); err != nil {
			c.log.Warn("could not open browser", "error", err)
			fmt.Fprintf(c.out, "Could not open browser automatically: %v\n", err)
			fmt.Fprintln(c.out, "Please copy and paste the URL above manually")
		} else {
			fmt.Fprintln(c.out, "Browser opened automatically")
		}
	}

	fmt.Fprint(c.out, "\nPress Enter after completing login in your browser...")
	if err := c.waitForConfirmation(); err != nil {
		return err
	}

	// Give the server time to propagate the session before trusting it.
	select {
	case <-time.After(c.confirmDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	c.loggedIn = true
	c.log.Info("login confirmed")
	fmt.Fprintln(c.out, "Login confirmed")
	return nil
}

// printWarnings shows only the warning-relevant lines of the login response,
// framed by separator banners.
func (c *Client) printWarnings(text string) {
	banner := strings.Repeat("=", warningBannerWidth)
	fmt.Fprintln(c.out, "\n"+banner)
	fmt.Fprintln(c.out, "IMPORTANT WARNING")
	fmt.Fprintln(c.out, banner)
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "warning") || strings.Contains(lower, "risk") {
			fmt.Fprintln(c.out, line)
		}
	}
	fmt.Fprintln(c.out, banner+"\n")
}

// waitForConfirmation blocks until the user presses Enter. Input ending
// before a confirmation counts as an aborted login.
func (c *Client) waitForConfirmation() error {
	line, err := c.confirmIn.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading confirmation: %w", err)
	}
	if err == io.EOF && line == "" {
		return errors.New("login confirmation aborted")
	}
	return nil
}
