package kite

import (
	"os/exec"
	"runtime"
	"strings"
)

// openBrowserFn launches the login URL; overridden in tests.
var openBrowserFn = openBrowser

// openBrowser opens the target URL in the platform's default browser.
func openBrowser(target string) error {
	if strings.TrimSpace(target) == "" {
		return nil
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	return cmd.Start()
}
