package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pankajmaurya/kite-mcp-exploration/internal/config"
	"github.com/pankajmaurya/kite-mcp-exploration/internal/kite"
	"github.com/pankajmaurya/kite-mcp-exploration/internal/shell"
	"github.com/pankajmaurya/kite-mcp-exploration/internal/util"
)

func main() {
	cfgPath := "config/kite.yaml"
	if p := os.Getenv("KITE_CONFIG"); p != "" {
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := util.NewLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := kite.New(kite.Options{
		URL:             cfg.MCP.URL,
		AutoOpenBrowser: cfg.Login.AutoOpenBrowser,
		ConfirmDelay:    cfg.Login.ConfirmDelay(),
		Logger:          logger,
	})

	if err := client.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to %s: %v\n", cfg.MCP.URL, err)
		os.Exit(1)
	}
	defer client.Close()

	if len(os.Args) > 1 && os.Args[1] == "--example" {
		if err := shell.Example(ctx, client, os.Stdout); err != nil {
			client.Close()
			fmt.Fprintf(os.Stderr, "example run failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sh := shell.New(client, os.Stdin, os.Stdout, logger)
	if err := sh.Run(ctx); err != nil {
		client.Close()
		fmt.Fprintf(os.Stderr, "session error: %v\n", err)
		os.Exit(1)
	}
}
