// Package main provides the CLI entry point for the pizzeria terminal
// client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/LazyIfox/Pizza3/internal/basket"
	"github.com/LazyIfox/Pizza3/internal/config"
	"github.com/LazyIfox/Pizza3/internal/gateway"
	"github.com/LazyIfox/Pizza3/internal/i18n"
	"github.com/LazyIfox/Pizza3/internal/logger"
	"github.com/LazyIfox/Pizza3/internal/menu"
	"github.com/LazyIfox/Pizza3/internal/session"
	"github.com/LazyIfox/Pizza3/internal/shell"
)

// Version information (populated at build time)
var (
	version   = "dev"
	gitCommit = "unknown"
)

var (
	configPath  string
	baseURL     string
	locale      string
	verbose     bool
	showVersion bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "Path to the YAML configuration file")
	flag.StringVar(&configPath, "c", "", "Path to the YAML configuration file (shorthand)")
	flag.StringVar(&baseURL, "base-url", "", "Override the backend base URL")
	flag.StringVar(&locale, "locale", "", "Override the UI locale (ru, en)")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("pizzeria %s (%s)\n", version, gitCommit)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pizzeria: %v\n", err)
		os.Exit(1)
	}
}

// run wires the client and starts the shell. Failures here are the only
// fatal ones; everything past startup degrades to a view-level message.
func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.Backend.BaseURL = baseURL
	}
	if locale != "" {
		cfg.Locale = locale
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = cfg.Log.Output
	log := logger.New(logCfg)
	defer log.Sync() //nolint:errcheck

	tokens, err := session.NewTokenStore(cfg.Session.File)
	if err != nil {
		return err
	}

	client, err := gateway.NewClient(cfg.Backend, log)
	if err != nil {
		return err
	}
	gw := gateway.New(client, tokens, log)

	catalog, err := menu.Catalog()
	if err != nil {
		return err
	}

	sess := session.NewStore()
	flow := basket.NewFlow(gw, sess, log)
	cat := i18n.New(cfg.Locale)

	log.Info("client started",
		zap.String("backend", cfg.Backend.BaseURL),
		zap.String("locale", cat.Tag().String()))

	sh := shell.New(gw, flow, sess, cat, menu.New(catalog), log, os.Stdin, os.Stdout)
	return sh.Run(context.Background())
}
