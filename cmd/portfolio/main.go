package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/portfolio-site/pkg/config"
	"github.com/portfolio-site/pkg/snapshot"
	"github.com/portfolio-site/pkg/view"
)

func main() {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Portfolio site with a live token-check dashboard",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.PersistentFlags().String("url", "", "token snapshot URL (overrides TOKEN_SNAPSHOT_URL)")
	root.PersistentFlags().Int("interval", 0, "poll interval in seconds (overrides TOKEN_POLL_INTERVAL)")
	root.Flags().Int("port", 0, "HTTP port (overrides PORT)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the site server and the background token poller",
		RunE:  runServe,
	}
	serveCmd.Flags().Int("port", 0, "HTTP port (overrides PORT)")
	root.AddCommand(serveCmd)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch token checks in the terminal",
		RunE:  runWatch,
	}
	root.AddCommand(watchCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch the current token checks once and print them",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Bool("json", false, "print the raw records as JSON")
	root.AddCommand(snapshotCmd)

	messagesCmd := &cobra.Command{
		Use:   "messages",
		Short: "List recent contact form messages",
		RunE:  runMessages,
	}
	messagesCmd.Flags().Int("limit", 20, "number of messages to show")
	root.AddCommand(messagesCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if u, _ := cmd.Flags().GetString("url"); u != "" {
		cfg.SnapshotURL = u
	}
	if n, _ := cmd.Flags().GetInt("interval"); n != 0 {
		cfg.PollInterval = time.Duration(n) * time.Second
	}
	if p, err := cmd.Flags().GetInt("port"); err == nil && p != 0 {
		cfg.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func setupLogger(w io.Writer, level zerolog.Level, noColor bool) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: noColor}).
		With().Timestamp().Logger().Level(level)
}

func newFetcher(cfg *config.Config) *snapshot.HTTPFetcher {
	return snapshot.NewHTTPFetcher(cfg.SnapshotURL, snapshot.WithTimeout(cfg.FetchTimeout))
}

func newProjector(cfg *config.Config) view.Projector {
	return view.Projector{Links: cfg.Links(), Location: cfg.DisplayLocation}
}
