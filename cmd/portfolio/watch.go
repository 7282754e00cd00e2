package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/portfolio-site/pkg/poller"
	"github.com/portfolio-site/pkg/tui"
	"github.com/portfolio-site/pkg/view"
)

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the terminal belongs to the dashboard; logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	setupLogger(logFile, cfg.LogLevel, true)

	var prog *tea.Program
	pl := poller.New(newFetcher(cfg), func(o view.Outcome) {
		prog.Send(tui.OutcomeMsg(o))
	}, poller.WithInterval(cfg.PollInterval))

	m := tui.New(view.Options{DropStale: cfg.DropStale}, newProjector(cfg), pl.Trigger, pl.Stop)
	prog = tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pl.Start(ctx)
	defer pl.Stop()

	if _, err := prog.Run(); err != nil {
		log.Error().Err(err).Msg("terminal dashboard failed")
		return err
	}
	return nil
}
