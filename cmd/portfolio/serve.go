package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/portfolio-site/pkg/config"
	"github.com/portfolio-site/pkg/contact"
	"github.com/portfolio-site/pkg/db"
	"github.com/portfolio-site/pkg/poller"
	"github.com/portfolio-site/pkg/view"
	"github.com/portfolio-site/pkg/web"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(os.Stderr, cfg.LogLevel, false)
	log.Info().Msg("🚀 portfolio site starting...")

	store, err := db.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer store.Close()

	feed := web.NewTokenFeed(view.Options{DropStale: cfg.DropStale}, newProjector(cfg))
	pl := poller.New(newFetcher(cfg), feed.Apply, poller.WithInterval(cfg.PollInterval))
	svc := contact.NewService(store, cfg.ContactDelay)
	srv := web.New(feed, pl, svc, web.Options{
		Port:              cfg.Port,
		ContactRatePerMin: cfg.ContactRatePerMin,
		RefreshCooldown:   cfg.RefreshCooldown,
		TrustForwarded:    cfg.TrustForwarded,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printSummary(ctx, cfg, store)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return pl.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })

	err = g.Wait()
	log.Info().Msg("goodbye 👋")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printSummary(ctx context.Context, cfg *config.Config, store *db.Store) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgHiBlack)

	fmt.Println("\n" + strings.Repeat("═", 60))
	title.Println("  🚀 PORTFOLIO SITE - RUNNING")
	fmt.Println(strings.Repeat("═", 60))
	fmt.Printf("  %s http://localhost:%d\n", label.Sprint("Site:     "), cfg.Port)
	fmt.Printf("  %s %s\n", label.Sprint("Snapshot: "), cfg.SnapshotURL)
	fmt.Printf("  %s every %s\n", label.Sprint("Polling:  "), cfg.PollInterval)
	stale := color.GreenString("drop stale responses")
	if !cfg.DropStale {
		stale = color.YellowString("last response wins")
	}
	fmt.Printf("  %s %s\n", label.Sprint("Ordering: "), stale)
	if stats, err := store.GetStats(ctx); err == nil {
		fmt.Printf("  %s %d contact messages\n", label.Sprint("DB:       "), stats["contact_messages"])
	}
	fmt.Println(strings.Repeat("═", 60) + "\n")
}
