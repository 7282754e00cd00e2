package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/portfolio-site/pkg/tokens"
	"github.com/portfolio-site/pkg/view"
)

func runSnapshot(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(os.Stderr, cfg.LogLevel, false)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()

	recs, err := newFetcher(cfg).Fetch(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", view.LoadErrorMessage, err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	renderTokenTable(os.Stdout, newProjector(cfg), recs, time.Now())
	return nil
}

func renderTokenTable(w io.Writer, proj view.Projector, recs []tokens.Record, now time.Time) {
	if len(recs) == 0 {
		fmt.Fprintln(w, view.EmptyMessage)
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"", "Name", "Symbol", "Token", "Liquidity", "Tax", "Age", "Failures"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, rec := range recs {
		row := proj.Row(rec, now, false)
		mark := color.RedString("✕")
		if rec.Passed {
			mark = color.GreenString("✓")
		}
		table.Append([]string{
			mark,
			rec.Name,
			"$" + rec.Symbol,
			row.ShortToken,
			row.Liquidity,
			row.Taxes,
			row.Age,
			strconv.Itoa(len(row.Failures)),
		})
	}
	table.Render()
}
