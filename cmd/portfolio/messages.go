package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/portfolio-site/pkg/contact"
	"github.com/portfolio-site/pkg/db"
)

func runMessages(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(os.Stderr, cfg.LogLevel, false)

	store, err := db.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	msgs, err := contact.NewService(store, 0).Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	renderMessageTable(os.Stdout, msgs)
	return nil
}

func renderMessageTable(w io.Writer, msgs []db.ContactMessage) {
	if len(msgs) == 0 {
		fmt.Fprintln(w, "No messages yet")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Received", "Name", "Email", "Message"})
	table.SetAutoWrapText(true)
	for _, m := range msgs {
		table.Append([]string{m.CreatedAt.Local().Format("2006-01-02 15:04"), m.Name, m.Email, m.Message})
	}
	table.Render()
}
