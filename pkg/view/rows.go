package view

import (
	"time"

	"github.com/portfolio-site/pkg/format"
	"github.com/portfolio-site/pkg/tokens"
)

// Metric is one labelled cell of an expanded row.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Row is a record projected into display strings.
type Row struct {
	Key         string        `json:"key"`
	Record      tokens.Record `json:"record"`
	Expanded    bool          `json:"expanded"`
	ShortToken  string        `json:"shortToken"`
	FullToken   string        `json:"fullToken"`
	Liquidity   string        `json:"liquidity"`
	Taxes       string        `json:"taxes"`
	Age         string        `json:"age"`
	Details     []Metric      `json:"details"`
	Failures    []string      `json:"failures"`
	ExplorerURL string        `json:"explorerUrl"`
	ChartURL    string        `json:"chartUrl"`
}

// Projector turns records into rows for a given instant.
type Projector struct {
	Links    format.Links
	Location *time.Location
}

func (p Projector) Row(rec tokens.Record, now time.Time, expanded bool) Row {
	failures := rec.Failures
	if failures == nil {
		failures = []string{}
	}
	return Row{
		Key:        rec.Key(),
		Record:     rec,
		Expanded:   expanded,
		ShortToken: format.TruncateAddress(rec.Token),
		FullToken:  format.DisplayAddress(rec.Token),
		Liquidity:  format.ETH(rec.LiquidityETH, 2),
		Taxes:      format.Taxes(rec.BuyTax, rec.SellTax),
		Age:        format.RelativeTime(rec.Timestamp, now, p.Location),
		Details: []Metric{
			{Label: "Liquidity", Value: format.ETH(rec.LiquidityETH, 4)},
			{Label: "Buy Tax", Value: format.Percent(rec.BuyTax, 2)},
			{Label: "Sell Tax", Value: format.Percent(rec.SellTax, 2)},
			{Label: "Owner Balance", Value: format.Percent(rec.OwnerPercent, 2)},
			{Label: "LP Burned", Value: format.Percent(rec.LPBurnedPercent, 1)},
			{Label: "Check Time", Value: format.Millis(rec.CheckTimeMs)},
		},
		Failures:    failures,
		ExplorerURL: p.Links.Explorer(rec.Token),
		ChartURL:    p.Links.Chart(rec.Pair),
	}
}

// Rows projects the visible records. It is empty unless the phase is List.
func (p Projector) Rows(s *State, now time.Time) []Row {
	visible := s.Visible()
	rows := make([]Row, 0, len(visible))
	for _, rec := range visible {
		rows = append(rows, p.Row(rec, now, s.IsExpanded(rec.Key())))
	}
	return rows
}

// Panel is the whole dashboard as one serializable value.
type Panel struct {
	Phase string `json:"phase"`
	Error string `json:"error,omitempty"`
	Rows  []Row  `json:"rows"`
}

func (p Projector) Panel(s *State, now time.Time) Panel {
	return Panel{
		Phase: s.Phase().String(),
		Error: s.ErrorMessage(),
		Rows:  p.Rows(s, now),
	}
}
