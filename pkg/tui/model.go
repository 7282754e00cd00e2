// Package tui is the terminal rendition of the token dashboard.
//
// Fetch outcomes arrive as OutcomeMsg through Program.Send; the model owns
// its view.State on the bubbletea event loop.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/portfolio-site/pkg/view"
)

// --- Messages ---

// OutcomeMsg carries one poller result into the program.
type OutcomeMsg view.Outcome

type tickMsg struct{}

// --- Key bindings ---

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Refresh, k.Help, k.Quit},
	}
}

// --- Model ---

type Model struct {
	state   *view.State
	proj    view.Projector
	refresh func()
	stop    func()
	now     func() time.Time

	cursor   int
	width    int
	height   int
	help     help.Model
	showHelp bool

	lastUpdate time.Time
}

// New builds a model. refresh issues an out-of-band fetch and stop releases
// the poller on quit; either may be nil.
func New(opts view.Options, proj view.Projector, refresh, stop func()) Model {
	return Model{
		state:   view.New(opts),
		proj:    proj,
		refresh: refresh,
		stop:    stop,
		now:     time.Now,
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickEvery()
}

func tickEvery() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			if m.stop == nil {
				return m, tea.Quit
			}
			// Stop waits for a running delivery, which may be blocked in
			// Program.Send, so it must not run on the event loop.
			stop := m.stop
			return m, tea.Batch(func() tea.Msg {
				stop()
				return nil
			}, tea.Quit)

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.state.Visible())-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Toggle):
			visible := m.state.Visible()
			if m.cursor < len(visible) {
				m.state.Toggle(visible[m.cursor].Key())
			}

		case key.Matches(msg, keys.Refresh):
			if m.refresh != nil {
				refresh := m.refresh
				return m, func() tea.Msg {
					refresh()
					return nil
				}
			}

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case OutcomeMsg:
		if m.state.Apply(view.Outcome(msg)) {
			m.lastUpdate = m.now()
		}
		// clamp after the row count changes
		if n := len(m.state.Visible()); m.cursor >= n {
			m.cursor = max(n-1, 0)
		}

	case tickMsg:
		return m, tickEvery()
	}

	return m, nil
}

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Background(lipgloss.Color("#1E1E2E")).
			Padding(0, 1)

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1")).
			Bold(true)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#313244"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#89B4FA")).
			Underline(true)
)

// --- View rendering ---

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Live Token Checks"))
	b.WriteString("  ")
	b.WriteString(liveStyle.Render("● LIVE"))
	if !m.lastUpdate.IsZero() {
		b.WriteString(dimStyle.Render("  updated " + m.lastUpdate.Format("15:04:05")))
	}
	b.WriteString("\n\n")

	switch m.state.Phase() {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render(view.LoadingMessage))
		b.WriteRune('\n')
	case view.PhaseError:
		b.WriteString(errorStyle.Render(m.state.ErrorMessage()))
		b.WriteRune('\n')
	case view.PhaseEmpty:
		b.WriteString(dimStyle.Render(view.EmptyMessage))
		b.WriteRune('\n')
	case view.PhaseList:
		for i, row := range m.proj.Rows(m.state, m.now()) {
			b.WriteString(m.renderRow(i, row))
		}
	}

	b.WriteRune('\n')
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(keys.ShortHelp()))
	}
	return b.String()
}

func (m Model) renderRow(i int, row view.Row) string {
	rec := row.Record

	mark := failStyle.Render("✕")
	if rec.Passed {
		mark = passStyle.Render("✓")
	}
	arrow := "▾"
	if row.Expanded {
		arrow = "▴"
	}
	pointer := "  "
	if i == m.cursor {
		pointer = "> "
	}

	line := fmt.Sprintf("%s%s %-18s %-8s %-14s  Liq %-12s  Tax %-12s %9s %s",
		pointer, mark, rec.Name, "$"+rec.Symbol, row.ShortToken, row.Liquidity, row.Taxes, row.Age, arrow)
	if i == m.cursor {
		line = selectedStyle.Render(line)
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteRune('\n')
	if !row.Expanded {
		return b.String()
	}

	b.WriteString("    " + dimStyle.Render(row.FullToken) + "\n")
	for _, d := range row.Details {
		b.WriteString(fmt.Sprintf("    %-14s %s\n", headerStyle.Render(d.Label), d.Value))
	}
	if len(row.Failures) > 0 {
		b.WriteString("    " + failStyle.Render("Failed Checks:") + "\n")
		for _, f := range row.Failures {
			b.WriteString("      • " + f + "\n")
		}
	}
	b.WriteString("    " + linkStyle.Render(row.ExplorerURL) + "\n")
	b.WriteString("    " + linkStyle.Render(row.ChartURL) + "\n")
	return b.String()
}
