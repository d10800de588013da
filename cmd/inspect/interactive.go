package main

import (
	"fmt"
	"strings"

	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/memtable/cell"
	"github.com/wippyai/memtable/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	grid   *table.Grid[cell.Value]
	source string
	view   btable.Model
	width  int
	height int
}

func newInspectModel(source string, g *table.Grid[cell.Value]) *inspectModel {
	cols := make([]btable.Column, g.Cols())
	for c := range cols {
		cols[c] = btable.Column{
			Title: fmt.Sprintf("col %d", c),
			Width: columnWidth(g, c),
		}
	}

	rows := make([]btable.Row, g.Rows())
	for r := range rows {
		row := make(btable.Row, 0, g.Cols())
		it := g.Row(r)
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			row = append(row, v.String())
		}
		rows[r] = row
	}

	t := btable.New(
		btable.WithColumns(cols),
		btable.WithRows(rows),
		btable.WithFocused(true),
		btable.WithHeight(15),
	)

	s := btable.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderBottom(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	t.SetStyles(s)

	return &inspectModel{grid: g, source: source, view: t}
}

// columnWidth sizes a column to its widest cell, capped so wide text
// columns stay readable.
func columnWidth(g *table.Grid[cell.Value], c int) int {
	w := 6
	it := g.Column(c)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if n := len(v.String()); n > w {
			w = n
		}
	}
	if w > 32 {
		w = 32
	}
	return w
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 7
		if h < 3 {
			h = 3
		}
		m.view.SetHeight(h)
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Table Inspector"))
	b.WriteString(" ")
	b.WriteString(m.source)
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(
		fmt.Sprintf("%d rows x %d cols", m.grid.Rows(), m.grid.Cols())))
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(m.view.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll • q quit"))

	return b.String()
}

func runInteractive(source string, g *table.Grid[cell.Value]) error {
	p := tea.NewProgram(newInspectModel(source, g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
