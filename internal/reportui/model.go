// Package reportui provides the Bubble Tea frequency report viewer.
package reportui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordswap/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea report viewer.
type Model struct {
	title string
	rows  []model.FrequencyRow

	byFrequency bool
	matchedOnly bool

	table  table.Model
	width  int
	height int
}

// NewModel constructs a viewer for the frequency rows of one run.
func NewModel(title string, rows []model.FrequencyRow) *Model {
	m := &Model{
		title: title,
		rows:  rows,
	}
	m.table = table.New(
		table.WithColumns(columns(0)),
		table.WithFocused(true),
		table.WithHeight(1),
	)
	m.table.SetStyles(tableStyles())
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "s":
			m.byFrequency = !m.byFrequency
			m.refreshRows()
			return m, nil
		case "m":
			m.matchedOnly = !m.matchedOnly
			m.refreshRows()
			return m, nil
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := titleStyle.Render(m.title)
	status := headerStyle.Render(m.statusLine())
	body := tableMutedStyle.Render(m.table.View())
	help := headerStyle.Render("Scroll: up/down/pgup/pgdn  Sort: s  Matched only: m  Quit: q")
	return strings.Join([]string{header, status, body, help}, "\n")
}

func (m *Model) statusLine() string {
	order := "dictionary order"
	if m.byFrequency {
		order = "by frequency"
	}
	shown := m.table.Rows()
	total := 0
	for _, row := range m.rows {
		total += row.Frequency
	}
	filter := ""
	if m.matchedOnly {
		filter = ", matched only"
	}
	return fmt.Sprintf("%d of %d entries (%s%s), %d replacements", len(shown), len(m.rows), order, filter, total)
}

func (m *Model) updateLayout() {
	headerHeight := lipgloss.Height(titleStyle.Render("X")) + 1
	footerHeight := 1
	m.table.SetColumns(columns(m.width))
	m.table.SetWidth(m.width)
	m.table.SetHeight(maxInt(1, m.height-headerHeight-footerHeight-1))
}

func (m *Model) refreshRows() {
	m.table.SetRows(buildRows(m.rows, m.byFrequency, m.matchedOnly))
	m.table.GotoTop()
}

func columns(width int) []table.Column {
	countWidth := 9
	wordWidth := 20
	if width > 0 {
		wordWidth = maxInt(8, (width-countWidth-4)/2)
	}
	return []table.Column{
		{Title: "English word", Width: wordWidth},
		{Title: "French word", Width: wordWidth},
		{Title: "Frequency", Width: countWidth},
	}
}

func buildRows(rows []model.FrequencyRow, byFrequency, matchedOnly bool) []table.Row {
	selected := make([]model.FrequencyRow, 0, len(rows))
	for _, row := range rows {
		if matchedOnly && row.Frequency == 0 {
			continue
		}
		selected = append(selected, row)
	}
	if byFrequency {
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Frequency > selected[j].Frequency
		})
	}
	out := make([]table.Row, 0, len(selected))
	for _, row := range selected {
		out = append(out, table.Row{row.English, row.French, strconv.Itoa(row.Frequency)})
	}
	return out
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
