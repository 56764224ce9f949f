// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordfall/internal/model"
	"github.com/verte-zerg/wordfall/internal/stats"
	"github.com/verte-zerg/wordfall/internal/store"
)

const (
	tabOverview = iota
	tabLetters
	tabRuns
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store  *store.Store
	filter model.StatsFilter

	report stats.Report
	errMsg string

	tabs        []string
	activeTab   int
	overview    viewport.Model
	letterTable table.Model
	runTable    table.Model

	width  int
	height int
}

// NewModel constructs a stats UI model.
func NewModel(st *store.Store, filter model.StatsFilter) *Model {
	m := &Model{
		store:  st,
		filter: filter,
		tabs:   []string{"Overview", "Letters", "Runs"},
	}
	m.overview = viewport.New(0, 0)
	m.letterTable = newStatsTable(letterColumns())
	m.runTable = newStatsTable(runColumns())
	m.refreshReport()
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
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			m.gotoEdge(true)
			return m, nil
		case "G", "end":
			m.gotoEdge(false)
			return m, nil
		default:
			return m.forwardKey(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) forwardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabLetters:
		m.letterTable, cmd = m.letterTable.Update(msg)
	case tabRuns:
		m.runTable, cmd = m.runTable.Update(msg)
	default:
		m.overview, cmd = m.overview.Update(msg)
	}
	return m, cmd
}

func (m *Model) gotoEdge(top bool) {
	switch m.activeTab {
	case tabLetters:
		if top {
			m.letterTable.GotoTop()
		} else {
			m.letterTable.GotoBottom()
		}
	case tabRuns:
		if top {
			m.runTable.GotoTop()
		} else {
			m.runTable.GotoBottom()
		}
	default:
		if top {
			m.overview.GotoTop()
		} else {
			m.overview.GotoBottom()
		}
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	m.letterTable.Blur()
	m.runTable.Blur()
	switch m.activeTab {
	case tabLetters:
		m.letterTable.Focus()
	case tabRuns:
		m.runTable.Focus()
	}
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	m.letterTable.SetWidth(m.width)
	m.letterTable.SetHeight(maxInt(1, bodyHeight-1))
	m.runTable.SetWidth(m.width)
	m.runTable.SetHeight(maxInt(1, bodyHeight-1))
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	tabs := padLines(lipgloss.JoinHorizontal(lipgloss.Top, parts...), m.width)
	return tabs + "\n" + padLines(m.renderFilterSummary(), m.width)
}

func (m *Model) renderFilterSummary() string {
	tier := m.filter.Tier
	if tier == "" {
		tier = "any"
	}
	since := "any"
	if m.filter.Since != nil {
		since = m.filter.Since.Format("2006-01-02")
	}
	last := "all"
	if m.filter.Last > 0 {
		last = fmt.Sprintf("%d", m.filter.Last)
	}
	summary := fmt.Sprintf("Filters: tier=%s  since=%s  last=%s", tier, since, last)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) renderBody() string {
	switch m.activeTab {
	case tabLetters:
		if len(m.report.Letters) == 0 {
			return "No letter stats found."
		}
		return tableMutedStyle.Render(m.letterTable.View())
	case tabRuns:
		if len(m.report.Runs) == 0 {
			return "No runs found."
		}
		return tableMutedStyle.Render(m.runTable.View())
	default:
		return m.overview.View()
	}
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.filter)
	if err != nil {
		m.errMsg = err.Error()
		m.overview.SetContent("Failed to load stats.")
		return
	}
	m.errMsg = ""
	m.report = report
	m.letterTable.SetRows(letterRows(report.Letters))
	m.runTable.SetRows(runRows(report.Runs))
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if m.errMsg != "" {
		m.overview.SetContent("Failed to load stats.")
		return
	}
	m.overview.SetContent(renderOverview(m.report, m.width))
}

func renderOverview(report stats.Report, width int) string {
	if report.Totals.GamesPlayed == 0 {
		return "No runs found."
	}
	t := report.Totals
	cards := []string{
		metricCard("Games", fmt.Sprintf("%d", t.GamesPlayed)),
		metricCard("Best Score", fmt.Sprintf("%d", t.HighestScore)),
		metricCard("Best Streak", fmt.Sprintf("%d", t.HighestStreak)),
		metricCard("Best Combo", fmt.Sprintf("%d", t.HighestCombo)),
		metricCard("Words", fmt.Sprintf("%d", t.WordsDestroyed)),
		metricCard("Misses", fmt.Sprintf("%d", t.Misses)),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5])
		summary = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	trend := renderScoreTrend(report.Runs, width)
	if trend == "" {
		return strings.TrimRight(summary, "\n")
	}
	return strings.TrimRight(summary+"\n\n"+trend, "\n")
}

func renderScoreTrend(runs []model.RunAggregate, width int) string {
	if len(runs) < 2 {
		return ""
	}
	scores := make([]float64, len(runs))
	for i, run := range runs {
		scores[i] = float64(run.Score)
	}
	if width > 10 && len(scores) > width-2 {
		scores = scores[len(scores)-(width-2):]
	}
	return headerStyle.Render("Score trend") + "\n" + stats.Sparkline(stats.MovingAverage(scores, 3))
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func letterColumns() []table.Column {
	return []table.Column{
		{Title: "Letter", Width: 6},
		{Title: "Words", Width: 8},
		{Title: "Letters", Width: 8},
	}
}

func letterRows(letters []model.LetterCount) []table.Row {
	rows := make([]table.Row, 0, len(letters))
	for _, lc := range letters {
		rows = append(rows, table.Row{
			lc.Letter,
			fmt.Sprintf("%d", lc.Words),
			fmt.Sprintf("%d", lc.Letters),
		})
	}
	return rows
}

func runColumns() []table.Column {
	return []table.Column{
		{Title: "Ended", Width: 16},
		{Title: "Tier", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Streak", Width: 6},
		{Title: "Combo", Width: 5},
		{Title: "Duration", Width: 8},
	}
}

func runRows(runs []model.RunAggregate) []table.Row {
	rows := make([]table.Row, 0, len(runs))
	// Most recent first for browsing.
	for i := len(runs) - 1; i >= 0; i-- {
		run := runs[i]
		rows = append(rows, table.Row{
			run.EndedAt.Format("2006-01-02 15:04"),
			run.Tier,
			fmt.Sprintf("%d", run.Score),
			fmt.Sprintf("%d", run.MaxStreak),
			fmt.Sprintf("%d", run.MaxCombo),
			(time.Duration(run.DurationMs) * time.Millisecond).Round(time.Second).String(),
		})
	}
	return rows
}

func newStatsTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(1),
	)
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
	t.SetStyles(styles)
	return t
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
