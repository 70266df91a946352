package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shipshoot/internal/highscore"
	"github.com/vovakirdan/shipshoot/internal/storage"
)

// Scoreboard layout constants
const (
	recentLimit = 50 // games shown on the history tab
	dateLayout  = "Jan 02 15:04"
)

// History is the optional game log behind the scoreboard's second tab.
type History interface {
	RecentGames(limit int) ([]storage.GameRecord, error)
	Stats() (*storage.GameStats, error)
}

// scoreboardTab is one page of the scoreboard.
type scoreboardTab int

const (
	tabTopScores scoreboardTab = iota
	tabRecent
)

func (t scoreboardTab) String() string {
	if t == tabRecent {
		return "Recent games"
	}
	return "Top 10"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the `scores -i` screen.
type ScoreboardModel struct {
	entries  []highscore.Entry
	history  History
	recent   []storage.GameRecord
	stats    *storage.GameStats
	loadErr  error
	tab      scoreboardTab
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard over the top-ten table.
// history may be nil, which hides the second page.
func NewScoreboardModel(entries []highscore.Entry, history History, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		entries: entries,
		history: history,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}

	if history != nil {
		m.recent, m.loadErr = history.RecentGames(recentLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = history.Stats()
		}
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m ScoreboardModel) tabCount() int {
	if m.history == nil {
		return 1
	}
	return 2
}

// createTable creates a new table with columns for the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	nameWidth := 14
	if avail := m.width - 40; avail > nameWidth {
		nameWidth = min(avail, 24)
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: 10},
	}
	if m.tab == tabRecent {
		columns[0].Title = "#"
		columns = append(columns, table.Column{Title: "Date", Width: 14})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the current tab's data.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.tab {
	case tabTopScores:
		rows = make([]table.Row, len(m.entries))
		for i, e := range m.entries {
			rows[i] = table.Row{fmt.Sprintf("#%d", i+1), e.Name, strconv.Itoa(e.Score)}
		}
	case tabRecent:
		rows = make([]table.Row, len(m.recent))
		for i, g := range m.recent {
			rows[i] = table.Row{strconv.Itoa(i + 1), g.Name, strconv.Itoa(g.Score), g.CreatedAt.Local().Format(dateLayout)}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchTab(delta int) {
	n := m.tabCount()
	m.tab = scoreboardTab(((int(m.tab)+delta)%n + n) % n)
	m.table = m.createTable()
	m.updateTableRows()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SHIPSHOOT HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	if m.tabCount() > 1 {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if line := m.renderStats(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, m.tabCount())
	for i := range tabs {
		t := scoreboardTab(i)
		if t == m.tab {
			tabs[i] = activeTabStyle.Render(t.String())
		} else {
			tabs[i] = tabStyle.Render(t.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.tab == tabRecent && m.loadErr != nil {
		return emptyStyle.Render("Could not read game history:\n" + m.loadErr.Error())
	}
	if len(m.table.Rows()) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderStats() string {
	if m.tab != tabRecent || m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return statsStyle.Render(fmt.Sprintf("%d games  best %d  avg %.0f  last played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Local().Format(dateLayout)))
}

// IsQuitting returns true once the user closed the scoreboard.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text on the left to center it in width cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(strings.SplitN(text, "\n", 2)[0])
	if w >= width {
		return text
	}
	pad := strings.Repeat(" ", (width-w)/2)
	return pad + strings.ReplaceAll(text, "\n", "\n"+pad)
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(entries []highscore.Entry, history History, width, height int) error {
	model := NewScoreboardModel(entries, history, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
