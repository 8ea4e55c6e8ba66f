package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dconn.dev/showreel/internal/models"
	"dconn.dev/showreel/internal/portfolio"
)

type filterKey struct {
	key    string
	filter string
	label  string
}

// filterKeys binds "a" to all and each known category to its first letter
var filterKeys = buildFilterKeys()

func buildFilterKeys() []filterKey {
	keys := []filterKey{{key: "a", filter: models.FilterAll, label: "All"}}
	for _, c := range models.Categories() {
		v := c.String()
		keys = append(keys, filterKey{key: v[:1], filter: v, label: c.Label()})
	}
	return keys
}

type styles struct {
	tab       lipgloss.Style
	activeTab lipgloss.Style
	card      lipgloss.Style
	selected  lipgloss.Style
	label     lipgloss.Style
	tag       lipgloss.Style
	modal     lipgloss.Style
	help      lipgloss.Style
}

func defaultStyles() styles {
	accent := lipgloss.Color("#7D56F4")
	muted := lipgloss.Color("#626262")
	return styles{
		tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		activeTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent),
		card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		selected:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		label:     lipgloss.NewStyle().Italic(true).Foreground(accent),
		tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		modal:     lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(1, 2),
		help:      lipgloss.NewStyle().Foreground(muted),
	}
}

// Model is the terminal portfolio browser
type Model struct {
	entries []models.PortfolioEntry
	player  portfolio.Player
	state   portfolio.State
	cursor  int
	width   int
	height  int
	styles  styles
}

// New creates a browser over entries
func New(entries []models.PortfolioEntry, player portfolio.Player) Model {
	return Model{
		entries: entries,
		player:  player,
		state:   portfolio.InitialState(),
		styles:  defaultStyles(),
	}
}

// State returns the current view-model
func (m Model) State() portfolio.State {
	return m.state
}

// Visible returns the entries shown under the current filter
func (m Model) Visible() []models.PortfolioEntry {
	var out []models.PortfolioEntry
	for _, e := range m.entries {
		if portfolio.Visible(m.state.Filter, e.Category) {
			out = append(out, e)
		}
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) dispatch(msg portfolio.Msg) Model {
	m.state = portfolio.Reduce(m.state, msg)
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.dispatch(portfolio.CloseRequested{}), nil
	}

	// The overlay captures input while open
	if m.state.Modal.Open() {
		return m, nil
	}

	for _, fk := range filterKeys {
		if key == fk.key {
			m = m.dispatch(portfolio.FilterSelected{Category: fk.filter})
			m.cursor = 0
			return m, nil
		}
	}

	visible := m.Visible()
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(visible) {
			m = m.dispatch(portfolio.ViewRequested{VideoID: visible[m.cursor].VideoID})
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.state.Modal.Open() {
		return m.modalView()
	}

	var b strings.Builder
	tabs := make([]string, 0, len(filterKeys))
	for _, fk := range filterKeys {
		text := fmt.Sprintf("[%s] %s", fk.key, fk.label)
		if fk.filter == m.state.Filter {
			tabs = append(tabs, m.styles.activeTab.Render(text))
		} else {
			tabs = append(tabs, m.styles.tab.Render(text))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	visible := m.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.help.Render("No projects in this category."))
		b.WriteString("\n")
	}
	for i, e := range visible {
		style := m.styles.card
		if i == m.cursor {
			style = m.styles.selected
		}
		b.WriteString(style.Render(m.cardView(e)))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.help.Render("↑/↓ move • enter view • q quit"))
	return b.String()
}

func (m Model) cardView(e models.PortfolioEntry) string {
	tags := make([]string, len(e.Tags))
	for i, t := range e.Tags {
		tags[i] = m.styles.tag.Render("#" + t)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(e.Title),
		m.styles.label.Render(e.Kind().Label()),
		strings.Join(tags, " "),
	)
}

func (m Model) modalView() string {
	title := m.state.Modal.VideoID
	for _, e := range m.entries {
		if e.VideoID == m.state.Modal.VideoID {
			title = e.Title
			break
		}
	}
	box := m.styles.modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		m.player.AutoplayURL(m.state.Modal.VideoID),
		"",
		m.styles.help.Render("esc close"),
	))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// Run starts the browser on the terminal
func Run(entries []models.PortfolioEntry, player portfolio.Player) error {
	_, err := tea.NewProgram(New(entries, player), tea.WithAltScreen()).Run()
	return err
}
