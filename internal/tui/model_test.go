package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dconn.dev/showreel/internal/models"
	"dconn.dev/showreel/internal/portfolio"
)

func keyRune(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func testModel() Model {
	return New([]models.PortfolioEntry{
		{Title: "First", Category: "motion", Tags: []string{"A"}, VideoID: "111"},
		{Title: "Second", Category: "ui", Tags: []string{"B"}, VideoID: "222"},
	}, portfolio.NewPlayer(""))
}

func TestFilterKeys(t *testing.T) {
	m := send(testModel(), keyRune("m"))
	if m.State().Filter != "motion" {
		t.Fatalf("expected motion filter, got %s", m.State().Filter)
	}
	if got := len(m.Visible()); got != 1 {
		t.Fatalf("expected 1 visible entry, got %d", got)
	}

	m = send(m, keyRune("a"))
	if got := len(m.Visible()); got != 2 {
		t.Fatalf("expected 2 visible entries, got %d", got)
	}
}

func TestEnterOpensSelectedVideo(t *testing.T) {
	m := send(testModel(), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().Modal.VideoID != "222" {
		t.Fatalf("expected modal for 222, got %q", m.State().Modal.VideoID)
	}
	if !strings.Contains(m.View(), "/video/222?autoplay=1") {
		t.Error("modal view should show the autoplay URL")
	}

	// filter keys are captured by the open overlay
	m = send(m, keyRune("m"))
	if m.State().Filter != "all" {
		t.Errorf("filter should not change while modal is open")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State() != portfolio.InitialState() {
		t.Fatalf("expected initial state after close, got %+v", m.State())
	}
}

func TestCursorClamps(t *testing.T) {
	m := send(testModel(), tea.KeyMsg{Type: tea.KeyUp}, keyRune("j"), keyRune("j"), keyRune("j"))
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}
}

func TestEmptyFilterView(t *testing.T) {
	m := send(testModel(), keyRune("s"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().Modal.Open() {
		t.Fatal("enter with no visible cards must not open the modal")
	}
	if !strings.Contains(m.View(), "No projects in this category.") {
		t.Error("view should explain the empty filter")
	}
}

func TestQuit(t *testing.T) {
	_, cmd := testModel().Update(keyRune("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestFilterKeysCoverCategories(t *testing.T) {
	want := map[string]string{"a": "all", "s": "stock", "u": "ui", "m": "motion"}
	if len(filterKeys) != len(want) {
		t.Fatalf("expected %d filter keys, got %d", len(want), len(filterKeys))
	}
	for _, fk := range filterKeys {
		if want[fk.key] != fk.filter {
			t.Errorf("key %q bound to %q, want %q", fk.key, fk.filter, want[fk.key])
		}
	}
}
