package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/evolve-adventure/internal/engine"
	"github.com/tatianab/evolve-adventure/internal/models"
)

type fixedDice struct{ v int }

func (d fixedDice) IntN(n int) int { return min(d.v, n-1) }

func submit(t *testing.T, m model, action string) (model, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(action)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model), cmd
}

func TestEnterSendsCommandToEngine(t *testing.T) {
	eng := engine.New(engine.WithDice(fixedDice{v: 0}))
	m := NewModel(eng)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)

	m, _ = submit(t, m, "go forest")

	if eng.Player().Location != models.Forest {
		t.Fatalf("expected forest, got %s", eng.Player().Location)
	}
	if !strings.Contains(m.gameLog, "You have entered the forest.") {
		t.Errorf("log missing arrival:\n%s", m.gameLog)
	}
	if m.textInput.Value() != "" {
		t.Errorf("input not cleared: %q", m.textInput.Value())
	}
	if !strings.Contains(m.View(), "forest") {
		t.Errorf("status panel missing location")
	}
}

func TestEmptyInputIsIgnored(t *testing.T) {
	eng := engine.New(engine.WithDice(fixedDice{v: 0}))
	m := NewModel(eng)
	before := m.gameLog

	m, cmd := submit(t, m, "")

	if cmd != nil || m.gameLog != before {
		t.Fatalf("empty input changed the log")
	}
}

func TestSessionEndWaitsForKey(t *testing.T) {
	eng := engine.New(engine.WithDice(fixedDice{v: 0}))
	m := NewModel(eng)

	m, cmd := submit(t, m, "consume magic rock")
	if cmd != nil {
		t.Fatalf("expected to stay on screen after the win")
	}
	if m.state != stateEnded || eng.Status() != engine.Won {
		t.Fatalf("expected ended session, got state %d status %s", m.state, eng.Status())
	}
	if !strings.Contains(m.gameLog, "Thank you for playing. Fare thee well!") {
		t.Errorf("log missing win sequence:\n%s", m.gameLog)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
