package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jewels/internal/config"
	"github.com/vovakirdan/tui-jewels/internal/core"
	"github.com/vovakirdan/tui-jewels/internal/storage"
)

func TestMenuListsRegisteredGames(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRound(storage.RoundResult{GameID: "stub", Score: 30}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.Items()) == 0 || m.Items()[0].GameID != "stub" {
		t.Fatalf("items = %+v", m.Items())
	}
	if m.Items()[0].Best != 30 {
		t.Errorf("best = %d, expected 30", m.Items()[0].Best)
	}
	if !strings.Contains(m.View(), "Stub") {
		t.Error("menu should show game titles")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil || m.Selected() == nil || m.Selected().GameID != "stub" {
		t.Errorf("selected = %+v", m.Selected())
	}
}

func TestPaceModel(t *testing.T) {
	m := NewPaceModel(80, 24)
	if p := m.paces[m.cursor]; p != config.PaceNormal {
		t.Fatalf("cursor starts on %q", p)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(PaceModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PaceModel)

	if cmd == nil || m.Selected() == nil || *m.Selected() != config.PaceFast {
		t.Errorf("selected = %v", m.Selected())
	}
}

func TestPaceModelBack(t *testing.T) {
	next, _ := NewPaceModel(80, 24).Update(tea.KeyMsg{Type: tea.KeyEsc})
	m := next.(PaceModel)

	if !m.WantsBack() || m.Selected() != nil {
		t.Error("esc should back out without a pace")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("got %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("got %q", got)
	}
}
