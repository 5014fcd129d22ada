package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkamenev/torsnake/internal/audio"
	"github.com/mkamenev/torsnake/internal/game"
	"github.com/mkamenev/torsnake/internal/scores"
)

type memBackend struct {
	data map[string][]byte
}

func (b *memBackend) Get(key string) ([]byte, error) {
	return b.data[key], nil
}

func (b *memBackend) Put(key string, value []byte) error {
	if b.data == nil {
		b.data = map[string][]byte{}
	}
	b.data[key] = value
	return nil
}

func (b *memBackend) Close() error { return nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	g := game.New(game.DefaultOptions())
	store := scores.NewStore(&memBackend{})
	return NewModel(g, store, audio.NullPlayer{}, 80, 24)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

func TestStartSchedulesTick(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	if m.game.Phase() != game.PhaseRunning {
		t.Fatalf("phase = %v, want Running", m.game.Phase())
	}
	if cmd == nil {
		t.Fatal("start should schedule a tick")
	}
}

func TestStaleTickDiscarded(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))

	before := m.game.Snapshot()

	// A tick from an old schedule must not advance the game.
	m, cmd := update(t, m, TickMsg{Gen: m.gen - 1, Time: time.Now()})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	after := m.game.Snapshot()
	if after.Tick != before.Tick {
		t.Errorf("tick advanced from %d to %d on stale message", before.Tick, after.Tick)
	}
}

func TestCurrentTickAdvances(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))

	m, cmd := update(t, m, TickMsg{Gen: m.gen, Time: time.Now()})
	if m.game.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, want 1", m.game.Snapshot().Tick)
	}
	if cmd == nil {
		t.Error("running game should reschedule the next tick")
	}
}

func TestPauseCancelsSchedule(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	genBefore := m.gen

	m, cmd := update(t, m, runeKey('p'))
	if m.game.Phase() != game.PhasePaused {
		t.Fatalf("phase = %v, want Paused", m.game.Phase())
	}
	if m.gen == genBefore {
		t.Error("pause should bump the schedule generation")
	}
	if cmd != nil {
		t.Error("pause should not schedule a tick")
	}

	// Resume schedules again with a new generation.
	m, cmd = update(t, m, runeKey('p'))
	if m.game.Phase() != game.PhaseRunning {
		t.Fatalf("phase = %v, want Running", m.game.Phase())
	}
	if cmd == nil {
		t.Error("resume should schedule a tick")
	}
}

func TestTicksIgnoredWhilePaused(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	gen := m.gen
	m, _ = update(t, m, runeKey('p'))

	// Even a message carrying the pre-pause generation is stale now.
	m, _ = update(t, m, TickMsg{Gen: gen, Time: time.Now()})
	if m.game.Snapshot().Tick != 0 {
		t.Errorf("tick = %d, want 0", m.game.Snapshot().Tick)
	}
}

func TestEndGoesToNameEntry(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))

	m, _ = update(t, m, runeKey('x'))
	if m.mode != modeNameEntry {
		t.Fatalf("mode = %v, want name entry", m.mode)
	}
	if m.game.Phase() != game.PhaseGameOver {
		t.Errorf("phase = %v, want GameOver", m.game.Phase())
	}
}

func TestNameEntrySubmitShowsBoard(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	m, _ = update(t, m, runeKey('x'))

	m, _ = update(t, m, runeKey('Z'))
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	if m.mode != modeBoard {
		t.Fatalf("mode = %v, want board", m.mode)
	}
	if len(m.board) != 1 {
		t.Fatalf("board has %d entries, want 1", len(m.board))
	}
	if m.board[0].Name != "Z" {
		t.Errorf("name = %q, want %q", m.board[0].Name, "Z")
	}
}

func TestBoardRestart(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))

	m, _ = update(t, m, runeKey('r'))
	if m.mode != modeGame {
		t.Fatalf("mode = %v, want game", m.mode)
	}
	if m.game.Phase() != game.PhaseNotStarted {
		t.Errorf("phase = %v, want NotStarted", m.game.Phase())
	}
}

func TestSwipeRequestsDirection(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))

	m, _ = update(t, m, press(10, 10))
	m, _ = update(t, m, release(10, 16))
	m, _ = update(t, m, TickMsg{Gen: m.gen, Time: time.Now()})

	if got := m.game.Snapshot().Direction; got != game.DirDown {
		t.Errorf("direction = %v, want %v", got, game.DirDown)
	}
}

func TestViewModes(t *testing.T) {
	m := newTestModel(t)
	if v := m.View(); v == "" {
		t.Error("game view should not be empty")
	}

	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	m, _ = update(t, m, runeKey('x'))
	if v := m.View(); !containsString(v, "GAME OVER") {
		t.Error("name entry view should announce game over")
	}

	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	if v := m.View(); !containsString(v, "HIGH SCORES") {
		t.Error("board view should show the leaderboard title")
	}
}

func containsString(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
