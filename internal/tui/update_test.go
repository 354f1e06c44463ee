package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifelog/internal/habits"
	"github.com/julianstephens/lifelog/internal/storage/sqlite"
	"github.com/julianstephens/lifelog/internal/tui/components/habitlist"
)

func newTestService(t *testing.T) (*sqlite.Store, *habits.Service) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "lifelog.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, habits.NewService(store, nil)
}

func TestInitArmsTickForActiveSelection(t *testing.T) {
	store, svc := newTestService(t)
	if _, err := svc.Create("local", "Reading", ""); err != nil {
		t.Fatalf("create habit: %v", err)
	}

	// The dashboard opens onto a habit that is already tracking.
	m := NewModel(store, svc, "local")
	if !m.ticking || m.tickGen != 1 {
		t.Fatalf("expected live chain at gen 1, got ticking=%v gen=%d", m.ticking, m.tickGen)
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick for an active habit")
	}
}

func TestInitIdleDashboardSchedulesNoTick(t *testing.T) {
	store, svc := newTestService(t)
	m := NewModel(store, svc, "local")
	if m.ticking {
		t.Fatal("empty dashboard should not have a live chain")
	}
	if m.Init() != nil {
		t.Error("Init should schedule nothing with no habits")
	}
}

func TestTickArmsAfterFirstHabitCreated(t *testing.T) {
	store, svc := newTestService(t)
	m := NewModel(store, svc, "local")

	// The add form's completion path: create, refresh, ensure the chain.
	if _, err := svc.Create("local", "Reading", ""); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	m.refreshHabits()
	cmd := m.ensureTick()

	if cmd == nil {
		t.Fatal("creating the first habit should start the redraw chain")
	}
	if !m.ticking || m.tickGen != 1 {
		t.Errorf("expected live chain at gen 1, got ticking=%v gen=%d", m.ticking, m.tickGen)
	}
}

func TestEnsureTickDoesNotDuplicateChain(t *testing.T) {
	store, svc := newTestService(t)
	if _, err := svc.Create("local", "Reading", ""); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	m := NewModel(store, svc, "local")

	if m.ensureTick() != nil {
		t.Error("ensureTick should see the live chain and do nothing")
	}
	if m.tickGen != 1 {
		t.Errorf("generation should not advance for a live chain, got %d", m.tickGen)
	}
}

func TestStaleTickDropped(t *testing.T) {
	store, svc := newTestService(t)
	if _, err := svc.Create("local", "Reading", ""); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	m := NewModel(store, svc, "local")

	next, cmd := m.Update(habitlist.TickMsg{Time: time.Now(), Gen: m.tickGen - 1})
	if cmd != nil {
		t.Error("a tick from a superseded chain must not re-arm")
	}
	if !next.(Model).ticking {
		t.Error("dropping a stale tick must not kill the live chain")
	}
}

func TestCurrentTickRearms(t *testing.T) {
	store, svc := newTestService(t)
	if _, err := svc.Create("local", "Reading", ""); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	m := NewModel(store, svc, "local")

	next, cmd := m.Update(habitlist.TickMsg{Time: time.Now(), Gen: m.tickGen})
	if cmd == nil {
		t.Error("tick on an active habit should re-arm the chain")
	}
	if !next.(Model).ticking {
		t.Error("chain should stay live while the habit tracks")
	}
}

func TestTickChainDiesWhenHabitStops(t *testing.T) {
	store, svc := newTestService(t)
	h, err := svc.Create("local", "Reading", "")
	if err != nil {
		t.Fatalf("create habit: %v", err)
	}
	m := NewModel(store, svc, "local")

	if _, err := svc.Stop("local", h.ID); err != nil {
		t.Fatalf("stop habit: %v", err)
	}
	m.refreshHabits()

	next, cmd := m.Update(habitlist.TickMsg{Time: time.Now(), Gen: m.tickGen})
	if cmd != nil {
		t.Error("tick on an idle habit must not re-arm")
	}
	if next.(Model).ticking {
		t.Error("chain state should be dead after the habit stops")
	}
}

func TestSelectionMoveRestartsChain(t *testing.T) {
	store, svc := newTestService(t)
	first, err := svc.Create("local", "Reading", "")
	if err != nil {
		t.Fatalf("create first habit: %v", err)
	}
	// Separate the creation timestamps so the list order is stable.
	time.Sleep(2 * time.Millisecond)
	if _, err := svc.Create("local", "Stretching", ""); err != nil {
		t.Fatalf("create second habit: %v", err)
	}
	if _, err := svc.Stop("local", first.ID); err != nil {
		t.Fatalf("stop first habit: %v", err)
	}

	// Selection opens on the idle first habit, so no chain is live.
	m := NewModel(store, svc, "local")
	m.habitList.SetSize(80, 24)
	if m.ticking {
		t.Fatal("idle selection should not arm the chain")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if !next.(Model).ticking {
		t.Error("moving selection onto a tracking habit should restart the chain")
	}
}
