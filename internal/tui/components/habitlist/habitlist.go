// Package habitlist renders the habit dashboard list with live elapsed time.
package habitlist

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifelog/internal/habits"
	"github.com/julianstephens/lifelog/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID     string
	Active bool
}

type ResetHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

// TickMsg drives the per-second elapsed redraw. Gen identifies the chain
// that scheduled it so stale ticks from a superseded chain can be dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// Tick re-arms the one-second timer. The model only chains it while the
// selected habit is actively tracking, so an idle dashboard schedules no
// timers.
func Tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

type Item struct {
	Habit models.Habit
	Now   int64
}

func (i Item) Title() string {
	if i.Habit.IsActive {
		return "▶ " + i.Habit.Name
	}
	return "  " + i.Habit.Name
}

func (i Item) Description() string {
	desc := habits.FormatElapsed(habits.ProjectElapsedSeconds(i.Habit, i.Now))
	if i.Habit.CurrentStreak > 0 {
		desc += "  ·  streak " + strconv.Itoa(i.Habit.CurrentStreak)
	}
	if i.Habit.IsActive {
		desc += "  ·  tracking"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start/stop"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
	now  int64
}

func New(habitList []models.Habit, now int64, width, height int) Model {
	l := list.New(toItems(habitList, now), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Reset, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Reset, keys.Delete}
	}

	return Model{list: l, keys: keys, now: now}
}

func toItems(habitList []models.Habit, now int64) []list.Item {
	items := make([]list.Item, len(habitList))
	for i, h := range habitList {
		items[i] = Item{Habit: h, Now: now}
	}
	return items
}

func (m *Model) SetHabits(habitList []models.Habit, now int64) {
	m.now = now
	m.list.SetItems(toItems(habitList, now))
}

// SetNow refreshes the projection timestamp on every item so elapsed
// displays advance without a store round trip.
func (m *Model) SetNow(now int64) {
	m.now = now
	items := m.list.Items()
	for i, it := range items {
		if item, ok := it.(Item); ok {
			item.Now = now
			items[i] = item
		}
	}
	m.list.SetItems(items)
}

// Selected returns the highlighted habit, if any.
func (m Model) Selected() (models.Habit, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Habit, true
	}
	return models.Habit{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Habit.ID, Active: i.Habit.IsActive} }
			}
		case key.Matches(msg, m.keys.Reset):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ResetHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
