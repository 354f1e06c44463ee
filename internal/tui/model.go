// Package tui hosts the interactive habit dashboard.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifelog/internal/habits"
	"github.com/julianstephens/lifelog/internal/storage"
	"github.com/julianstephens/lifelog/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateAddHabit
	StateConfirmDelete
)

type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Help key.Binding
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type HabitFormModel struct {
	Name        string
	Description string
}

type Model struct {
	store           storage.Provider
	habits          *habits.Service
	owner           string
	state           SessionState
	keys            KeyMap
	help            help.Model
	habitList       habitlist.Model
	form            *huh.Form
	habitForm       *HabitFormModel
	habitToDeleteID string
	formError       string
	tickGen         int
	ticking         bool
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider, svc *habits.Service, owner string) Model {
	habitsList, _ := svc.List(owner)
	hl := habitlist.New(habitsList, nowMillis(), 0, 0)

	m := Model{
		store:     store,
		habits:    svc,
		owner:     owner,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: hl,
	}

	// Init has a value receiver, so the chain state for the initial tick
	// is decided here.
	if h, ok := hl.Selected(); ok && h.IsActive {
		m.ticking = true
		m.tickGen = 1
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Help, m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.Help, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	if m.ticking {
		return habitlist.Tick(m.tickGen)
	}
	return nil
}
