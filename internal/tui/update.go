package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifelog/internal/tui/components/habitlist"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wm.Width
		m.height = wm.Height
		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(wm.Width-h, wm.Height-v-4)
	}

	if m.state == StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if _, err := m.habits.Create(m.owner, m.habitForm.Name, m.habitForm.Description); err != nil {
				// Stay in the form so the user can correct and retry.
				m.formError = fmt.Sprintf("Failed to add habit: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.refreshHabits()
			m.state = StateHabits
			// A new habit starts tracking immediately, so the redraw
			// chain must be live before the first second elapses.
			cmds = append(cmds, m.ensureTick())
		case huh.StateAborted:
			m.formError = ""
			m.state = StateHabits
		}
		return m, tea.Batch(cmds...)
	}

	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.habits.Delete(m.owner, m.habitToDeleteID); err != nil {
					m.formError = fmt.Sprintf("Failed to delete habit: %v", err)
				}
				m.habitToDeleteID = ""
				m.refreshHabits()
				m.state = StateHabits
				return m, m.ensureTick()
			case "n", "N", "esc", "q":
				m.habitToDeleteID = ""
				m.state = StateHabits
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case habitlist.TickMsg:
		if msg.Gen != m.tickGen {
			// A superseded chain's tick; exactly one chain may re-arm.
			return m, nil
		}
		// Chain dies as soon as the selected habit is no longer tracking.
		if h, ok := m.habitList.Selected(); ok && h.IsActive {
			m.habitList.SetNow(nowMillis())
			return m, habitlist.Tick(m.tickGen)
		}
		m.ticking = false
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		var err error
		if msg.Active {
			_, err = m.habits.Stop(m.owner, msg.ID)
		} else {
			_, err = m.habits.Start(m.owner, msg.ID)
		}
		if err != nil {
			m.formError = fmt.Sprintf("Failed to update habit: %v", err)
			return m, nil
		}
		m.formError = ""
		m.refreshHabits()
		return m, m.ensureTick()

	case habitlist.ResetHabitMsg:
		if _, err := m.habits.Reset(m.owner, msg.ID); err != nil {
			m.formError = fmt.Sprintf("Failed to reset habit: %v", err)
			return m, nil
		}
		m.formError = ""
		m.refreshHabits()
		// Reset re-enters tracking, so make sure the redraw chain runs.
		return m, m.ensureTick()

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	cmds = append(cmds, cmd)

	// Selection may have moved onto an active habit after the chain died.
	cmds = append(cmds, m.ensureTick())

	return m, tea.Batch(cmds...)
}

// ensureTick starts a redraw chain when the selected habit is tracking and
// no chain is live. The generation id keeps a lingering tick from an older
// chain from doubling the redraw rate.
func (m *Model) ensureTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	if h, ok := m.habitList.Selected(); ok && h.IsActive {
		m.ticking = true
		m.tickGen++
		return habitlist.Tick(m.tickGen)
	}
	return nil
}

func (m *Model) refreshHabits() {
	habitsList, err := m.habits.List(m.owner)
	if err != nil {
		m.formError = fmt.Sprintf("Failed to load habits: %v", err)
		return
	}
	m.habitList.SetHabits(habitsList, nowMillis())
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
		),
	)
}
