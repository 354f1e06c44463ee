package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var errLine string
	if m.formError != "" {
		errLine = errorStyle.Render(m.formError)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("lifelog")+" "+statusStyle.Render(m.store.GetConfigPath()),
		errLine,
		content,
		m.help.View(m),
	)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this habit and all of its tracked time?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
