package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"daygrid/internal/constants"
	"daygrid/internal/models"
)

var errInvalidDuration = errors.New("duration must be a positive number of minutes")

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == stateAddTodo && m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("daygrid — %s", m.date)))
	b.WriteString("\n\n")

	if len(m.sched.Activities) == 0 {
		b.WriteString("  nothing scheduled\n")
	}
	for i, a := range m.sched.Activities {
		b.WriteString(m.renderRow(i, a))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderRow(i int, a models.Activity) string {
	window := fmt.Sprintf("%s-%s",
		a.Start.Format(constants.TimeFormat),
		a.End.Format(constants.TimeFormat))

	title := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color)).Render(a.Title)
	switch a.Status {
	case models.StatusDone, models.StatusSkipped:
		title = finishedStyle.Render(a.Title)
	case models.StatusActive, models.StatusOverran:
		title = title + " " + statusStyle.Render("● "+string(a.Status))
	}

	row := fmt.Sprintf("%s  %s", timeStyle.Render(window), title)
	if i == m.cursor {
		return selectedStyle.Render("▸ ") + row
	}
	return "  " + row
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Skip, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevDay, k.NextDay},
		{k.Start, k.Done, k.Skip, k.Extend},
		{k.Add, k.Rebuild, k.Help, k.Quit},
	}
}
