package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"daygrid/internal/constants"
	"daygrid/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.state == stateAddTodo {
			return m.updateForm(msg)
		}
		return m.updateTimeline(msg)
	}

	if m.state == stateAddTodo && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) updateTimeline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.sched.Activities)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Start):
		if a := m.selected(); a != nil && a.Status == models.StatusPending {
			a.Status = models.StatusActive
			a.ActualStart = nowPtr()
			m.persist()
		}

	case key.Matches(msg, m.keys.Done):
		if a := m.selected(); a != nil {
			a.Status = models.StatusDone
			a.ActualEnd = nowPtr()
			m.persist()
		}

	case key.Matches(msg, m.keys.Skip):
		if a := m.selected(); a != nil {
			a.Status = models.StatusSkipped
			m.persist()
		}

	case key.Matches(msg, m.keys.Extend):
		if a := m.selected(); a != nil && a.Source != models.SourceCalendar {
			a.Extend(15)
			m.persist()
		}

	case key.Matches(msg, m.keys.Rebuild):
		m.reload(m.date)

	case key.Matches(msg, m.keys.NextDay):
		m.shiftDay(1)

	case key.Matches(msg, m.keys.PrevDay):
		m.shiftDay(-1)

	case key.Matches(msg, m.keys.Add):
		m.state = stateAddTodo
		m.form = m.newTodoForm()
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.state = stateTimeline
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.state = stateTimeline
		m.submitTodo()
		m.form = nil
	}
	return m, cmd
}

func (m *Model) submitTodo() {
	duration, err := strconv.Atoi(m.formData.Duration)
	if err != nil || duration <= 0 {
		m.err = errInvalidDuration
		return
	}
	if err := m.addItem(m.formData.Title, duration, models.DueWindow(m.formData.Due)); err != nil {
		m.err = err
		return
	}
	m.reload(m.date)
}

// persist writes status mutations back into the stored schedule. The
// scheduled windows themselves are untouched except through Extend.
func (m *Model) persist() {
	if err := m.store.SaveSchedule(m.sched); err != nil {
		m.err = err
	}
}

func (m *Model) reload(date string) {
	sched, err := m.rebuild(date)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.date = date
	m.sched = sched
	if m.cursor >= len(sched.Activities) {
		m.cursor = len(sched.Activities) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) shiftDay(days int) {
	day, err := time.Parse(constants.DateFormat, m.date)
	if err != nil {
		m.err = err
		return
	}
	m.reload(day.AddDate(0, 0, days).Format(constants.DateFormat))
}
