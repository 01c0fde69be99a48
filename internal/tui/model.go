package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"daygrid/internal/models"
	"daygrid/internal/storage"
)

type sessionState int

const (
	stateTimeline sessionState = iota
	stateAddTodo
)

// RebuildFunc re-runs the layout pipeline for a date. The TUI never
// invokes the engine directly; the caller owns that plumbing.
type RebuildFunc func(date string) (models.Schedule, error)

type todoForm struct {
	Title    string
	Duration string
	Due      string
}

type Model struct {
	store    storage.Provider
	rebuild  RebuildFunc
	addItem  func(title string, durationMin int, due models.DueWindow) error
	date     string
	sched    models.Schedule
	cursor   int
	state    sessionState
	keys     KeyMap
	help     help.Model
	form     *huh.Form
	formData *todoForm
	err      error
	width    int
	height   int
	quitting bool
}

func NewModel(
	store storage.Provider,
	date string,
	sched models.Schedule,
	rebuild RebuildFunc,
	addItem func(title string, durationMin int, due models.DueWindow) error,
) Model {
	return Model{
		store:   store,
		rebuild: rebuild,
		addItem: addItem,
		date:    date,
		sched:   sched,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// selected returns the activity under the cursor, or nil when the
// timeline is empty.
func (m *Model) selected() *models.Activity {
	if m.cursor < 0 || m.cursor >= len(m.sched.Activities) {
		return nil
	}
	return &m.sched.Activities[m.cursor]
}

func (m *Model) newTodoForm() *huh.Form {
	m.formData = &todoForm{Due: string(models.DueToday)}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.formData.Title),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&m.formData.Duration),
			huh.NewSelect[string]().
				Title("Due").
				Options(
					huh.NewOption("today", string(models.DueToday)),
					huh.NewOption("tomorrow", string(models.DueTomorrow)),
					huh.NewOption("this week", string(models.DueThisWeek)),
					huh.NewOption("next week", string(models.DueNextWeek)),
					huh.NewOption("this month", string(models.DueThisMonth)),
					huh.NewOption("someday", string(models.DueSomeday)),
				).
				Value(&m.formData.Due),
		),
	)
}

func nowPtr() *time.Time {
	t := time.Now()
	return &t
}
