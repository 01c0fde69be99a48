package cli

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"daygrid/internal/constants"
	"daygrid/internal/logger"
	"daygrid/internal/models"
	"daygrid/internal/tui"
	"daygrid/internal/utils"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// One interactive session at a time; concurrent status writes would
	// clobber each other.
	lockPath := filepath.Join(filepath.Dir(ctx.Store.GetConfigPath()), constants.LockfileName)
	if err := utils.AcquireLock(lockPath); err != nil {
		return err
	}
	defer func() {
		if err := utils.ReleaseLock(lockPath); err != nil {
			logger.Warn("Failed to release lockfile", "error", err)
		}
	}()

	today, err := ctx.Today()
	if err != nil {
		return err
	}
	sched, err := ctx.BuildSchedule(today, time.Now())
	if err != nil {
		return err
	}

	rebuild := func(date string) (models.Schedule, error) {
		return ctx.BuildSchedule(date, time.Now())
	}
	addItem := func(title string, durationMin int, due models.DueWindow) error {
		it := models.Item{
			ID:          uuid.New().String(),
			Title:       title,
			DurationMin: durationMin,
			Due:         due,
			CreatedAt:   time.Now().UTC(),
		}
		if err := it.Validate(); err != nil {
			return err
		}
		return ctx.Store.AddItem(it)
	}

	model := tui.NewModel(ctx.Store, today, sched, rebuild, addItem)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
