package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"daygrid/internal/constants"
	"daygrid/internal/keyring"
	"daygrid/internal/utils"
)

type DoctorCmd struct{}

// Run performs a series of health checks and reports pass/fail without
// aborting on the first problem.
func (c *DoctorCmd) Run(ctx *Context) error {
	healthy := true

	if err := ctx.Store.Load(); err != nil {
		report(false, "storage: %v", err)
		return fmt.Errorf("doctor found problems")
	}
	report(true, "storage reachable at %s", ctx.Store.GetConfigPath())

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		report(false, "settings: %v", err)
		healthy = false
	} else {
		if err := settings.DayConfig().Validate(); err != nil {
			report(false, "day configuration: %v", err)
			healthy = false
		} else {
			report(true, "day configuration valid (%s-%s)", settings.DayStart, settings.DayEnd)
		}
		if settings.FeedURL == "" {
			report(true, "calendar feed not configured (optional)")
		} else {
			report(true, "calendar feed configured")
		}
	}

	if keyring.IsAvailable() {
		report(true, "OS keyring available")
	} else {
		report(false, "OS keyring unavailable (postgres storage and feed tokens will not work)")
		healthy = false
	}

	lockPath := filepath.Join(filepath.Dir(ctx.Store.GetConfigPath()), constants.LockfileName)
	if pid, running, err := utils.LockHolder(lockPath); err == nil {
		if running {
			report(true, "TUI lock held by running process (pid %d)", pid)
		} else {
			report(false, "stale lockfile at %s (pid %d is gone); remove it", lockPath, pid)
			healthy = false
		}
	} else if os.IsNotExist(err) {
		report(true, "no TUI lock")
	} else {
		report(false, "lockfile: %v", err)
		healthy = false
	}

	if !healthy {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("\nAll checks passed.")
	return nil
}

func report(ok bool, format string, args ...interface{}) {
	mark := "✓"
	if !ok {
		mark = "✗"
	}
	fmt.Printf("%s %s\n", mark, fmt.Sprintf(format, args...))
}
