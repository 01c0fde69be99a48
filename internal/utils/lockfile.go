package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// AcquireLock writes the current PID to the lockfile, refusing when a
// live process already holds it. A lockfile left behind by a dead
// process is reclaimed silently.
func AcquireLock(path string) error {
	if pid, running, err := LockHolder(path); err == nil && running {
		return fmt.Errorf("another daygrid instance is running (pid %d)", pid)
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0600)
}

// ReleaseLock removes the lockfile. Missing files are not an error.
func ReleaseLock(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LockHolder reports the PID recorded in the lockfile and whether that
// process is still alive. Returns an error when no lockfile exists or
// its contents are unreadable.
func LockHolder(path string) (int, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, fmt.Errorf("malformed lockfile %s: %w", path, err)
	}
	proc, err := ps.FindProcess(pid)
	if err != nil {
		return pid, false, err
	}
	return pid, proc != nil, nil
}
