package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLockfileLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daygrid.lock")

	if err := AcquireLock(path); err != nil {
		t.Fatalf("AcquireLock failed: %v", err)
	}

	pid, running, err := LockHolder(path)
	if err != nil {
		t.Fatalf("LockHolder failed: %v", err)
	}
	if pid != os.Getpid() {
		t.Errorf("Expected lock held by this process, got pid %d", pid)
	}
	if !running {
		t.Error("Expected holder reported as running")
	}

	// The holder is alive, so a second acquire must refuse.
	if err := AcquireLock(path); err == nil {
		t.Error("Expected second acquire to fail while the lock is held")
	}

	if err := ReleaseLock(path); err != nil {
		t.Fatalf("ReleaseLock failed: %v", err)
	}
	if _, _, err := LockHolder(path); err == nil {
		t.Error("Expected error reading a released lock")
	}
}

func TestReleaseLock_MissingFileIsFine(t *testing.T) {
	if err := ReleaseLock(filepath.Join(t.TempDir(), "absent.lock")); err != nil {
		t.Errorf("Expected no error for a missing lockfile, got %v", err)
	}
}

func TestLockHolder_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daygrid.lock")
	if err := os.WriteFile(path, []byte("not-a-pid"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LockHolder(path); err == nil {
		t.Error("Expected error for a malformed lockfile")
	}
}
