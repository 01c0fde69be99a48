package keyring

import (
	"testing"

	zkeyring "github.com/zalando/go-keyring"
)

func TestConnectionStringLifecycle(t *testing.T) {
	zkeyring.MockInit()

	if _, err := GetConnectionString(); err != ErrNotFound {
		t.Fatalf("Expected ErrNotFound on empty keyring, got %v", err)
	}

	if err := SetConnectionString("postgres://localhost/daygrid"); err != nil {
		t.Fatalf("SetConnectionString failed: %v", err)
	}
	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString failed: %v", err)
	}
	if got != "postgres://localhost/daygrid" {
		t.Errorf("Unexpected connection string %q", got)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString failed: %v", err)
	}
	if err := DeleteConnectionString(); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestFeedTokenLifecycle(t *testing.T) {
	zkeyring.MockInit()

	if err := SetFeedToken("secret"); err != nil {
		t.Fatalf("SetFeedToken failed: %v", err)
	}
	got, err := GetFeedToken()
	if err != nil {
		t.Fatalf("GetFeedToken failed: %v", err)
	}
	if got != "secret" {
		t.Errorf("Unexpected feed token %q", got)
	}

	// The two secrets live under separate keyring users.
	if _, err := GetConnectionString(); err != ErrNotFound {
		t.Errorf("Expected connection string untouched, got %v", err)
	}

	if err := DeleteFeedToken(); err != nil {
		t.Fatalf("DeleteFeedToken failed: %v", err)
	}
	if _, err := GetFeedToken(); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestSetRejectsEmptySecrets(t *testing.T) {
	zkeyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("Expected error for empty connection string")
	}
	if err := SetFeedToken(""); err == nil {
		t.Error("Expected error for empty feed token")
	}
}
