package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"daygrid/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is found in the keyring
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetConnectionString retrieves the Postgres connection string from the
// OS keyring. Returns ErrNotFound if none is stored.
func GetConnectionString() (string, error) {
	return get(constants.KeyringPostgresUser)
}

// SetConnectionString stores the Postgres connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	return set(constants.KeyringPostgresUser, connStr)
}

// DeleteConnectionString removes the Postgres connection string from the OS keyring.
func DeleteConnectionString() error {
	return del(constants.KeyringPostgresUser)
}

// GetFeedToken retrieves the calendar feed bearer token from the OS
// keyring. Returns ErrNotFound if none is stored.
func GetFeedToken() (string, error) {
	return get(constants.KeyringFeedUser)
}

// SetFeedToken stores the calendar feed bearer token in the OS keyring.
func SetFeedToken(token string) error {
	if token == "" {
		return errors.New("feed token cannot be empty")
	}
	return set(constants.KeyringFeedUser, token)
}

// DeleteFeedToken removes the calendar feed bearer token from the OS keyring.
func DeleteFeedToken() error {
	return del(constants.KeyringFeedUser)
}

// IsAvailable checks if the OS keyring is available on the current
// system. Best effort; a read that comes back empty still counts as
// available.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}

func get(user string) (string, error) {
	val, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return val, nil
}

func set(user, val string) error {
	if err := keyring.Set(constants.AppName, user, val); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	return nil
}

func del(user string) error {
	if err := keyring.Delete(constants.AppName, user); err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	return nil
}
