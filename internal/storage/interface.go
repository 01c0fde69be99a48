package storage

import "daygrid/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Obligations
	AddObligation(models.Obligation) error
	GetObligation(id string) (models.Obligation, error)
	GetAllObligations() ([]models.Obligation, error)
	UpdateObligation(models.Obligation) error
	DeleteObligation(id string) error

	// Items
	AddItem(models.Item) error
	GetItem(id string) (models.Item, error)
	// GetAllItems returns items sorted by creation time. Completed items
	// are included only when includeDone is set.
	GetAllItems(includeDone bool) ([]models.Item, error)
	UpdateItem(models.Item) error
	DeleteItem(id string) error

	// Schedules (one stored layout per date)
	SaveSchedule(models.Schedule) error
	GetSchedule(date string) (models.Schedule, error)

	// Utils
	GetConfigPath() string
}
