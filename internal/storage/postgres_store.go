package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	_ "github.com/lib/pq"

	"daygrid/internal/keyring"
	"daygrid/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS settings (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data JSONB NOT NULL
);
CREATE TABLE IF NOT EXISTS obligations (
	id   TEXT PRIMARY KEY,
	data JSONB NOT NULL
);
CREATE TABLE IF NOT EXISTS items (
	id   TEXT PRIMARY KEY,
	data JSONB NOT NULL
);
CREATE TABLE IF NOT EXISTS schedules (
	date TEXT PRIMARY KEY,
	data JSONB NOT NULL
);
`

// PostgresStore keeps the same shape as the SQLite store but reads its
// connection string from the OS keyring, so credentials never land on
// disk in plain text.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore() *PostgresStore {
	return &PostgresStore{}
}

func (s *PostgresStore) connect() error {
	if s.db != nil {
		return nil
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		return fmt.Errorf("no database connection configured: %w", err)
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.connect(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Load() error {
	return s.connect()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return "postgres (connection string in OS keyring)"
}

func (s *PostgresStore) GetSettings() (models.Settings, error) {
	var settings models.Settings
	var data []byte
	row := s.db.QueryRow("SELECT data FROM settings WHERE id = 1")
	if err := row.Scan(&data); err != nil {
		return settings, fmt.Errorf("settings not found: %w", err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

func (s *PostgresStore) SaveSettings(settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO settings (id, data) VALUES (1, $1) ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data",
		data,
	)
	return err
}

func (s *PostgresStore) AddObligation(o models.Obligation) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode obligation: %w", err)
	}
	_, err = s.db.Exec("INSERT INTO obligations (id, data) VALUES ($1, $2)", o.ID, data)
	return err
}

func (s *PostgresStore) GetObligation(id string) (models.Obligation, error) {
	var o models.Obligation
	var data []byte
	row := s.db.QueryRow("SELECT data FROM obligations WHERE id = $1", id)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return o, fmt.Errorf("obligation not found: %s", id)
		}
		return o, err
	}
	if err := json.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("failed to decode obligation: %w", err)
	}
	return o, nil
}

func (s *PostgresStore) GetAllObligations() ([]models.Obligation, error) {
	rows, err := s.db.Query("SELECT data FROM obligations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var obligations []models.Obligation
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var o models.Obligation
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("failed to decode obligation: %w", err)
		}
		obligations = append(obligations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(obligations, func(i, j int) bool {
		return obligations[i].CreatedAt.Before(obligations[j].CreatedAt)
	})
	return obligations, nil
}

func (s *PostgresStore) UpdateObligation(o models.Obligation) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode obligation: %w", err)
	}
	res, err := s.db.Exec("UPDATE obligations SET data = $1 WHERE id = $2", data, o.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "obligation", o.ID)
}

func (s *PostgresStore) DeleteObligation(id string) error {
	res, err := s.db.Exec("DELETE FROM obligations WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res, "obligation", id)
}

func (s *PostgresStore) AddItem(it models.Item) error {
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to encode item: %w", err)
	}
	_, err = s.db.Exec("INSERT INTO items (id, data) VALUES ($1, $2)", it.ID, data)
	return err
}

func (s *PostgresStore) GetItem(id string) (models.Item, error) {
	var it models.Item
	var data []byte
	row := s.db.QueryRow("SELECT data FROM items WHERE id = $1", id)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return it, fmt.Errorf("item not found: %s", id)
		}
		return it, err
	}
	if err := json.Unmarshal(data, &it); err != nil {
		return it, fmt.Errorf("failed to decode item: %w", err)
	}
	return it, nil
}

func (s *PostgresStore) GetAllItems(includeDone bool) ([]models.Item, error) {
	rows, err := s.db.Query("SELECT data FROM items")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var it models.Item
		if err := json.Unmarshal(data, &it); err != nil {
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}
		if it.Done && !includeDone {
			continue
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *PostgresStore) UpdateItem(it models.Item) error {
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to encode item: %w", err)
	}
	res, err := s.db.Exec("UPDATE items SET data = $1 WHERE id = $2", data, it.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "item", it.ID)
}

func (s *PostgresStore) DeleteItem(id string) error {
	res, err := s.db.Exec("DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res, "item", id)
}

func (s *PostgresStore) SaveSchedule(sched models.Schedule) error {
	data, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO schedules (date, data) VALUES ($1, $2) ON CONFLICT (date) DO UPDATE SET data = EXCLUDED.data",
		sched.Date, data,
	)
	return err
}

func (s *PostgresStore) GetSchedule(date string) (models.Schedule, error) {
	var sched models.Schedule
	var data []byte
	row := s.db.QueryRow("SELECT data FROM schedules WHERE date = $1", date)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return sched, fmt.Errorf("no schedule for %s", date)
		}
		return sched, err
	}
	if err := json.Unmarshal(data, &sched); err != nil {
		return sched, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return sched, nil
}
