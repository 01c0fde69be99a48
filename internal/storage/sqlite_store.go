package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"daygrid/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS settings (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS obligations (
	id   TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS items (
	id   TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS schedules (
	date TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'daygrid init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	var settings models.Settings
	var data string
	row := s.db.QueryRow("SELECT data FROM settings WHERE id = 1")
	if err := row.Scan(&data); err != nil {
		return settings, fmt.Errorf("settings not found: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return settings, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO settings (id, data) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data",
		string(data),
	)
	return err
}

func (s *SQLiteStore) AddObligation(o models.Obligation) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode obligation: %w", err)
	}
	_, err = s.db.Exec("INSERT INTO obligations (id, data) VALUES (?, ?)", o.ID, string(data))
	return err
}

func (s *SQLiteStore) GetObligation(id string) (models.Obligation, error) {
	var o models.Obligation
	var data string
	row := s.db.QueryRow("SELECT data FROM obligations WHERE id = ?", id)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return o, fmt.Errorf("obligation not found: %s", id)
		}
		return o, err
	}
	if err := json.Unmarshal([]byte(data), &o); err != nil {
		return o, fmt.Errorf("failed to decode obligation: %w", err)
	}
	return o, nil
}

func (s *SQLiteStore) GetAllObligations() ([]models.Obligation, error) {
	rows, err := s.db.Query("SELECT data FROM obligations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var obligations []models.Obligation
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var o models.Obligation
		if err := json.Unmarshal([]byte(data), &o); err != nil {
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

func (s *SQLiteStore) UpdateObligation(o models.Obligation) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode obligation: %w", err)
	}
	res, err := s.db.Exec("UPDATE obligations SET data = ? WHERE id = ?", string(data), o.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "obligation", o.ID)
}

func (s *SQLiteStore) DeleteObligation(id string) error {
	res, err := s.db.Exec("DELETE FROM obligations WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res, "obligation", id)
}

func (s *SQLiteStore) AddItem(it models.Item) error {
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to encode item: %w", err)
	}
	_, err = s.db.Exec("INSERT INTO items (id, data) VALUES (?, ?)", it.ID, string(data))
	return err
}

func (s *SQLiteStore) GetItem(id string) (models.Item, error) {
	var it models.Item
	var data string
	row := s.db.QueryRow("SELECT data FROM items WHERE id = ?", id)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return it, fmt.Errorf("item not found: %s", id)
		}
		return it, err
	}
	if err := json.Unmarshal([]byte(data), &it); err != nil {
		return it, fmt.Errorf("failed to decode item: %w", err)
	}
	return it, nil
}

func (s *SQLiteStore) GetAllItems(includeDone bool) ([]models.Item, error) {
	rows, err := s.db.Query("SELECT data FROM items")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var it models.Item
		if err := json.Unmarshal([]byte(data), &it); err != nil {
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

func (s *SQLiteStore) UpdateItem(it models.Item) error {
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to encode item: %w", err)
	}
	res, err := s.db.Exec("UPDATE items SET data = ? WHERE id = ?", string(data), it.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "item", it.ID)
}

func (s *SQLiteStore) DeleteItem(id string) error {
	res, err := s.db.Exec("DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res, "item", id)
}

func (s *SQLiteStore) SaveSchedule(sched models.Schedule) error {
	data, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO schedules (date, data) VALUES (?, ?) ON CONFLICT(date) DO UPDATE SET data = excluded.data",
		sched.Date, string(data),
	)
	return err
}

func (s *SQLiteStore) GetSchedule(date string) (models.Schedule, error) {
	var sched models.Schedule
	var data string
	row := s.db.QueryRow("SELECT data FROM schedules WHERE date = ?", date)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return sched, fmt.Errorf("no schedule for %s", date)
		}
		return sched, err
	}
	if err := json.Unmarshal([]byte(data), &sched); err != nil {
		return sched, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return sched, nil
}

func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %s", kind, id)
	}
	return nil
}
