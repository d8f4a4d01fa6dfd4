package library

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore keeps maps in a SQLite database file
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database in file
func NewSQLiteStore(file string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS map (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, variant TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, sha1 TEXT NOT NULL, csv BLOB NOT NULL, modified INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{
		db: db,
	}, nil
}

// Save stores m, replacing any map with the same name
func (s *SQLiteStore) Save(m *Map) error {
	r, err := encode(m)
	if err != nil {
		return err
	}

	var sha string
	switch err := s.db.QueryRow("SELECT sha1 FROM map WHERE name = ? AND variant = ?", m.Name, m.Variant).Scan(&sha); err {
	case sql.ErrNoRows:
	case nil:
		if sha == r.sha1 {
			return nil
		}
	default:
		return err
	}

	if _, err := s.db.Exec("INSERT OR REPLACE INTO map (name, variant, width, height, sha1, csv, modified) VALUES (?, ?, ?, ?, ?, ?, ?)", m.Name, m.Variant, m.Grid.Width(), m.Grid.Height(), r.sha1, r.csv, time.Now().Unix()); err != nil {
		return err
	}
	return nil
}

// Load returns the map with the given name
func (s *SQLiteStore) Load(name string) (*Map, error) {
	var variant string
	var b []byte
	switch err := s.db.QueryRow("SELECT variant, csv FROM map WHERE name = ?", name).Scan(&variant, &b); err {
	case sql.ErrNoRows:
		return nil, ErrNotFound
	case nil:
		return decode(name, variant, b)
	default:
		return nil, err
	}
}

// List returns a summary of every map ordered by name
func (s *SQLiteStore) List() ([]Summary, error) {
	rows, err := s.db.Query("SELECT name, variant, width, height, sha1, modified FROM map ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Summary
	for rows.Next() {
		var sum Summary
		var modified int64
		if err := rows.Scan(&sum.Name, &sum.Variant, &sum.Width, &sum.Height, &sum.SHA1, &modified); err != nil {
			return nil, err
		}
		sum.Modified = time.Unix(modified, 0)
		list = append(list, sum)
	}
	return list, rows.Err()
}

// Delete removes the map with the given name
func (s *SQLiteStore) Delete(name string) error {
	result, err := s.db.Exec("DELETE FROM map WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
