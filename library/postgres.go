package library

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps maps in a PostgreSQL database
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects using connectionString and creates the schema
// if needed
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		id SERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		variant TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		sha1 TEXT NOT NULL,
		csv BYTEA NOT NULL,
		modified TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save stores m, replacing any map with the same name
func (s *PostgresStore) Save(m *Map) error {
	r, err := encode(m)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO maps (name, variant, width, height, sha1, csv)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (name)
	DO UPDATE SET
		variant = $2, width = $3, height = $4, sha1 = $5, csv = $6,
		modified = NOW()
	WHERE maps.sha1 <> $5 OR maps.variant <> $2
	`
	if _, err := s.db.Exec(query, m.Name, m.Variant, m.Grid.Width(), m.Grid.Height(), r.sha1, r.csv); err != nil {
		return fmt.Errorf("failed to save map: %w", err)
	}
	return nil
}

// Load returns the map with the given name
func (s *PostgresStore) Load(name string) (*Map, error) {
	var variant string
	var b []byte
	switch err := s.db.QueryRow("SELECT variant, csv FROM maps WHERE name = $1", name).Scan(&variant, &b); err {
	case sql.ErrNoRows:
		return nil, ErrNotFound
	case nil:
		return decode(name, variant, b)
	default:
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
}

// List returns a summary of every map ordered by name
func (s *PostgresStore) List() ([]Summary, error) {
	rows, err := s.db.Query("SELECT name, variant, width, height, sha1, modified FROM maps ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	defer rows.Close()

	var list []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.Name, &sum.Variant, &sum.Width, &sum.Height, &sum.SHA1, &sum.Modified); err != nil {
			return nil, err
		}
		list = append(list, sum)
	}
	return list, rows.Err()
}

// Delete removes the map with the given name
func (s *PostgresStore) Delete(name string) error {
	result, err := s.db.Exec("DELETE FROM maps WHERE name = $1", name)
	if err != nil {
		return fmt.Errorf("failed to delete map: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the database
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
