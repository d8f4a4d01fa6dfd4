/*
Package library stores named tile maps in a database.

Each map is kept in its CSV form alongside its dimensions and the SHA-1 of
the CSV so unchanged saves can be skipped.
*/
package library

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"time"

	"github.com/tussle/tiler/csvmap"
	"github.com/tussle/tiler/grid"
)

// ErrNotFound is returned when no map exists with the requested name
var ErrNotFound = errors.New("library: map not found")

var errNoName = errors.New("library: map has no name")

// Map is a named grid
type Map struct {
	Name    string
	Variant string
	Grid    *grid.Grid
}

// Summary describes a stored map without its contents
type Summary struct {
	Name     string
	Variant  string
	Width    int
	Height   int
	SHA1     string
	Modified time.Time
}

// Storage is implemented by each database backend
type Storage interface {
	Save(m *Map) error
	Load(name string) (*Map, error)
	List() ([]Summary, error)
	Delete(name string) error
	Close() error
}

type record struct {
	csv  []byte
	sha1 string
}

func encode(m *Map) (record, error) {
	if m.Name == "" {
		return record{}, errNoName
	}
	b := new(bytes.Buffer)
	if err := csvmap.Encode(b, m.Grid); err != nil {
		return record{}, err
	}
	return record{
		csv:  b.Bytes(),
		sha1: fmt.Sprintf("%X", sha1.Sum(b.Bytes())),
	}, nil
}

func decode(name, variant string, b []byte) (*Map, error) {
	g, err := csvmap.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("library: map %q: %w", name, err)
	}
	return &Map{
		Name:    name,
		Variant: variant,
		Grid:    g,
	}, nil
}

// Open returns the Storage for the named driver, either "sqlite3" or
// "postgres"
func Open(driver, dsn string) (Storage, error) {
	switch driver {
	case "sqlite3", "sqlite":
		s, err := NewSQLiteStore(dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := NewPostgresStore(dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("library: unknown driver %q", driver)
	}
}
