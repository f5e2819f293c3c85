// Package storage provides SQLite-based persistence for clip presets.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A preset is stored only as its parsed edge triplets (attribute, type,
// value); nothing about how the edges were originally written is kept.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/cliprect/internal/anim"
)

// ErrNotFound is returned when a preset does not exist.
var ErrNotFound = errors.New("storage: preset not found")

// Store manages the SQLite database connection for preset persistence.
type Store struct {
	db *sql.DB
}

// Preset is a named, fully parsed clip animation.
type Preset struct {
	Name      string
	Edges     anim.Pair
	CreatedAt time.Time
}

// Build constructs the clip animation described by the preset.
func (p Preset) Build() *anim.ClipRect {
	return anim.NewClipRect(p.Edges.From, p.Edges.To)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS presets (
			name TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS preset_edges (
			preset TEXT NOT NULL,
			attr TEXT NOT NULL,
			edge_type TEXT NOT NULL,
			value REAL NOT NULL,
			PRIMARY KEY (preset, attr)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreset stores edges under name, replacing any preset with that name.
func (s *Store) SavePreset(name string, edges anim.Pair) error {
	if name == "" {
		return errors.New("storage: preset name is empty")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(
		`INSERT INTO presets (name) VALUES (?)
		 ON CONFLICT(name) DO UPDATE SET created_at = CURRENT_TIMESTAMP`,
		name,
	); err != nil {
		return fmt.Errorf("storage: cannot save preset: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM preset_edges WHERE preset = ?", name); err != nil {
		return fmt.Errorf("storage: cannot replace preset edges: %w", err)
	}

	for _, a := range anim.Attrs {
		e := edges.Edge(a)
		if _, err := tx.Exec(
			"INSERT INTO preset_edges (preset, attr, edge_type, value) VALUES (?, ?, ?, ?)",
			name, a.String(), e.Type.String(), e.Value,
		); err != nil {
			return fmt.Errorf("storage: cannot save edge %s: %w", a, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit preset: %w", err)
	}
	return nil
}

// LoadPreset returns the preset with the given name, or ErrNotFound.
func (s *Store) LoadPreset(name string) (Preset, error) {
	p := Preset{Name: name}

	var createdAt any
	err := s.db.QueryRow("SELECT created_at FROM presets WHERE name = ?", name).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("storage: cannot query preset: %w", err)
	}
	p.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		"SELECT attr, edge_type, value FROM preset_edges WHERE preset = ?",
		name,
	)
	if err != nil {
		return Preset{}, fmt.Errorf("storage: cannot query preset edges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var attrName, typeName string
		var value float64
		if err := rows.Scan(&attrName, &typeName, &value); err != nil {
			return Preset{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		a, err := anim.ParseAttr(attrName)
		if err != nil {
			return Preset{}, fmt.Errorf("storage: preset %q: %w", name, err)
		}
		et, err := anim.ParseEdgeType(typeName)
		if err != nil {
			return Preset{}, fmt.Errorf("storage: preset %q: %w", name, err)
		}
		p.Edges.SetEdge(a, anim.EdgeSpec{Type: et, Value: value})
	}

	if err := rows.Err(); err != nil {
		return Preset{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return p, nil
}

// ListPresets returns all preset names with their save time, sorted by name.
// Edges are not loaded.
func (s *Store) ListPresets() ([]Preset, error) {
	rows, err := s.db.Query("SELECT name, created_at FROM presets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query presets: %w", err)
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		var p Preset
		var createdAt any
		if err := rows.Scan(&p.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return presets, nil
}

// DeletePreset removes a preset. Returns ErrNotFound if it does not exist.
func (s *Store) DeletePreset(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete preset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if _, err := tx.Exec("DELETE FROM preset_edges WHERE preset = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete preset edges: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
