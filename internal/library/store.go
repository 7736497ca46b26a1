// Package library persists named scene sources and render history in a
// local SQLite database.
package library

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SceneEntry is one saved scene source.
type SceneEntry struct {
	Name      string
	Format    string // "hcl" or "json"
	Source    string
	CreatedAt time.Time
}

// RenderEntry is one recorded render attempt.
type RenderEntry struct {
	ID        string
	Scene     string // scene name or source path
	Output    string // image path (empty on failure)
	Status    string // "ok" or "failed"
	Stderr    string
	Duration  time.Duration
	CreatedAt time.Time
}

// Store wraps the SQLite database. Safe for sequential CLI use; not
// shared across processes.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the library database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS scenes (
		name TEXT PRIMARY KEY,
		format TEXT NOT NULL,
		source TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS renders (
		id TEXT PRIMARY KEY,
		scene TEXT NOT NULL,
		output TEXT,
		status TEXT NOT NULL,
		stderr TEXT,
		duration_ms INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_renders_scene ON renders(scene, created_at);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScene inserts or replaces a named scene source.
func (s *Store) SaveScene(name, format, source string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO scenes (name, format, source, created_at) VALUES (?, ?, ?, ?)`,
		name, format, source, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save scene %q: %w", name, err)
	}
	return nil
}

// GetScene fetches a saved scene by name.
func (s *Store) GetScene(name string) (*SceneEntry, error) {
	row := s.db.QueryRow(`SELECT name, format, source, created_at FROM scenes WHERE name = ?`, name)
	var e SceneEntry
	var created int64
	if err := row.Scan(&e.Name, &e.Format, &e.Source, &created); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("scene %q not found", name)
		}
		return nil, fmt.Errorf("get scene %q: %w", name, err)
	}
	e.CreatedAt = time.Unix(created, 0)
	return &e, nil
}

// ListScenes returns all saved scenes ordered by name.
func (s *Store) ListScenes() ([]SceneEntry, error) {
	rows, err := s.db.Query(`SELECT name, format, source, created_at FROM scenes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var out []SceneEntry
	for rows.Next() {
		var e SceneEntry
		var created int64
		if err := rows.Scan(&e.Name, &e.Format, &e.Source, &created); err != nil {
			return nil, fmt.Errorf("scan scene row: %w", err)
		}
		e.CreatedAt = time.Unix(created, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

// DeleteScene removes a saved scene. Deleting an absent name is not an
// error.
func (s *Store) DeleteScene(name string) error {
	if _, err := s.db.Exec(`DELETE FROM scenes WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete scene %q: %w", name, err)
	}
	return nil
}

// RecordRender appends a render attempt and returns its generated id.
func (s *Store) RecordRender(sceneName, output, status, stderr string, duration time.Duration) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO renders (id, scene, output, status, stderr, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, sceneName, output, status, stderr, duration.Milliseconds(), time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("record render for %q: %w", sceneName, err)
	}
	return id, nil
}

// Renders returns the render history for a scene, newest first.
func (s *Store) Renders(sceneName string) ([]RenderEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, scene, output, status, stderr, duration_ms, created_at
		 FROM renders WHERE scene = ? ORDER BY created_at DESC`, sceneName)
	if err != nil {
		return nil, fmt.Errorf("query renders for %q: %w", sceneName, err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var out []RenderEntry
	for rows.Next() {
		var e RenderEntry
		var durationMS, created int64
		if err := rows.Scan(&e.ID, &e.Scene, &e.Output, &e.Status, &e.Stderr, &durationMS, &created); err != nil {
			return nil, fmt.Errorf("scan render row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = time.Unix(created, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}
