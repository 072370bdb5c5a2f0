package agent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // SQLite driver

	"maestro/pkg/logx"
)

// ErrNotFound is returned when the registry has no agent under a name.
var ErrNotFound = errors.New("agent not found")

// Store is the local agent registry, a single-writer SQLite database.
type Store struct {
	db     *sql.DB
	logger *logx.Logger
}

// OpenStore opens (and if needed initializes) the registry at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf(
		"file:%s?_foreign_keys=ON&_journal_mode=WAL&_busy_timeout=5000",
		path,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to open agent registry: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping agent registry: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS agents (
		name         TEXT PRIMARY KEY,
		model        TEXT NOT NULL,
		framework    TEXT,
		description  TEXT,
		definition   TEXT NOT NULL,
		updated_at   TIMESTAMP NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize agent registry schema: %w", err)
	}

	return &Store{db: db, logger: logx.NewLogger("agent-store")}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts one definition keyed by agent name.
func (s *Store) Save(ctx context.Context, def *Definition) error {
	if def.Metadata.Name == "" {
		return fmt.Errorf("agent definition has no name")
	}
	raw, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to encode agent %s: %w", def.Metadata.Name, err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO agents
		(name, model, framework, description, definition, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			model = excluded.model,
			framework = excluded.framework,
			description = excluded.description,
			definition = excluded.definition,
			updated_at = excluded.updated_at`,
		def.Metadata.Name, def.Spec.Model, def.Spec.Framework, def.Spec.Description,
		string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save agent %s: %w", def.Metadata.Name, err)
	}
	s.logger.Debug("saved agent %s (model %s)", def.Metadata.Name, def.Spec.Model)
	return nil
}

// Get returns one definition by name, or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (*Definition, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT definition FROM agents WHERE name = ?`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load agent %s: %w", name, err)
	}
	var def Definition
	if err := yaml.Unmarshal([]byte(raw), &def); err != nil {
		return nil, fmt.Errorf("failed to decode stored agent %s: %w", name, err)
	}
	return &def, nil
}

// List returns every stored definition ordered by name.
func (s *Store) List(ctx context.Context) ([]Definition, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT definition FROM agents ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	var defs []Definition
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan agent row: %w", err)
		}
		var def Definition
		if err := yaml.Unmarshal([]byte(raw), &def); err != nil {
			return nil, fmt.Errorf("failed to decode stored agent: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate agents: %w", err)
	}
	return defs, nil
}
