package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lattice-labs/gobn-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
)

// Store is a SQLite-backed run history implementing driven.RunStore.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.RunStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.gobn/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".gobn", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "0001_runs.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// Save appends a run record.
func (s *Store) Save(ctx context.Context, rec domain.RunRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("run record needs an ID: %w", domain.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, data_path, variables, exit_code, succeeded, score, arcs, failure)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.StartedAt.UTC(), rec.FinishedAt.UTC(), rec.DataPath, rec.Variables,
		rec.ExitCode, rec.Succeeded, rec.Score, rec.Arcs, rec.Failure)

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A non-positive limit
// returns all records.
func (s *Store) List(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	query := `
		SELECT id, started_at, finished_at, data_path, variables, exit_code, succeeded, score, arcs, failure
		FROM runs ORDER BY started_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return records, nil
}

// Get retrieves a run by ID.
func (s *Store) Get(ctx context.Context, id string) (domain.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, data_path, variables, exit_code, succeeded, score, arcs, failure
		FROM runs WHERE id = ?
	`, id)

	var rec domain.RunRecord
	var startedAt, finishedAt sql.NullTime
	if err := row.Scan(&rec.ID, &startedAt, &finishedAt, &rec.DataPath, &rec.Variables,
		&rec.ExitCode, &rec.Succeeded, &rec.Score, &rec.Arcs, &rec.Failure); err != nil {
		if err == sql.ErrNoRows {
			return domain.RunRecord{}, fmt.Errorf("run %q: %w", id, domain.ErrNotFound)
		}
		return domain.RunRecord{}, fmt.Errorf("scanning run: %w", err)
	}

	if startedAt.Valid {
		rec.StartedAt = startedAt.Time
	}
	if finishedAt.Valid {
		rec.FinishedAt = finishedAt.Time
	}

	return rec, nil
}

// scanRun scans a run record from *sql.Rows.
func scanRun(rows *sql.Rows) (domain.RunRecord, error) {
	var rec domain.RunRecord
	var startedAt, finishedAt sql.NullTime
	if err := rows.Scan(&rec.ID, &startedAt, &finishedAt, &rec.DataPath, &rec.Variables,
		&rec.ExitCode, &rec.Succeeded, &rec.Score, &rec.Arcs, &rec.Failure); err != nil {
		return domain.RunRecord{}, fmt.Errorf("scanning run: %w", err)
	}

	if startedAt.Valid {
		rec.StartedAt = startedAt.Time
	}
	if finishedAt.Valid {
		rec.FinishedAt = finishedAt.Time
	}

	return rec, nil
}
