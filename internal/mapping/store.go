package mapping

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"rollcall/internal/config"
	"rollcall/internal/services"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users must recreate the database after a bump.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages season-mapping persistence backed by SQLite. A sidecar flock
// serializes access across processes; Open fails fast when another invocation
// holds the database.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the mapping database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Mapping.DBPath
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire mapping lock: %w", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrTransient, "mapping", "open",
			"mapping database is locked by another invocation", nil)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the sidecar lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var closeErr error
	if s.db != nil {
		closeErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && closeErr == nil {
			closeErr = err
		}
	}
	return closeErr
}

// Path returns the database file path.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete the database to recreate)",
			ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Upsert inserts a mapping or replaces the existing mapping for the same
// series and local season. The stored mapping is returned with its identifiers
// and timestamps filled in.
func (s *Store) Upsert(ctx context.Context, m SeasonMapping) (*SeasonMapping, error) {
	if m.SeriesID == "" {
		return nil, services.Wrap(services.ErrValidation, "mapping", "upsert", "series id is required", nil)
	}
	if m.LocalSeason < 1 {
		return nil, services.Wrap(services.ErrValidation, "mapping", "upsert", "local season must be at least 1", nil)
	}
	if m.LastEpisode != 0 && m.LastEpisode < m.FirstEpisode {
		return nil, services.Wrap(services.ErrValidation, "mapping", "upsert", "last episode precedes first episode", nil)
	}

	now := time.Now().UTC()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO season_mappings (
            id, series_id, local_season, provider_season, episode_offset,
            first_episode, last_episode, note, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(series_id, local_season) DO UPDATE SET
            provider_season = excluded.provider_season,
            episode_offset = excluded.episode_offset,
            first_episode = excluded.first_episode,
            last_episode = excluded.last_episode,
            note = excluded.note,
            updated_at = excluded.updated_at`,
		m.ID, m.SeriesID, m.LocalSeason, m.ProviderSeason, m.EpisodeOffset,
		m.FirstEpisode, m.LastEpisode, m.Note,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert mapping: %w", err)
	}

	return s.Get(ctx, m.SeriesID, m.LocalSeason)
}

// Get returns the mapping for a series and local season.
func (s *Store) Get(ctx context.Context, seriesID string, localSeason int) (*SeasonMapping, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, series_id, local_season, provider_season, episode_offset,
                first_episode, last_episode, note, created_at, updated_at
         FROM season_mappings WHERE series_id = ? AND local_season = ?`,
		seriesID, localSeason)

	m, err := scanMapping(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "mapping", "get",
			fmt.Sprintf("no mapping for series %s season %d", seriesID, localSeason), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get mapping: %w", err)
	}
	return m, nil
}

// ListBySeries returns all mappings for a series ordered by local season.
func (s *Store) ListBySeries(ctx context.Context, seriesID string) ([]SeasonMapping, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, series_id, local_season, provider_season, episode_offset,
                first_episode, last_episode, note, created_at, updated_at
         FROM season_mappings WHERE series_id = ? ORDER BY local_season`,
		seriesID)
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var mappings []SeasonMapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		mappings = append(mappings, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mappings: %w", err)
	}
	return mappings, nil
}

// Delete removes the mapping for a series and local season.
func (s *Store) Delete(ctx context.Context, seriesID string, localSeason int) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM season_mappings WHERE series_id = ? AND local_season = ?",
		seriesID, localSeason)
	if err != nil {
		return fmt.Errorf("delete mapping: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "mapping", "delete",
			fmt.Sprintf("no mapping for series %s season %d", seriesID, localSeason), nil)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMapping(row rowScanner) (*SeasonMapping, error) {
	var m SeasonMapping
	var createdAt, updatedAt string
	if err := row.Scan(&m.ID, &m.SeriesID, &m.LocalSeason, &m.ProviderSeason,
		&m.EpisodeOffset, &m.FirstEpisode, &m.LastEpisode, &m.Note,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		m.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
		m.UpdatedAt = t
	}
	return &m, nil
}
