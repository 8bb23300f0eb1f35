// Package snapshot caches the most recent video listing per filter in a
// local SQLite database, so listings remain inspectable when the backend is
// unreachable and batch edits can show what they previously matched.
package snapshot

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"bilictl/internal/api"
	"bilictl/internal/config"
	"bilictl/internal/statusdiff"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale databases are rejected with ErrSchemaMismatch.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was written by an incompatible
// bilictl version.
var ErrSchemaMismatch = errors.New("snapshot schema version mismatch")

// ErrNoSnapshot indicates no cached listing exists for the filter.
var ErrNoSnapshot = errors.New("no cached listing for this filter")

// ErrLocked indicates another bilictl process holds the snapshot database.
var ErrLocked = errors.New("snapshot cache is in use by another bilictl process")

// Store persists listings in SQLite, guarded by a file lock against
// concurrent bilictl invocations.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the snapshot database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Snapshot.Dir, "snapshot.db")
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire snapshot lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
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

// Close closes the database and releases the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
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
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// SaveListing replaces the cached listing for filterKey.
func (s *Store) SaveListing(ctx context.Context, filterKey string, resp *api.VideosResponse) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM listings WHERE filter_key = ?", filterKey); err != nil {
		return fmt.Errorf("clear previous listing: %w", err)
	}

	fetchedAt := time.Now().UTC().Format(time.RFC3339Nano)
	for position, video := range resp.Videos {
		status, err := json.Marshal(video.DownloadStatus)
		if err != nil {
			return fmt.Errorf("encode status vector: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO listings (
                filter_key, position, video_id, bvid, name, upper_name,
                should_download, is_paid_video, download_status, total_count, fetched_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			filterKey,
			position,
			video.ID,
			video.BVID,
			video.Name,
			video.UpperName,
			boolToInt(video.ShouldDownload),
			boolToInt(video.IsPaidVideo),
			string(status),
			resp.TotalCount,
			fetchedAt,
		)
		if err != nil {
			return fmt.Errorf("insert listing row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit listing: %w", err)
	}
	return nil
}

// Listing returns the cached listing for filterKey and when it was fetched.
func (s *Store) Listing(ctx context.Context, filterKey string) (*api.VideosResponse, time.Time, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT video_id, bvid, name, upper_name, should_download, is_paid_video,
                download_status, total_count, fetched_at
           FROM listings WHERE filter_key = ? ORDER BY position`,
		filterKey,
	)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("query listing: %w", err)
	}
	defer rows.Close()

	resp := &api.VideosResponse{}
	var fetchedAt time.Time
	for rows.Next() {
		var (
			video          api.VideoInfo
			shouldDownload int
			isPaid         int
			statusJSON     string
			fetchedRaw     string
		)
		err := rows.Scan(
			&video.ID, &video.BVID, &video.Name, &video.UpperName,
			&shouldDownload, &isPaid, &statusJSON, &resp.TotalCount, &fetchedRaw,
		)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("scan listing row: %w", err)
		}
		video.ShouldDownload = shouldDownload != 0
		video.IsPaidVideo = isPaid != 0

		var status statusdiff.Vector
		if err := json.Unmarshal([]byte(statusJSON), &status); err != nil {
			return nil, time.Time{}, fmt.Errorf("decode status vector: %w", err)
		}
		video.DownloadStatus = status

		if fetchedAt.IsZero() {
			if parsed, err := time.Parse(time.RFC3339Nano, fetchedRaw); err == nil {
				fetchedAt = parsed
			}
		}
		resp.Videos = append(resp.Videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("iterate listing rows: %w", err)
	}
	if len(resp.Videos) == 0 {
		return nil, time.Time{}, ErrNoSnapshot
	}
	return resp, fetchedAt, nil
}

// Clear drops every cached listing.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM listings"); err != nil {
		return fmt.Errorf("clear listings: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
