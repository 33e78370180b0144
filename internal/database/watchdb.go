package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kucheran101/ensguard/internal/model"
)

// WatchDB provides SQLite-based storage for generation runs.
// Persisted runs make drift visible: comparing two runs of the same
// label shows which look-alike variants appeared or disappeared after a
// table or scoring change.
//
// Design decision: We use a single database file for all labels rather
// than one file per label. This simplifies cross-label queries and
// backup/restore operations.
type WatchDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures WatchDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a WatchDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*WatchDB, error) {
	dbPath := filepath.Join(dbDir, "ensguard.db")

	// Check if we should create the database or require it to exist
	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Build connection string
	// We use modernc.org/sqlite which uses a different connection string format.
	// When CreateIfNotExists is false, we use mode=rw to prevent creating new files.
	// When CreateIfNotExists is true, we use mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	// SQLite doesn't benefit from multiple connections for writes
	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	wdb := &WatchDB{
		db:     db,
		dbPath: dbPath,
	}

	// Enable WAL mode if requested
	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Create tables
	if err := wdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return wdb, nil
}

// Close closes the database connection.
func (wdb *WatchDB) Close() error {
	return wdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (wdb *WatchDB) createTables() error {
	schema := `
	-- Runs store one generation per row, with the full report as JSON
	-- so a run can be reloaded exactly as it was produced.
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		candidate_count INTEGER NOT NULL,
		top_score REAL NOT NULL,
		class_counts TEXT,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_label ON runs(label);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

	-- Candidates store the ranked rows of each run for direct queries
	-- (watchlist exports, variant lookups) without JSON parsing.
	CREATE TABLE IF NOT EXISTS candidates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		rank INTEGER NOT NULL,
		variant TEXT NOT NULL,
		class TEXT NOT NULL,
		position INTEGER NOT NULL,
		score REAL NOT NULL,
		distance INTEGER NOT NULL,
		punycode TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_candidates_run ON candidates(run_id);
	CREATE INDEX IF NOT EXISTS idx_candidates_variant ON candidates(variant);
	`

	_, err := wdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun saves a generation run and its ranked candidates.
// Returns the database ID of the new run.
func (wdb *WatchDB) SaveRun(ctx context.Context, report *model.RankedReport) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}
	countsJSON, _ := json.Marshal(report.ClassCounts) //nolint:errcheck,errchkjson // simple map; Marshal won't fail

	tx, err := wdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
	INSERT INTO runs (label, candidate_count, top_score, class_counts, report_json)
	VALUES (?, ?, ?, ?, ?)
	`,
		report.Normalized,
		report.TotalCandidates(),
		report.TopScore,
		string(countsJSON),
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO candidates (run_id, rank, variant, class, position, score, distance, punycode)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare candidate insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range report.Candidates {
		if _, err := stmt.ExecContext(ctx, runID, i+1, c.Variant, c.Class.String(),
			c.Position, c.Score, c.Distance, c.Punycode); err != nil {
			return 0, fmt.Errorf("failed to insert candidate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// GetRunByID retrieves a run's full report by its database ID.
// Returns nil without error when the run does not exist.
func (wdb *WatchDB) GetRunByID(ctx context.Context, id int64) (*model.RankedReport, error) {
	var reportJSON string
	err := wdb.db.QueryRowContext(ctx, `
	SELECT report_json FROM runs WHERE id = ?
	`, id).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var report model.RankedReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// GetRecentRuns retrieves up to limit most recent reports for a label,
// newest first. A limit of 0 means no limit.
func (wdb *WatchDB) GetRecentRuns(ctx context.Context, label string, limit int) ([]*model.RankedReport, error) {
	query := `
	SELECT report_json FROM runs
	WHERE label = ?
	ORDER BY created_at DESC, id DESC
	`
	args := []any{label}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := wdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get runs: %w", err)
	}
	defer rows.Close()

	var reports []*model.RankedReport
	for rows.Next() {
		var reportJSON string
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		var report model.RankedReport
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			continue // Skip malformed reports
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// RunMetadata contains summary information about a stored run.
// This is used for displaying run history without loading the full report.
type RunMetadata struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// Label is the normalized label the run was generated for.
	Label string

	// CreatedAt is when the run was performed.
	CreatedAt time.Time

	// CandidateCount is the number of ranked candidates in the run.
	CandidateCount int

	// TopScore is the score of the highest-ranked candidate.
	TopScore float64

	// ClassCounts contains candidate counts per class name.
	ClassCounts map[string]int
}

// GetRunHistory retrieves run metadata for a label, newest first.
// This is more efficient than GetRecentRuns when only metadata is needed.
func (wdb *WatchDB) GetRunHistory(ctx context.Context, label string) ([]RunMetadata, error) {
	rows, err := wdb.db.QueryContext(ctx, `
	SELECT id, label, created_at, candidate_count, top_score, class_counts
	FROM runs
	WHERE label = ?
	ORDER BY created_at DESC, id DESC
	`, label)
	if err != nil {
		return nil, fmt.Errorf("failed to get run history: %w", err)
	}
	defer rows.Close()

	var results []RunMetadata
	for rows.Next() {
		var meta RunMetadata
		var timestamp string
		var countsJSON sql.NullString

		if err := rows.Scan(&meta.ID, &meta.Label, &timestamp,
			&meta.CandidateCount, &meta.TopScore, &countsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}

		meta.CreatedAt = parseTimestamp(timestamp)

		if countsJSON.Valid && countsJSON.String != "" {
			if err := json.Unmarshal([]byte(countsJSON.String), &meta.ClassCounts); err != nil {
				meta.ClassCounts = make(map[string]int)
			}
		} else {
			meta.ClassCounts = make(map[string]int)
		}

		results = append(results, meta)
	}

	return results, rows.Err()
}

// ListLabels returns all labels that have at least one stored run.
func (wdb *WatchDB) ListLabels(ctx context.Context) ([]string, error) {
	rows, err := wdb.db.QueryContext(ctx, `
	SELECT DISTINCT label FROM runs
	ORDER BY label
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// GetRunVariants returns the variant strings of a run in ranked order.
// This reads the candidates table directly, avoiding JSON parsing.
func (wdb *WatchDB) GetRunVariants(ctx context.Context, runID int64) ([]string, error) {
	rows, err := wdb.db.QueryContext(ctx, `
	SELECT variant FROM candidates
	WHERE run_id = ?
	ORDER BY rank
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run variants: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var variant string
		if err := rows.Scan(&variant); err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		variants = append(variants, variant)
	}

	return variants, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
