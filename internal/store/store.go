// Package store handles SQLite persistence of translation run history.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/wordswap/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNoRuns is returned when no run has been recorded yet.
var ErrNoRuns = errors.New("no runs recorded")

// Store wraps SQLite access for run data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			input_path TEXT NOT NULL,
			words_path TEXT NOT NULL,
			dictionary_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			lines INTEGER NOT NULL,
			targets INTEGER NOT NULL,
			entries INTEGER NOT NULL,
			matches INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			memory_bytes INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_frequencies (
			run_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			english TEXT NOT NULL,
			french TEXT NOT NULL,
			frequency INTEGER NOT NULL,
			PRIMARY KEY (run_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ended_at ON runs(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed run and its frequency report rows in order.
func (s *Store) InsertRun(ctx context.Context, rec model.RunRecord, rows []model.FrequencyRow) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	matches := 0
	for _, row := range rows {
		matches += row.Frequency
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, ended_at, input_path, words_path, dictionary_path, output_path, lines, targets, entries, matches, duration_ms, memory_bytes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.InputPath,
		rec.WordsPath,
		rec.DictionaryPath,
		rec.OutputPath,
		rec.Lines,
		rec.Targets,
		rec.Entries,
		matches,
		rec.Metrics.Duration.Milliseconds(),
		int64(rec.Metrics.MemoryBytes),
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(rows) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_frequencies (run_id, position, english, french, frequency)
			 VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, row := range rows {
			if _, err := stmt.ExecContext(ctx, id, i, row.English, row.French, row.Frequency); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns recorded runs, oldest first. last > 0 keeps only the most
// recent last runs.
func (s *Store) ListRuns(ctx context.Context, last int) ([]model.RunSummary, error) {
	query := `SELECT id, ended_at, input_path, lines, matches, duration_ms, memory_bytes
		FROM runs
		ORDER BY ended_at ASC, id ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunSummary
	for rows.Next() {
		var run model.RunSummary
		var endedAt string
		var memory int64
		if err := rows.Scan(&run.RunID, &endedAt, &run.InputPath, &run.Lines, &run.Matches, &run.DurationMs, &memory); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		run.EndedAt = parsed
		run.MemoryBytes = uint64(memory)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if last > 0 && len(runs) > last {
		runs = runs[len(runs)-last:]
	}
	return runs, nil
}

// LatestRunID returns the id of the most recently finished run.
func (s *Store) LatestRunID(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY ended_at DESC, id DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoRuns
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RunFrequencies returns the frequency report of a run in dictionary order.
func (s *Store) RunFrequencies(ctx context.Context, runID int64) ([]model.FrequencyRow, error) {
	var exists int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&exists); err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("run %d not found", runID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT english, french, frequency
		FROM run_frequencies
		WHERE run_id = ?
		ORDER BY position ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.FrequencyRow
	for rows.Next() {
		var row model.FrequencyRow
		if err := rows.Scan(&row.English, &row.French, &row.Frequency); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
