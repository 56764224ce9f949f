// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordfall/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

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
			tier TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_streak INTEGER NOT NULL,
			max_combo INTEGER NOT NULL,
			words_destroyed INTEGER NOT NULL,
			letters_destroyed INTEGER NOT NULL,
			powerups_destroyed INTEGER NOT NULL,
			reveals INTEGER NOT NULL,
			misses INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS letter_counts (
			run_id INTEGER NOT NULL,
			letter TEXT NOT NULL,
			words INTEGER NOT NULL,
			letters INTEGER NOT NULL,
			PRIMARY KEY (run_id, letter)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ended_at ON runs(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_letter_counts_letter ON letter_counts(letter);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed run and its per-letter counts.
func (s *Store) InsertRun(ctx context.Context, run model.RunStats, letters []model.LetterCount) (int64, error) {
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

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, ended_at, tier, score, max_streak, max_combo, words_destroyed, letters_destroyed, powerups_destroyed, reveals, misses, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.Format(time.RFC3339Nano),
		run.EndedAt.Format(time.RFC3339Nano),
		run.Tier,
		run.Score,
		run.MaxStreak,
		run.MaxCombo,
		run.WordsDestroyed,
		run.LettersDestroyed,
		run.PowerupsDestroyed,
		run.Reveals,
		run.Misses,
		run.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(letters) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO letter_counts (run_id, letter, words, letters)
			 VALUES (?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, lc := range letters {
			if _, err := stmt.ExecContext(ctx, id, lc.Letter, lc.Words, lc.Letters); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// filterClause builds the WHERE body shared by the run queries. The Last
// filter is applied by the callers since it changes the query shape.
func filterClause(filter model.StatsFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Tier != "" {
		clauses = append(clauses, "tier = ?")
		args = append(args, filter.Tier)
	}
	if filter.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	return strings.Join(clauses, " AND "), args
}

// Totals aggregates lifetime counters over the filtered runs.
func (s *Store) Totals(ctx context.Context, filter model.StatsFilter) (model.Totals, error) {
	where, args := filterClause(filter)
	source := fmt.Sprintf(`SELECT * FROM runs WHERE %s`, where)
	if filter.Last > 0 {
		source += ` ORDER BY ended_at DESC LIMIT ?`
		args = append(args, filter.Last)
	}
	query := fmt.Sprintf(`SELECT COUNT(*),
		COALESCE(SUM(words_destroyed), 0),
		COALESCE(SUM(letters_destroyed), 0),
		COALESCE(SUM(powerups_destroyed), 0),
		COALESCE(SUM(reveals), 0),
		COALESCE(SUM(misses), 0),
		COALESCE(MAX(score), 0),
		COALESCE(MAX(max_streak), 0),
		COALESCE(MAX(max_combo), 0)
		FROM (%s)`, source)

	var totals model.Totals
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&totals.GamesPlayed,
		&totals.WordsDestroyed,
		&totals.LettersDestroyed,
		&totals.PowerupsDestroyed,
		&totals.Reveals,
		&totals.Misses,
		&totals.HighestScore,
		&totals.HighestStreak,
		&totals.HighestCombo,
	)
	if err != nil {
		return model.Totals{}, err
	}
	return totals, nil
}

// ListRuns returns run aggregates matching the filter, oldest first.
func (s *Store) ListRuns(ctx context.Context, filter model.StatsFilter) ([]model.RunAggregate, error) {
	where, args := filterClause(filter)
	query := fmt.Sprintf(`SELECT id, ended_at, tier, score, max_streak, max_combo, duration_ms
		FROM runs
		WHERE %s
		ORDER BY ended_at ASC`, where)
	if filter.Last > 0 {
		query = fmt.Sprintf(`SELECT * FROM (%s ORDER BY ended_at DESC LIMIT ?) ORDER BY ended_at ASC`,
			fmt.Sprintf(`SELECT id, ended_at, tier, score, max_streak, max_combo, duration_ms FROM runs WHERE %s`, where))
		args = append(args, filter.Last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunAggregate
	for rows.Next() {
		var agg model.RunAggregate
		var endedAt string
		if err := rows.Scan(&agg.RunID, &endedAt, &agg.Tier, &agg.Score, &agg.MaxStreak, &agg.MaxCombo, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		runs = append(runs, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// LetterCounts aggregates per-letter destruction counts over the filtered runs.
func (s *Store) LetterCounts(ctx context.Context, filter model.StatsFilter) ([]model.LetterCount, error) {
	where, args := filterClause(filter)
	source := fmt.Sprintf(`SELECT id FROM runs WHERE %s`, where)
	if filter.Last > 0 {
		source += ` ORDER BY ended_at DESC LIMIT ?`
		args = append(args, filter.Last)
	}
	query := fmt.Sprintf(`SELECT lc.letter, SUM(lc.words) AS words, SUM(lc.letters) AS letters
		FROM letter_counts lc
		JOIN (%s) r ON r.id = lc.run_id
		GROUP BY lc.letter
		ORDER BY lc.letter ASC`, source)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.LetterCount
	for rows.Next() {
		var lc model.LetterCount
		if err := rows.Scan(&lc.Letter, &lc.Words, &lc.Letters); err != nil {
			return nil, err
		}
		result = append(result, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
