package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/pathplanner/internal/progress"
)

// ProgressRepo implements progress.Repo on the progress_entries table.
// Weeks with no topics are stored as a single row with a NULL topic.
type ProgressRepo struct {
	db *sql.DB
}

var _ progress.Repo = (*ProgressRepo)(nil)

func (r *ProgressRepo) Load(ctx context.Context) (progress.Store, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT week_key, topic, completed FROM progress_entries`)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	s := progress.Store{}
	for rows.Next() {
		var (
			key   string
			topic sql.NullString
			done  bool
		)
		if err := rows.Scan(&key, &topic, &done); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		if s[key] == nil {
			s[key] = make(map[string]bool)
		}
		if topic.Valid {
			s[key][topic.String] = done
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}
	return s, nil
}

// Save replaces every stored entry in one transaction.
func (r *ProgressRepo) Save(ctx context.Context, s progress.Store) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM progress_entries`); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO progress_entries (week_key, topic, completed) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for key, entries := range s {
		if len(entries) == 0 {
			if _, err := stmt.ExecContext(ctx, key, nil, false); err != nil {
				return fmt.Errorf("insert %s: %w", key, err)
			}
			continue
		}
		for topic, done := range entries {
			if _, err := stmt.ExecContext(ctx, key, topic, done); err != nil {
				return fmt.Errorf("insert %s/%s: %w", key, topic, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit progress: %w", err)
	}
	return nil
}
