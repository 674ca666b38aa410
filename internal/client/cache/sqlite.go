// Package cache keeps a local sqlite snapshot of the last successful
// history fetch, so history can still be browsed (and exported locally)
// when the backend is unreachable. The snapshot is replaced wholesale on
// every refresh; it is never merged.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nutriapp/nutricli/internal/client/models"
	"github.com/nutriapp/nutricli/internal/dbx"

	_ "modernc.org/sqlite"
)

const schema = `
create table if not exists meals (
	id text primary key,
	user_id text not null default '',
	created_at text not null,
	img_url text not null default '',
	recommendation text not null default '',
	total_calories real not null default 0,
	total_protein_g real not null default 0,
	total_carbs_g real not null default 0,
	total_fat_g real not null default 0
);
create table if not exists sync_state (
	k text primary key,
	v text not null
);
`

// Open opens (creating if needed) the cache database at path.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init cache schema: %w", err)
	}
	return db, nil
}

// Repository is the meal snapshot store.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Replace swaps the snapshot for the given meal list in one transaction
// and records the sync instant.
func (r *Repository) Replace(ctx context.Context, meals []models.Meal, syncedAt time.Time) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `delete from meals`); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
		for _, m := range meals {
			_, err := tx.ExecContext(ctx, `
				insert into meals
					(id, user_id, created_at, img_url, recommendation,
					 total_calories, total_protein_g, total_carbs_g, total_fat_g)
				values (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				m.ID, m.UserID, m.CreatedAt.Format(time.RFC3339), m.ImageURL, m.Recommendation,
				m.TotalCalories.Float64(), m.TotalProteinG.Float64(),
				m.TotalCarbsG.Float64(), m.TotalFatG.Float64())
			if err != nil {
				return fmt.Errorf("failed to insert meal %s: %w", m.ID, err)
			}
		}
		_, err := tx.ExecContext(ctx, `
			insert into sync_state (k, v) values ('synced_at', ?)
			on conflict(k) do update set v = excluded.v`,
			syncedAt.Format(time.RFC3339))
		return err
	})
}

// All returns the snapshot, newest first.
func (r *Repository) All(ctx context.Context) ([]models.Meal, error) {
	rows, err := r.db.QueryContext(ctx, `
		select id, user_id, created_at, img_url, recommendation,
		       total_calories, total_protein_g, total_carbs_g, total_fat_g
		from meals order by created_at desc`)
	if err != nil {
		return nil, fmt.Errorf("failed to select snapshot: %w", err)
	}
	defer rows.Close()

	var result []models.Meal
	for rows.Next() {
		var (
			m                       models.Meal
			created                 string
			cal, protein, carbs, fat float64
		)
		if err := rows.Scan(&m.ID, &m.UserID, &created, &m.ImageURL, &m.Recommendation,
			&cal, &protein, &carbs, &fat); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("corrupt created_at for meal %s: %w", m.ID, err)
		}
		m.CreatedAt = models.Timestamp{Time: ts}
		m.TotalCalories = models.FlexFloat(cal)
		m.TotalProteinG = models.FlexFloat(protein)
		m.TotalCarbsG = models.FlexFloat(carbs)
		m.TotalFatG = models.FlexFloat(fat)
		result = append(result, m)
	}
	return result, rows.Err()
}

// Delete removes one meal from the snapshot. Missing ids are not an
// error: the snapshot may simply predate the meal.
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `delete from meals where id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meal %s: %w", id, err)
	}
	return nil
}

// SyncedAt reports when the snapshot was last replaced; the zero time
// means never.
func (r *Repository) SyncedAt(ctx context.Context) (time.Time, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `select v from sync_state where k = 'synced_at'`).Scan(&v)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, v)
}
