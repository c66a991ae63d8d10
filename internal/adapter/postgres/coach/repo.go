// Package coach implements the Coach repository using PostgreSQL.
package coach

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/talentoapp/talento-backend/internal/adapter/postgres"
	"github.com/talentoapp/talento-backend/internal/domain"
)

const table = "coaches"

var columns = []string{
	"id", "user_id", "full_name", "city", "nationality", "experience_years",
	"license", "specialty", "phone", "created_at", "updated_at",
}

// Repo provides coach persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new coach repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new coach profile and returns the persisted domain.Coach.
func (r *Repo) Create(ctx context.Context, c *domain.Coach) (*domain.Coach, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			c.ID, c.UserID, c.FullName, c.City, c.Nationality, c.ExperienceYears,
			c.License, c.Specialty, c.Phone, now, now,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "coach", c.ID.String())
	}

	created := *c
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "coach", c.ID.String())
	}

	return &created, nil
}
