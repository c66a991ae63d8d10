// Package opportunity implements the Opportunity repository using PostgreSQL.
package opportunity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/talentoapp/talento-backend/internal/adapter/postgres"
	"github.com/talentoapp/talento-backend/internal/domain"
)

const table = "opportunities"

var columns = []string{
	"id", "author_id", "title", "type", "level", "city", "country", "description",
	"contact_email", "deadline", "salary_min", "salary_max", "created_at", "updated_at",
}

// Repo provides opportunity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new opportunity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new opportunity and returns the persisted domain.Opportunity.
func (r *Repo) Create(ctx context.Context, o *domain.Opportunity) (*domain.Opportunity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			o.ID, o.AuthorID, o.Title, o.Type.String(), o.Level.String(), o.City,
			o.Country, o.Description, o.ContactEmail, o.Deadline, o.SalaryMin,
			o.SalaryMax, now, now,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "opportunity", o.ID.String())
	}

	created := *o
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "opportunity", o.ID.String())
	}

	return &created, nil
}

// CountByAuthor returns how many opportunities the given identity has published.
func (r *Repo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where("author_id = ?", authorID).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "opportunity", authorID.String())
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "opportunity", authorID.String())
	}

	return n, nil
}
