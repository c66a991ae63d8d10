// Package organization implements the Organization repository using PostgreSQL.
package organization

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/talentoapp/talento-backend/internal/adapter/postgres"
	"github.com/talentoapp/talento-backend/internal/domain"
)

const table = "organizations"

var columns = []string{
	"id", "owner_id", "name", "slug", "description", "city", "website", "type",
	"created_at", "updated_at",
}

// Repo provides organization persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new organization repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new organization and returns the persisted domain.Organization.
func (r *Repo) Create(ctx context.Context, o *domain.Organization) (*domain.Organization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			o.ID, o.OwnerID, o.Name, o.Slug, o.Description, o.City, o.Website,
			o.Type.String(), now, now,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "organization", o.Slug)
	}

	created := *o
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "organization", o.Slug)
	}

	return &created, nil
}

// ExistsBySlug reports whether an organization already holds the given slug.
func (r *Repo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where("slug = ?", slug).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "organization", slug)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "organization", slug)
	}

	return exists, nil
}

// GetBySlug returns an organization by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("slug = ?", slug).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "organization", slug)
	}

	var o domain.Organization
	err = q.QueryRow(ctx, sql, args...).Scan(
		&o.ID, &o.OwnerID, &o.Name, &o.Slug, &o.Description, &o.City, &o.Website,
		&o.Type, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "organization", slug)
	}

	return &o, nil
}
