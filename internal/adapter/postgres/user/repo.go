// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/talentoapp/talento-backend/internal/adapter/postgres"
	"github.com/talentoapp/talento-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "name", "role", "password_hash", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	var u domain.User
	err = q.QueryRow(ctx, sql, args...).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Name, u.Role.String(), u.PasswordHash, now, now).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	created := *u
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	return &created, nil
}
