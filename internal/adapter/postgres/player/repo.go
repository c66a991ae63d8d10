// Package player implements the Player repository using PostgreSQL.
package player

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/talentoapp/talento-backend/internal/adapter/postgres"
	"github.com/talentoapp/talento-backend/internal/domain"
)

const table = "players"

var columns = []string{
	"id", "user_id", "full_name", "birth_date", "city", "country", "position",
	"height_cm", "weight_kg", "phone", "current_level", "created_at", "updated_at",
}

// Repo provides player persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new player repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new player profile and returns the persisted domain.Player.
func (r *Repo) Create(ctx context.Context, p *domain.Player) (*domain.Player, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			p.ID, p.UserID, p.FullName, p.BirthDate, p.City, p.Country, p.Position,
			p.HeightCM, p.WeightKG, p.Phone, p.CurrentLevel.String(), now, now,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "player", p.ID.String())
	}

	created := *p
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "player", p.ID.String())
	}

	return &created, nil
}

// GetByUserID returns the player profile attached to the given identity.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Player, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "player", userID.String())
	}

	var p domain.Player
	err = q.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.BirthDate, &p.City, &p.Country, &p.Position,
		&p.HeightCM, &p.WeightKG, &p.Phone, &p.CurrentLevel, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "player", userID.String())
	}

	return &p, nil
}
