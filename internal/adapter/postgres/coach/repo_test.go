package coach_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentoapp/talento-backend/internal/adapter/postgres/coach"
	"github.com/talentoapp/talento-backend/internal/adapter/postgres/testhelper"
	"github.com/talentoapp/talento-backend/internal/domain"
)

func TestRepo_Create(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := coach.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool, domain.UserRoleCoach)

	c := &domain.Coach{
		ID:              uuid.New(),
		UserID:          owner.ID,
		FullName:        "Luis Fernández",
		City:            "Bilbao",
		Nationality:     "España",
		ExperienceYears: 12,
		License:         "UEFA Pro",
		Specialty:       "Porteros",
		Phone:           "+34 600 111 222",
	}

	created, err := repo.Create(ctx, c)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	var fullName, license string
	var experience int
	err = pool.QueryRow(ctx,
		`SELECT full_name, license, experience_years FROM coaches WHERE user_id = $1`, owner.ID,
	).Scan(&fullName, &license, &experience)
	require.NoError(t, err)
	assert.Equal(t, "Luis Fernández", fullName)
	assert.Equal(t, "UEFA Pro", license)
	assert.Equal(t, 12, experience)
}

func TestRepo_Create_DuplicateUser(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := coach.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool, domain.UserRoleCoach)

	first := &domain.Coach{ID: uuid.New(), UserID: owner.ID, FullName: "Uno", City: "Madrid", Nationality: "España"}
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)

	second := &domain.Coach{ID: uuid.New(), UserID: owner.ID, FullName: "Dos", City: "Madrid", Nationality: "España"}
	_, err = repo.Create(ctx, second)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}
