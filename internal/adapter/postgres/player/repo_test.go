package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentoapp/talento-backend/internal/adapter/postgres/player"
	"github.com/talentoapp/talento-backend/internal/adapter/postgres/testhelper"
	"github.com/talentoapp/talento-backend/internal/domain"
)

func TestRepo_CreateAndGetByUserID(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := player.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool, domain.UserRolePlayer)

	height := 182
	weight := 76
	p := &domain.Player{
		ID:           uuid.New(),
		UserID:       owner.ID,
		FullName:     "Ana García",
		BirthDate:    time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC),
		City:         "Valencia",
		Country:      "España",
		Position:     "Delantera",
		HeightCM:     &height,
		WeightKG:     &weight,
		Phone:        "+34 600 000 000",
		CurrentLevel: domain.LevelSemiPro,
	}

	created, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByUserID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Ana García", got.FullName)
	assert.Equal(t, domain.LevelSemiPro, got.CurrentLevel)
	require.NotNil(t, got.HeightCM)
	assert.Equal(t, 182, *got.HeightCM)
	require.NotNil(t, got.WeightKG)
	assert.Equal(t, 76, *got.WeightKG)
	assert.True(t, got.BirthDate.Equal(p.BirthDate))
}

func TestRepo_GetByUserID_NotFound(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := player.New(pool)

	_, err := repo.GetByUserID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Create_DuplicateUser(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := player.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool, domain.UserRolePlayer)

	first := &domain.Player{
		ID:           uuid.New(),
		UserID:       owner.ID,
		FullName:     "Uno",
		BirthDate:    time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		City:         "Madrid",
		Country:      "España",
		CurrentLevel: domain.LevelAmateur,
	}
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)

	second := &domain.Player{
		ID:           uuid.New(),
		UserID:       owner.ID,
		FullName:     "Dos",
		BirthDate:    time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		City:         "Madrid",
		Country:      "España",
		CurrentLevel: domain.LevelAmateur,
	}
	_, err = repo.Create(ctx, second)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Create_BadLevelViolatesCheck(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := player.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool, domain.UserRolePlayer)

	p := &domain.Player{
		ID:           uuid.New(),
		UserID:       owner.ID,
		FullName:     "Mal Nivel",
		BirthDate:    time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		City:         "Madrid",
		Country:      "España",
		CurrentLevel: domain.CompetitionLevel("GALACTIC"),
	}
	_, err := repo.Create(ctx, p)
	require.ErrorIs(t, err, domain.ErrValidation)
}
