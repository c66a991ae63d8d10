package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentoapp/talento-backend/internal/adapter/postgres/testhelper"
	"github.com/talentoapp/talento-backend/internal/adapter/postgres/user"
	"github.com/talentoapp/talento-backend/internal/domain"
)

func TestRepo_CreateAndGetByEmail(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	u := &domain.User{
		ID:           uuid.New(),
		Email:        "repo-create-" + uuid.NewString()[:8] + "@example.com",
		Name:         "Ana",
		Role:         domain.UserRolePlayer,
		PasswordHash: "$2a$10$hash",
	}

	created, err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, u.ID, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), created.CreatedAt, time.Minute)

	got, err := repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Name, got.Name)
	assert.Equal(t, domain.UserRolePlayer, got.Role)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)
}

func TestRepo_GetByEmail_NotFound(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	email := "repo-dup-" + uuid.NewString()[:8] + "@example.com"
	first := &domain.User{ID: uuid.New(), Email: email, Name: "Uno", Role: domain.UserRoleCoach, PasswordHash: "h"}
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)

	second := &domain.User{ID: uuid.New(), Email: email, Name: "Dos", Role: domain.UserRoleCoach, PasswordHash: "h"}
	_, err = repo.Create(ctx, second)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}
