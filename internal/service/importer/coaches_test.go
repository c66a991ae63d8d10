package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentoapp/talento-backend/internal/domain"
)

func TestImportCoaches_Defaults(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService(defaultCfg())

	var captured *domain.Coach
	deps.coaches.CreateFunc = func(_ context.Context, c *domain.Coach) (*domain.Coach, error) {
		captured = c
		return c, nil
	}

	csv := "email\ncoach@example.com\n"
	report, err := svc.Run(context.Background(), domain.ImportKindCoach, csv)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Success)

	require.NotNil(t, captured)
	assert.Equal(t, "Entrenador", captured.FullName)
	assert.Equal(t, "Madrid", captured.City)
	assert.Equal(t, "España", captured.Nationality)
	assert.Equal(t, 0, captured.ExperienceYears)
}

func TestImportCoaches_FullRow(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService(defaultCfg())

	var captured *domain.Coach
	deps.coaches.CreateFunc = func(_ context.Context, c *domain.Coach) (*domain.Coach, error) {
		captured = c
		return c, nil
	}
	var identity *domain.User
	deps.users.CreateFunc = func(_ context.Context, u *domain.User) (*domain.User, error) {
		identity = u
		return u, nil
	}

	csv := "email,nombre_completo,ciudad,pais,experiencia_años,licencia,especialidad,telefono\n" +
		"mister@example.com,Paco Ruiz,Valencia,España,12,UEFA Pro,Porteros,600333444\n"
	report, err := svc.Run(context.Background(), domain.ImportKindCoach, csv)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Success)

	require.NotNil(t, captured)
	assert.Equal(t, "Paco Ruiz", captured.FullName)
	assert.Equal(t, "Valencia", captured.City)
	assert.Equal(t, 12, captured.ExperienceYears)
	assert.Equal(t, "UEFA Pro", captured.License)
	assert.Equal(t, "Porteros", captured.Specialty)

	require.NotNil(t, identity)
	assert.Equal(t, domain.UserRoleCoach, identity.Role)
	assert.Equal(t, captured.UserID, identity.ID)
}

func TestImportCoaches_BadExperienceDefaultsToZero(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService(defaultCfg())

	var captured *domain.Coach
	deps.coaches.CreateFunc = func(_ context.Context, c *domain.Coach) (*domain.Coach, error) {
		captured = c
		return c, nil
	}

	csv := "email,experiencia_años\ncoach@example.com,muchos\n"
	report, err := svc.Run(context.Background(), domain.ImportKindCoach, csv)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Success)
	require.NotNil(t, captured)
	assert.Equal(t, 0, captured.ExperienceYears)
}

func TestImportCoaches_InvalidEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(defaultCfg())

	csv := "email,nombre_completo\nsin-arroba,Paco\n"
	report, err := svc.Run(context.Background(), domain.ImportKindCoach, csv)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Success)
	require.Len(t, report.Details, 1)
	assert.Equal(t, "Fila 2: Email inválido", report.Details[0])
}

func TestImportCoaches_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService(defaultCfg())

	store := newUserStore()
	deps.users.GetByEmailFunc = store.getByEmail
	deps.users.CreateFunc = store.create

	csv := "email\nmister@example.com\nmister@example.com\n"
	report, err := svc.Run(context.Background(), domain.ImportKindCoach, csv)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Success)
	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, "Fila 3: Email ya registrado", report.Details[0])
}
