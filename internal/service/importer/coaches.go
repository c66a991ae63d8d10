package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentoapp/talento-backend/internal/csvtext"
	"github.com/talentoapp/talento-backend/internal/domain"
)

// Expected coach columns: email, nombre_completo, ciudad, pais,
// experiencia_años, licencia, especialidad, telefono.
func (s *Service) importCoaches(ctx context.Context, rows []csvtext.Row) (*Report, error) {
	report := &Report{}
	for _, row := range rows {
		report.add(s.importCoachRow(ctx, row))
	}
	return report, nil
}

func (s *Service) importCoachRow(ctx context.Context, row csvtext.Row) RowOutcome {
	email := strings.TrimSpace(row.Get("email"))
	if !strings.Contains(email, "@") {
		return rejected(row, "Email inválido")
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return skipped(row, "Email ya registrado")
	case !errors.Is(err, domain.ErrNotFound):
		return rejected(row, err.Error())
	}

	name := fieldOrDefault(row, "nombre_completo", "Entrenador")

	identity, err := newIdentity(email, name, domain.UserRoleCoach)
	if err != nil {
		return rejected(row, err.Error())
	}

	now := time.Now().UTC()
	coach := &domain.Coach{
		ID:              uuid.New(),
		UserID:          identity.ID,
		FullName:        name,
		City:            fieldOrDefault(row, "ciudad", "Madrid"),
		Nationality:     fieldOrDefault(row, "pais", "España"),
		ExperienceYears: parseIntOrDefault(row.Get("experiencia_años"), 0),
		License:         strings.TrimSpace(row.Get("licencia")),
		Specialty:       strings.TrimSpace(row.Get("especialidad")),
		Phone:           strings.TrimSpace(row.Get("telefono")),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.Create(txCtx, identity); err != nil {
			return fmt.Errorf("create identity: %w", err)
		}
		if _, err := s.coaches.Create(txCtx, coach); err != nil {
			return fmt.Errorf("create coach: %w", err)
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			return skipped(row, "Email ya registrado")
		}
		return rejected(row, txErr.Error())
	}

	return created(row)
}
