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

// Expected organization columns: email_responsable, nombre_club,
// descripcion, ciudad, website, tipo.
func (s *Service) importOrganizations(ctx context.Context, rows []csvtext.Row) (*Report, error) {
	report := &Report{}
	for _, row := range rows {
		report.add(s.importOrganizationRow(ctx, row))
	}
	return report, nil
}

func (s *Service) importOrganizationRow(ctx context.Context, row csvtext.Row) RowOutcome {
	email := strings.TrimSpace(row.Get("email_responsable"))
	if !strings.Contains(email, "@") {
		return rejected(row, "Email del responsable inválido")
	}

	name := fieldOrDefault(row, "nombre_club", "Club Importado")

	// The responsible's account is reused when it already exists; only the
	// organization itself is new in that case.
	ownerIsNew := false
	owner, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		owner, err = newIdentity(email, name, domain.UserRoleClub)
		if err != nil {
			return rejected(row, err.Error())
		}
		ownerIsNew = true
	case err != nil:
		return rejected(row, err.Error())
	}

	slug, err := s.uniqueSlug(ctx, name)
	if err != nil {
		return rejected(row, err.Error())
	}

	orgType := domain.OrganizationTypeClub
	if t := domain.OrganizationType(strings.ToUpper(strings.TrimSpace(row.Get("tipo")))); t.IsValid() {
		orgType = t
	}

	var description *string
	if d := strings.TrimSpace(row.Get("descripcion")); d != "" {
		description = &d
	}

	now := time.Now().UTC()
	org := &domain.Organization{
		ID:          uuid.New(),
		OwnerID:     owner.ID,
		Name:        name,
		Slug:        slug,
		Description: description,
		City:        fieldOrDefault(row, "ciudad", "Madrid"),
		Website:     strings.TrimSpace(row.Get("website")),
		Type:        orgType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if ownerIsNew {
			if _, err := s.users.Create(txCtx, owner); err != nil {
				return fmt.Errorf("create owner: %w", err)
			}
		}
		if _, err := s.organizations.Create(txCtx, org); err != nil {
			return fmt.Errorf("create organization: %w", err)
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
