package importer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentoapp/talento-backend/internal/csvtext"
	"github.com/talentoapp/talento-backend/internal/domain"
)

// Expected opportunity columns: titulo, tipo, nivel, ciudad, pais,
// descripcion, email_contacto, fecha_limite, salario_min, salario_max.
//
// Imported opportunities are authored by the admin account. Without one the
// whole job fails before any row is processed.
func (s *Service) importOpportunities(ctx context.Context, rows []csvtext.Row) (*Report, error) {
	admin, err := s.users.GetByEmail(ctx, s.cfg.AdminEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("admin",
				"no existe una cuenta de administrador para asignar las ofertas")
		}
		return nil, err
	}

	report := &Report{}
	for _, row := range rows {
		report.add(s.importOpportunityRow(ctx, row, admin))
	}
	return report, nil
}

func (s *Service) importOpportunityRow(ctx context.Context, row csvtext.Row, admin *domain.User) RowOutcome {
	title := strings.TrimSpace(row.Get("titulo"))
	if title == "" {
		return rejected(row, "Título obligatorio")
	}

	oppType, ok := domain.NormalizeOpportunityType(row.Get("tipo"))
	if !ok {
		return rejected(row, "Tipo de oferta inválido")
	}

	level, ok := domain.NormalizeLevel(row.Get("nivel"))
	if !ok {
		return rejected(row, "Nivel inválido")
	}

	contact := strings.TrimSpace(row.Get("email_contacto"))
	if !strings.Contains(contact, "@") {
		contact = admin.Email
	}

	now := time.Now().UTC()
	opp := &domain.Opportunity{
		ID:           uuid.New(),
		AuthorID:     admin.ID,
		Title:        title,
		Type:         oppType,
		Level:        level,
		City:         fieldOrDefault(row, "ciudad", "Madrid"),
		Country:      fieldOrDefault(row, "pais", "España"),
		Description:  fieldOrDefault(row, "descripcion", "Sin descripción"),
		ContactEmail: contact,
		Deadline:     parseDatePtr(row.Get("fecha_limite")),
		SalaryMin:    parseFloatPtr(row.Get("salario_min")),
		SalaryMax:    parseFloatPtr(row.Get("salario_max")),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.opportunities.Create(ctx, opp); err != nil {
		return rejected(row, err.Error())
	}

	return created(row)
}
