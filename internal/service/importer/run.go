package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/talentoapp/talento-backend/internal/csvtext"
	"github.com/talentoapp/talento-backend/internal/domain"
)

// DefaultMaxRows caps the number of data rows per job when the config
// leaves ImportConfig.MaxRows unset.
const DefaultMaxRows = 1000

// Run executes one import job: tokenize, map, dispatch to the importer for
// kind, aggregate. Job-level failures (empty file, row cap, unknown kind,
// missing fallback author) return a *domain.ValidationError before any row
// is touched; row-level failures only ever land in the report.
//
// Entities are created incrementally. There is no job-wide transaction: a
// crash mid-job leaves every already-imported row in place.
func (s *Service) Run(ctx context.Context, kind domain.ImportKind, fileText string) (*Report, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("type", "tipo de importación desconocido")
	}

	records, err := csvtext.Tokenize(fileText)
	if err != nil {
		return nil, domain.NewValidationError("file", "archivo CSV vacío o inválido")
	}

	rows := csvtext.MapRows(records)
	if len(rows) == 0 {
		return nil, domain.NewValidationError("file", "archivo CSV vacío o inválido")
	}

	maxRows := s.cfg.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	if len(rows) > maxRows {
		return nil, domain.NewValidationError("file",
			fmt.Sprintf("el archivo supera el máximo de %d filas", maxRows))
	}

	var report *Report
	switch kind {
	case domain.ImportKindPlayer:
		report, err = s.importPlayers(ctx, rows)
	case domain.ImportKindCoach:
		report, err = s.importCoaches(ctx, rows)
	case domain.ImportKindOrganization:
		report, err = s.importOrganizations(ctx, rows)
	case domain.ImportKindOpportunity:
		report, err = s.importOpportunities(ctx, rows)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "import finished",
		slog.String("kind", kind.String()),
		slog.Int("rows", len(rows)),
		slog.Int("created", report.Success),
		slog.Int("failed", report.Errors),
	)

	return report, nil
}
