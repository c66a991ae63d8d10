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

// Expected player columns: email, nombre_completo, fecha_nacimiento,
// ciudad, pais, posicion, altura, peso, telefono, nivel_actual.
func (s *Service) importPlayers(ctx context.Context, rows []csvtext.Row) (*Report, error) {
	report := &Report{}
	for _, row := range rows {
		report.add(s.importPlayerRow(ctx, row))
	}
	return report, nil
}

func (s *Service) importPlayerRow(ctx context.Context, row csvtext.Row) RowOutcome {
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

	name := fieldOrDefault(row, "nombre_completo", "Usuario")

	// A present but unrecognizable level falls back to AMATEUR; only the
	// email field can reject a player row.
	level := domain.LevelAmateur
	if l, ok := domain.NormalizeLevel(row.Get("nivel_actual")); ok {
		level = l
	}

	identity, err := newIdentity(email, name, domain.UserRolePlayer)
	if err != nil {
		return rejected(row, err.Error())
	}

	now := time.Now().UTC()
	player := &domain.Player{
		ID:           uuid.New(),
		UserID:       identity.ID,
		FullName:     name,
		BirthDate:    parseDateOrDefault(row.Get("fecha_nacimiento")),
		City:         fieldOrDefault(row, "ciudad", "Madrid"),
		Country:      fieldOrDefault(row, "pais", "España"),
		Position:     strings.TrimSpace(row.Get("posicion")),
		HeightCM:     parseIntPtr(row.Get("altura")),
		WeightKG:     parseIntPtr(row.Get("peso")),
		Phone:        strings.TrimSpace(row.Get("telefono")),
		CurrentLevel: level,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.Create(txCtx, identity); err != nil {
			return fmt.Errorf("create identity: %w", err)
		}
		if _, err := s.players.Create(txCtx, player); err != nil {
			return fmt.Errorf("create player: %w", err)
		}
		return nil
	})
	if txErr != nil {
		// A concurrent job may win the email race between the existence
		// check and the insert; the unique constraint reports it here.
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			return skipped(row, "Email ya registrado")
		}
		return rejected(row, txErr.Error())
	}

	return created(row)
}
