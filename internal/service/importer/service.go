// Package importer implements the bulk CSV import engine: tokenized file
// text goes in, per-row outcomes and a final report come out. Rows are
// processed strictly in order, one at a time; a bad row never aborts the
// job, and an already-created row is never rolled back by a later failure.
package importer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentoapp/talento-backend/internal/config"
	"github.com/talentoapp/talento-backend/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type playerRepo interface {
	Create(ctx context.Context, p *domain.Player) (*domain.Player, error)
}

type coachRepo interface {
	Create(ctx context.Context, c *domain.Coach) (*domain.Coach, error)
}

type organizationRepo interface {
	Create(ctx context.Context, o *domain.Organization) (*domain.Organization, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

type opportunityRepo interface {
	Create(ctx context.Context, o *domain.Opportunity) (*domain.Opportunity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs bulk imports. All persistence goes through the injected
// repositories; the service itself holds no state between jobs.
type Service struct {
	users         userRepo
	players       playerRepo
	coaches       coachRepo
	organizations organizationRepo
	opportunities opportunityRepo
	tx            txManager
	cfg           config.ImportConfig
	log           *slog.Logger
}

// NewService creates a new import service.
func NewService(
	log *slog.Logger,
	cfg config.ImportConfig,
	users userRepo,
	players playerRepo,
	coaches coachRepo,
	organizations organizationRepo,
	opportunities opportunityRepo,
	tx txManager,
) *Service {
	return &Service{
		users:         users,
		players:       players,
		coaches:       coaches,
		organizations: organizations,
		opportunities: opportunities,
		tx:            tx,
		cfg:           cfg,
		log:           log.With("service", "importer"),
	}
}

// newIdentity builds an account for an imported row. The generated password
// is random and bcrypt-hashed; the production flow sends a reset email.
func newIdentity(email, name string, role domain.UserRole) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
	}, nil
}
