package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentoapp/talento-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		Role:         role,
		PasswordHash: "$2a$10$test-hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedAdmin creates an admin identity with the given email (the importer's
// fallback author lookup is by exact email).
func SeedAdmin(t *testing.T, pool *pgxpool.Pool, email string) domain.User {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	admin := domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Admin",
		Role:         domain.UserRoleAdmin,
		PasswordHash: "$2a$10$test-hash-admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		admin.ID, admin.Email, admin.Name, string(admin.Role), admin.PasswordHash, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin insert user: %v", err)
	}

	return admin
}

// SeedOrganization creates an organization owned by the given user.
// Returns a filled domain.Organization.
func SeedOrganization(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, slug string) domain.Organization {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	org := domain.Organization{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Test Club " + suffix,
		Slug:      slug,
		City:      "Madrid",
		Type:      domain.OrganizationTypeClub,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO organizations (id, owner_id, name, slug, description, city, website, type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		org.ID, org.OwnerID, org.Name, org.Slug, org.Description, org.City, org.Website, string(org.Type), org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrganization insert: %v", err)
	}

	return org
}
