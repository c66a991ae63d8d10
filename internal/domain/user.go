package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identity. Imported players, coaches, and organization
// owners all get one; opportunities are authored by an existing identity.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
