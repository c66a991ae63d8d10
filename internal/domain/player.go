package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is a player profile attached to a user identity.
type Player struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	FullName     string
	BirthDate    time.Time
	City         string
	Country      string
	Position     string
	HeightCM     *int
	WeightKG     *int
	Phone        string
	CurrentLevel CompetitionLevel
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
