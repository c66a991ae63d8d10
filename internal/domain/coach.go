package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coach is a coach profile attached to a user identity.
type Coach struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	FullName        string
	City            string
	Nationality     string
	ExperienceYears int
	License         string
	Specialty       string
	Phone           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
