package domain

import (
	"time"

	"github.com/google/uuid"
)

// Opportunity is a published offer (job, tryout, scholarship, camp).
// AuthorID references the identity that owns the listing; bulk-imported
// opportunities fall back to the configured admin identity.
type Opportunity struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID
	Title        string
	Type         OpportunityType
	Level        CompetitionLevel
	City         string
	Country      string
	Description  string
	ContactEmail string
	Deadline     *time.Time
	SalaryMin    *float64
	SalaryMax    *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
