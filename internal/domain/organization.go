package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a club, academy, or agency. Slug is unique across all
// organizations and derived from Name at creation time.
type Organization struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Slug        string
	Description *string
	City        string
	Website     string
	Type        OrganizationType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
