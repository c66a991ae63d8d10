package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportKind_IsValid(t *testing.T) {
	t.Parallel()

	for _, k := range []ImportKind{ImportKindPlayer, ImportKindCoach, ImportKindOrganization, ImportKindOpportunity} {
		assert.True(t, k.IsValid(), "kind %s", k)
	}
	assert.False(t, ImportKind("").IsValid())
	assert.False(t, ImportKind("player").IsValid(), "kinds are upper-case")
	assert.False(t, ImportKind("TEAM").IsValid())
}

func TestCompetitionLevel_IsValid(t *testing.T) {
	t.Parallel()

	for _, l := range []CompetitionLevel{LevelAmateur, LevelYouth, LevelSemiPro, LevelPro} {
		assert.True(t, l.IsValid(), "level %s", l)
	}
	assert.False(t, CompetitionLevel("GALACTIC").IsValid())
	assert.False(t, CompetitionLevel("pro").IsValid(), "levels are upper-case")
}

func TestOpportunityType_IsValid(t *testing.T) {
	t.Parallel()

	for _, ot := range []OpportunityType{OpportunityTypeJob, OpportunityTypeTryout, OpportunityTypeScholarship, OpportunityTypeCamp, OpportunityTypeOther} {
		assert.True(t, ot.IsValid(), "type %s", ot)
	}
	assert.False(t, OpportunityType("INTERNSHIP").IsValid())
}

func TestUserRole(t *testing.T) {
	t.Parallel()

	for _, r := range []UserRole{UserRolePlayer, UserRoleCoach, UserRoleClub, UserRoleAdmin} {
		assert.True(t, r.IsValid(), "role %s", r)
	}
	assert.False(t, UserRole("superuser").IsValid())

	assert.True(t, UserRoleAdmin.IsAdmin())
	assert.False(t, UserRolePlayer.IsAdmin())
}
