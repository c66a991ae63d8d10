package domain

// ImportKind identifies which entity type a bulk import file contains.
type ImportKind string

const (
	ImportKindPlayer       ImportKind = "PLAYER"
	ImportKindCoach        ImportKind = "COACH"
	ImportKindOrganization ImportKind = "ORGANIZATION"
	ImportKindOpportunity  ImportKind = "OPPORTUNITY"
)

func (k ImportKind) String() string { return string(k) }

func (k ImportKind) IsValid() bool {
	switch k {
	case ImportKindPlayer, ImportKindCoach, ImportKindOrganization, ImportKindOpportunity:
		return true
	}
	return false
}

// OpportunityType represents the kind of opportunity an organization publishes.
type OpportunityType string

const (
	OpportunityTypeJob         OpportunityType = "JOB"
	OpportunityTypeTryout      OpportunityType = "TRYOUT"
	OpportunityTypeScholarship OpportunityType = "SCHOLARSHIP"
	OpportunityTypeCamp        OpportunityType = "CAMP"
	OpportunityTypeOther       OpportunityType = "OTHER"
)

func (t OpportunityType) String() string { return string(t) }

func (t OpportunityType) IsValid() bool {
	switch t {
	case OpportunityTypeJob, OpportunityTypeTryout, OpportunityTypeScholarship,
		OpportunityTypeCamp, OpportunityTypeOther:
		return true
	}
	return false
}

// CompetitionLevel represents the level of play an entity belongs to.
type CompetitionLevel string

const (
	LevelAmateur CompetitionLevel = "AMATEUR"
	LevelYouth   CompetitionLevel = "YOUTH"
	LevelSemiPro CompetitionLevel = "SEMIPRO"
	LevelPro     CompetitionLevel = "PRO"
)

func (l CompetitionLevel) String() string { return string(l) }

func (l CompetitionLevel) IsValid() bool {
	switch l {
	case LevelAmateur, LevelYouth, LevelSemiPro, LevelPro:
		return true
	}
	return false
}

// OrganizationType categorizes an organization (free text in the CSV, closed set here).
type OrganizationType string

const (
	OrganizationTypeClub    OrganizationType = "CLUB"
	OrganizationTypeAcademy OrganizationType = "ACADEMY"
	OrganizationTypeAgency  OrganizationType = "AGENCY"
	OrganizationTypeOther   OrganizationType = "OTHER"
)

func (t OrganizationType) String() string { return string(t) }

func (t OrganizationType) IsValid() bool {
	switch t {
	case OrganizationTypeClub, OrganizationTypeAcademy, OrganizationTypeAgency, OrganizationTypeOther:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user identity.
type UserRole string

const (
	UserRolePlayer UserRole = "player"
	UserRoleCoach  UserRole = "coach"
	UserRoleClub   UserRole = "club"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRolePlayer, UserRoleCoach, UserRoleClub, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
