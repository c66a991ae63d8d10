package domain

import (
	"strings"
)

// opportunityTypeAliases maps free-text type values to the closed enum.
// Exact match only — a value that is not a known alias is not a type.
var opportunityTypeAliases = map[string]OpportunityType{
	"trabajo":     OpportunityTypeJob,
	"empleo":      OpportunityTypeJob,
	"job":         OpportunityTypeJob,
	"oferta":      OpportunityTypeJob,
	"tryout":      OpportunityTypeTryout,
	"prueba":      OpportunityTypeTryout,
	"pruebas":     OpportunityTypeTryout,
	"trial":       OpportunityTypeTryout,
	"beca":        OpportunityTypeScholarship,
	"scholarship": OpportunityTypeScholarship,
	"campus":      OpportunityTypeCamp,
	"camp":        OpportunityTypeCamp,
	"clinic":      OpportunityTypeCamp,
	"otro":        OpportunityTypeOther,
	"otra":        OpportunityTypeOther,
	"other":       OpportunityTypeOther,
}

// NormalizeOpportunityType maps a free-text type value to an OpportunityType.
// Lookup is exact (after lowercasing and trimming); there is no substring
// fallback. ok is false when the value is not recognized.
func NormalizeOpportunityType(raw string) (OpportunityType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", false
	}
	t, ok := opportunityTypeAliases[normalized]
	return t, ok
}

// levelAlias is one substring rule for NormalizeLevel. Order matters:
// "semi" must be checked before "pro" so "semiprofesional" does not
// resolve to PRO.
type levelAlias struct {
	key   string
	level CompetitionLevel
}

var levelAliases = []levelAlias{
	{"semiprofesional", LevelSemiPro},
	{"semi", LevelSemiPro},
	{"profesional", LevelPro},
	{"pro", LevelPro},
	{"juvenil", LevelYouth},
	{"formacion", LevelYouth},
	{"formación", LevelYouth},
	{"cadete", LevelYouth},
	{"infantil", LevelYouth},
	{"alevin", LevelYouth},
	{"alevín", LevelYouth},
	{"benjamin", LevelYouth},
	{"benjamín", LevelYouth},
	{"academia", LevelYouth},
	{"cantera", LevelYouth},
	{"youth", LevelYouth},
	{"sub-", LevelYouth},
	{"sub ", LevelYouth},
	{"aficionado", LevelAmateur},
	{"amateur", LevelAmateur},
	{"regional", LevelAmateur},
}

// topTierMarkers distinguish first-division strings in the división heuristic.
var topTierMarkers = []string{
	"1ª", "1a", "primera", "la liga", "laliga", "premier",
	"serie a", "bundesliga", "ligue 1", "eredivisie",
}

// NormalizeLevel maps a free-text level value to a CompetitionLevel.
//
// Resolution order:
//  1. the value already is a canonical level (case-insensitive);
//  2. first matching substring alias, in fixed table order;
//  3. strings mentioning a división resolve to PRO when a top-tier marker
//     is present, SEMIPRO otherwise.
//
// ok is false when nothing matches.
func NormalizeLevel(raw string) (CompetitionLevel, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", false
	}

	if l := CompetitionLevel(strings.ToUpper(normalized)); l.IsValid() {
		return l, true
	}

	for _, alias := range levelAliases {
		if strings.Contains(normalized, alias.key) {
			return alias.level, true
		}
	}

	if strings.Contains(normalized, "division") || strings.Contains(normalized, "división") {
		for _, marker := range topTierMarkers {
			if strings.Contains(normalized, marker) {
				return LevelPro, true
			}
		}
		return LevelSemiPro, true
	}

	return "", false
}

// Slugify derives a URL-safe identifier from a display name:
// lowercase, every run of non-[a-z0-9] characters collapsed to a single
// hyphen, leading/trailing hyphens trimmed.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	prevHyphen := false
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
