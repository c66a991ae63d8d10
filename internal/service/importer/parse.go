package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/talentoapp/talento-backend/internal/csvtext"
)

// defaultBirthDate stands in for a blank or unparsable birth date. A bad
// date never rejects a row.
var defaultBirthDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// dateLayouts covers the formats spreadsheets commonly export.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDateOrDefault(raw string) time.Time {
	if t, ok := parseDate(raw); ok {
		return t
	}
	return defaultBirthDate
}

func parseDatePtr(raw string) *time.Time {
	if t, ok := parseDate(raw); ok {
		return &t
	}
	return nil
}

// parseIntPtr returns nil on blank or unparsable input; a bad number never
// rejects a row.
func parseIntPtr(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

func parseIntOrDefault(raw string, fallback int) int {
	if n := parseIntPtr(raw); n != nil {
		return *n
	}
	return fallback
}

// parseFloatPtr accepts both dot and comma decimal separators.
func parseFloatPtr(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f, err = strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			return nil
		}
	}
	return &f
}

// fieldOrDefault returns the trimmed field value, or fallback when blank.
func fieldOrDefault(row csvtext.Row, name, fallback string) string {
	v := strings.TrimSpace(row.Get(name))
	if v == "" {
		return fallback
	}
	return v
}
