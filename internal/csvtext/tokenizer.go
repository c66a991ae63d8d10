// Package csvtext turns human-exported CSV text into header-keyed rows.
// Pure functions: text in, rows out. No database or I/O dependencies.
//
// The parser is deliberately best-effort, tuned to spreadsheet exports:
// it accepts both `,` and `;` delimiters, mixed `"`/`'` quoting, a leading
// BOM, and any line-ending convention. It is not an RFC 4180 parser; an
// unquoted field containing the delimiter character will mis-split.
package csvtext

import (
	"errors"
	"strings"
)

// ErrNoData is returned when the input has no header row followed by at
// least one data row.
var ErrNoData = errors.New("csv: need a header row and at least one data row")

// Tokenize splits raw file text into rows of fields.
//
// Steps:
//  1. strip a leading UTF-8 BOM; normalize \r\n and lone \r to \n;
//  2. drop blank lines (empty after trimming);
//  3. pick the delimiter from the header line: `;` if present, else `,`;
//  4. split each line, quote-aware when the line contains `"` or `'`.
func Tokenize(text string) ([][]string, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return nil, ErrNoData
	}

	delim := byte(',')
	if strings.ContainsRune(lines[0], ';') {
		delim = ';'
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, splitLine(line, delim))
	}

	return rows, nil
}

// splitLine tokenizes one line. Lines without quote characters split on the
// delimiter directly; otherwise a quote-aware scan treats the delimiter as a
// separator only outside quotes and strips the surrounding quote characters.
func splitLine(line string, delim byte) []string {
	if !strings.ContainsAny(line, `"'`) {
		parts := strings.Split(line, string(delim))
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	var (
		fields  []string
		field   strings.Builder
		inQuote bool
		quote   rune
	)

	for _, r := range line {
		switch {
		case inQuote:
			if r == quote {
				inQuote = false
			} else {
				field.WriteRune(r)
			}
		case r == '"' || r == '\'':
			// A quote only opens at the start of a field; mid-field
			// apostrophes (O'Brien) stay literal.
			if strings.TrimSpace(field.String()) == "" {
				field.Reset()
				inQuote = true
				quote = r
			} else {
				field.WriteRune(r)
			}
		case r == rune(delim):
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))

	return fields
}
