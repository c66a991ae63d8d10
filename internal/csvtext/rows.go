package csvtext

import "strings"

// Row is one data row keyed by header name, tagged with its 1-based line
// number in the source file (header is line 1, so the first data row is 2).
type Row struct {
	SourceLine int

	fields map[string]string
}

// Get returns the raw value for the given header name. Missing columns and
// short rows both yield the empty string.
func (r Row) Get(name string) string {
	return r.fields[name]
}

// MapRows zips the header row with every data row. Rows shorter than the
// header never fail; missing trailing fields map to the empty string.
func MapRows(records [][]string) []Row {
	if len(records) < 2 {
		return nil
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = cleanHeader(name)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		fields := make(map[string]string, len(header))
		for col, name := range header {
			if name == "" {
				continue
			}
			if col < len(record) {
				fields[name] = record[col]
			} else {
				fields[name] = ""
			}
		}
		rows = append(rows, Row{SourceLine: i + 2, fields: fields})
	}

	return rows
}

// cleanHeader trims whitespace and strips enclosing quote characters left
// over from spreadsheet exports.
func cleanHeader(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, `"'`)
	return strings.TrimSpace(name)
}
