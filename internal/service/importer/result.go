package importer

import (
	"fmt"

	"github.com/talentoapp/talento-backend/internal/csvtext"
)

// RowStatus is the terminal outcome of one imported row.
type RowStatus string

const (
	RowCreated          RowStatus = "CREATED"
	RowSkippedDuplicate RowStatus = "SKIPPED_DUPLICATE"
	RowRejected         RowStatus = "REJECTED"
)

// RowOutcome is produced exactly once per data row.
type RowOutcome struct {
	SourceLine int
	Status     RowStatus
	Reason     string
}

// Report aggregates row outcomes for the HTTP response. Details holds one
// human-readable entry per non-created row, in row order.
type Report struct {
	Success int
	Errors  int
	Details []string
}

func (r *Report) add(o RowOutcome) {
	if o.Status == RowCreated {
		r.Success++
		return
	}
	r.Errors++
	r.Details = append(r.Details, fmt.Sprintf("Fila %d: %s", o.SourceLine, o.Reason))
}

func created(row csvtext.Row) RowOutcome {
	return RowOutcome{SourceLine: row.SourceLine, Status: RowCreated}
}

func skipped(row csvtext.Row, reason string) RowOutcome {
	return RowOutcome{SourceLine: row.SourceLine, Status: RowSkippedDuplicate, Reason: reason}
}

func rejected(row csvtext.Row, reason string) RowOutcome {
	return RowOutcome{SourceLine: row.SourceLine, Status: RowRejected, Reason: reason}
}
