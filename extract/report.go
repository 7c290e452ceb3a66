// Package extract turns parsed listing and episode pages into records.
//
// Rows are processed independently: a row that does not have the expected
// structure is skipped and recorded in the page Report, it never aborts the page.
package extract

import (
	"errors"
	"fmt"

	"github.com/comicrawl/comicrawl/dom"
	"github.com/comicrawl/comicrawl/log"
)

// Skip reasons.
const (
	ReasonMissingElement   = "element missing"
	ReasonMissingAttribute = "attribute missing"
	ReasonPatternMismatch  = "pattern mismatch"
	ReasonCellCount        = "unexpected cell count"
)

// RowError describes why a single row could not be turned into a record.
type RowError struct {
	// Row is the zero-based index among the page's data rows.
	Row    int
	Field  string
	Reason string
	Detail string
}

func (e *RowError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("row %d: %s: %s (%s)", e.Row, e.Field, e.Reason, e.Detail)
	}
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Reason)
}

// Report summarizes the outcome of extracting one page.
type Report struct {
	Rows    int
	Parsed  int
	Skipped []*RowError
}

// Log writes one warning per skipped row, tagged with fields that locate the page.
func (r *Report) Log(fields log.Fields) {
	for _, skipped := range r.Skipped {
		log.With(fields).Warnf("skipped %s", skipped)
	}
	log.With(fields).Debugf("%d rows, %d parsed, %d skipped", r.Rows, r.Parsed, len(r.Skipped))
}

// rows runs parse over each row, collecting records in document order.
func rows[T any](elements []dom.Element, parse func(int, dom.Element) (T, error)) ([]T, *Report) {
	report := &Report{Rows: len(elements)}
	records := make([]T, 0, len(elements))

	for i, element := range elements {
		record, err := parse(i, element)
		if err != nil {
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				rowErr = &RowError{Row: i, Field: "row", Reason: err.Error()}
			}
			report.Skipped = append(report.Skipped, rowErr)
			continue
		}

		records = append(records, record)
		report.Parsed++
	}

	return records, report
}
