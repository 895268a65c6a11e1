package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoHeader indicates tabular input without a header row.
	ErrNoHeader = errors.New("input has no header row")
	// ErrNoRows indicates tabular input with a header but no data rows.
	ErrNoRows = errors.New("input must contain at least a header row and one data row")
	// ErrNoSamples indicates a structured document without a samples array.
	ErrNoSamples = errors.New("invalid format: missing or invalid samples array")
)

// MissingColumnsError names required headers that could not be resolved.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required column headers: %s", strings.Join(e.Columns, ", "))
}

// SheetNotFoundError indicates the requested workbook sheet does not exist.
type SheetNotFoundError struct {
	Name      string
	Index     int
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	want := e.Name
	if want == "" {
		want = fmt.Sprintf("#%d", e.Index)
	}
	return fmt.Sprintf("sheet '%s' not found; available sheets: %s", want, strings.Join(e.Available, ", "))
}
