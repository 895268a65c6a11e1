package ingest

import (
	"strings"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
)

type column struct {
	index int
	field Field
	scale float64
}

// bindHeader resolves header cells to fields. The first column claiming a
// field wins; unknown headers are ignored.
func bindHeader(header []string) ([]column, error) {
	var cols []column
	seen := make(map[Field]bool)
	for i, h := range header {
		f, unit, ok := resolveKey(h)
		if !ok || seen[f] {
			continue
		}
		seen[f] = true
		scale := 1.0
		if specFor(f).pollutant {
			scale = unitScale(unit)
		}
		cols = append(cols, column{index: i, field: f, scale: scale})
	}
	var missing []string
	for _, c := range columns {
		if c.required && !seen[c.field] {
			missing = append(missing, c.canonical)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return cols, nil
}

type tableRow struct {
	line  int
	cells []string
}

type tableMode struct {
	strictWidth bool // reject rows whose width differs from the header
	serialDates bool // numeric date cells are Excel serials
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ingestTable binds the header and converts each data row into a sample or a
// row error.
func ingestTable(header []string, rows []tableRow, opt Options, mode tableMode) (*Result, error) {
	if blank(header) {
		return nil, ErrNoHeader
	}
	cols, err := bindHeader(header)
	if err != nil {
		return nil, err
	}
	res := &Result{Samples: []scoring.WaterSample{}}
	ordinal := 0
	for _, row := range rows {
		if blank(row.cells) {
			continue
		}
		ordinal++
		res.Rows++
		if mode.strictWidth && len(row.cells) != len(header) {
			res.Errors = append(res.Errors, RowError{Row: row.line, Messages: []string{MsgColumnCount}})
			continue
		}
		var rec record
		for _, c := range cols {
			raw := ""
			if c.index < len(row.cells) {
				raw = row.cells[c.index]
			}
			rec.setRaw(c.field, raw, c.scale, opt, mode.serialDates)
		}
		s, msgs := rec.finish(ordinal, opt)
		res.add(row.line, s, msgs)
	}
	if res.Rows == 0 {
		return nil, ErrNoRows
	}
	return res, nil
}
