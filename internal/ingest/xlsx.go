package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxParser struct{}

func (xlsxParser) CanParse(filename string) bool { return hasSuffix(filename, ".xlsx") }

func (xlsxParser) Parse(content []byte, opt Options) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet, err := pickSheet(f.GetSheetList(), opt)
	if err != nil {
		return nil, err
	}
	all, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(all) == 0 {
		return nil, ErrNoHeader
	}
	rows := make([]tableRow, 0, len(all)-1)
	for i, cells := range all[1:] {
		rows = append(rows, tableRow{line: i + 2, cells: cells})
	}
	// Trailing empty cells are not stored in the workbook, so row width is not checked.
	res, err := ingestTable(all[0], rows, opt, tableMode{serialDates: true})
	if err != nil {
		return nil, err
	}
	res.Format = FormatXLSX
	return res, nil
}

func pickSheet(sheets []string, opt Options) (string, error) {
	if opt.SheetName != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, opt.SheetName) {
				return s, nil
			}
		}
		return "", &SheetNotFoundError{Name: opt.SheetName, Available: sheets}
	}
	idx := opt.SheetIndex
	if idx <= 0 {
		idx = 1
	}
	if idx > len(sheets) {
		return "", &SheetNotFoundError{Index: idx, Available: sheets}
	}
	return sheets[idx-1], nil
}
