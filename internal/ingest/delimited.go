package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

type delimitedParser struct{}

func (delimitedParser) CanParse(filename string) bool {
	return hasSuffix(filename, ".csv", ".tsv", ".txt")
}

func (delimitedParser) Parse(content []byte, opt Options) (*Result, error) {
	text, err := decodeText(content, opt.Encoding)
	if err != nil {
		return nil, err
	}
	res, err := parseDelimited(text, opt)
	if err != nil {
		return nil, err
	}
	res.Format = FormatDelimited
	return res, nil
}

// sniffDelimiter picks the most frequent of ',', ';' and tab on the first
// non-empty line.
func sniffDelimiter(text string) rune {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		best, bestN := ',', strings.Count(line, ",")
		for _, d := range []rune{';', '\t'} {
			if n := strings.Count(line, string(d)); n > bestN {
				best, bestN = d, n
			}
		}
		return best
	}
	return ','
}

func parseDelimited(text string, opt Options) (*Result, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(text)
	}
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	var rows []tableRow
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse rows: %w", err)
		}
		line++
		rows = append(rows, tableRow{line: line, cells: rec})
	}
	return ingestTable(header, rows, opt, tableMode{strictWidth: true})
}
