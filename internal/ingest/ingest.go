// Package ingest turns delimited text, spreadsheets and structured documents
// into validated water samples. Bad rows are collected as row errors and never
// abort a batch; only structural problems (unreadable input, missing required
// headers, malformed syntax) fail the whole call.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
)

// Format names the family of an input.
type Format string

const (
	FormatDelimited Format = "delimited"
	FormatXLSX      Format = "xlsx"
	FormatJSON      Format = "json"
	FormatYAML      Format = "yaml"
)

// ErrUnsupported indicates a file type no parser accepts.
var ErrUnsupported = errors.New("unsupported input format")

// Options controls parsing.
type Options struct {
	// Delimiter for delimited text. If 0, picked from the extension or sniffed
	// from the header line among ',', ';', '\t'.
	Delimiter rune
	// DecimalSeparator and ThousandsSeparator are auto-detected per value when 0.
	DecimalSeparator   rune
	ThousandsSeparator rune
	// Encoding of text inputs: "" or "auto" detects BOMs and falls back to
	// Windows-1252 for invalid UTF-8; any WHATWG label is accepted otherwise.
	Encoding string
	// SheetName selects a workbook sheet (case-insensitive). When empty,
	// SheetIndex (1-based, default 1) is used.
	SheetName  string
	SheetIndex int
	// StrictMissing reports absent numeric values as row errors instead of
	// defaulting them to 0.
	StrictMissing bool
}

// DefaultOptions returns the permissive defaults.
func DefaultOptions() Options {
	return Options{Encoding: "auto", SheetIndex: 1}
}

// RowError carries the validation messages of one rejected row.
type RowError struct {
	Row      int      `json:"row" yaml:"row"`
	Messages []string `json:"messages" yaml:"messages"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Row, strings.Join(e.Messages, ", "))
}

// Result is the outcome of ingesting one input.
type Result struct {
	Name    string                `json:"name" yaml:"name"`
	Format  Format                `json:"format" yaml:"format"`
	Rows    int                   `json:"rows" yaml:"rows"`
	Samples []scoring.WaterSample `json:"samples" yaml:"samples"`
	Errors  []RowError            `json:"errors" yaml:"errors"`
}

// ErrorMessages renders row errors as "Row N: ..." strings.
func (r *Result) ErrorMessages() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Error()
	}
	return out
}

func (r *Result) add(row int, s scoring.WaterSample, msgs []string) {
	if len(msgs) > 0 {
		r.Errors = append(r.Errors, RowError{Row: row, Messages: msgs})
		return
	}
	r.Samples = append(r.Samples, s)
}

// Parser converts raw file content into samples.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte, opt Options) (*Result, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// Parse selects a parser from the file name and ingests content.
func Parse(name string, content []byte, opt Options) (*Result, error) {
	for _, p := range registry {
		if p.CanParse(name) {
			res, err := p.Parse(content, opt)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filepath.Base(name), err)
			}
			res.Name = filepath.Base(name)
			return res, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", filepath.Base(name), ErrUnsupported)
}

// ParseFile reads a local file and ingests it.
func ParseFile(path string, opt Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(path, data, opt)
}

func hasSuffix(filename string, exts ...string) bool {
	name := strings.ToLower(filename)
	for _, e := range exts {
		if strings.HasSuffix(name, e) {
			return true
		}
	}
	return false
}

func init() {
	Register(delimitedParser{})
	Register(xlsxParser{})
	Register(jsonParser{})
	Register(yamlParser{})
}
