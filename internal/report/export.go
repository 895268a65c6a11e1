// Package report renders processed batches as CSV, JSON, YAML and XLSX
// exports, produces fill-in templates and summary text, and generates
// synthetic sample batches.
package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"github.com/KaramelBytes/hmpi-cli/internal/utils"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format is an export file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat indicates an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported export formats.
func Formats() []Format { return []Format{FormatCSV, FormatJSON, FormatYAML, FormatXLSX} }

// ParseFormat maps a user supplied name ("yml" included) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath infers the format from a file extension.
func FormatForPath(p string) (Format, error) {
	return ParseFormat(filepath.Ext(p))
}

// Metadata describes an export.
type Metadata struct {
	BatchID      string    `json:"batchId" yaml:"batchId"`
	ExportDate   time.Time `json:"exportDate" yaml:"exportDate"`
	Version      string    `json:"version" yaml:"version"`
	Description  string    `json:"description" yaml:"description"`
	TotalSamples int       `json:"totalSamples" yaml:"totalSamples"`
}

// Document is the structured export layout. Its samples array can be
// ingested again unchanged.
type Document struct {
	Metadata Metadata              `json:"metadata" yaml:"metadata"`
	Summary  scoring.Summary       `json:"summary" yaml:"summary"`
	Samples  []scoring.WaterSample `json:"samples" yaml:"samples"`
	Results  []scoring.HMPIResult  `json:"results" yaml:"results"`
}

const exportVersion = "1.0"

// Exporter renders processed batches. Now and NewID are injectable for tests.
type Exporter struct {
	Now   func() time.Time
	NewID func() string
}

// NewExporter returns an Exporter using the wall clock and random UUIDs.
func NewExporter() *Exporter {
	return &Exporter{
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: func() string { return uuid.NewString() },
	}
}

// Document builds the structured export for data.
func (e *Exporter) Document(data *scoring.ProcessedData) Document {
	return Document{
		Metadata: Metadata{
			BatchID:      e.NewID(),
			ExportDate:   e.Now(),
			Version:      exportVersion,
			Description:  "Heavy metal water quality analysis data",
			TotalSamples: data.Summary.TotalSamples,
		},
		Summary: data.Summary,
		Samples: data.Samples,
		Results: data.Results,
	}
}

// Export builds a new Document for data and renders it.
func (e *Exporter) Export(data *scoring.ProcessedData, f Format) ([]byte, error) {
	return Render(e.Document(data), f)
}

// Render writes an existing Document in the requested format; metadata is
// taken from doc as is.
func Render(doc Document, f Format) ([]byte, error) {
	switch f {
	case FormatCSV:
		return exportCSV(doc)
	case FormatJSON:
		return utils.PrettyJSON(doc)
	case FormatYAML:
		b, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return b, nil
	case FormatXLSX:
		return exportXLSX(doc)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// SampleColumns is the ingestion schema header, in export order.
var SampleColumns = []string{
	"id", "latitude", "longitude", "pb", "as", "cd", "cr", "ni", "pH", "conductivity",
	"location", "sampleDate", "collectedBy", "notes",
}

var resultColumns = []string{"hmpi", "hpi", "classification", "riskLevel"}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func sampleRecord(s scoring.WaterSample) []string {
	f := utils.FormatFloat
	return []string{
		s.ID, f(s.Latitude), f(s.Longitude), f(s.Pb), f(s.As), f(s.Cd), f(s.Cr), f(s.Ni),
		f(s.PH), f(s.Conductivity), s.Location, formatDate(s.SampleDate), s.CollectedBy, s.Notes,
	}
}

// exportCSV writes one row per sample in the ingestion schema, followed by the
// headline result columns which ingestion ignores.
func exportCSV(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := append(append([]string{}, SampleColumns...), resultColumns...)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	for i, s := range doc.Samples {
		rec := sampleRecord(s)
		if i < len(doc.Results) {
			r := doc.Results[i]
			rec = append(rec, utils.FormatFloat(r.HMPI), utils.FormatFloat(r.HPI), string(r.Classification), string(r.RiskLevel))
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
