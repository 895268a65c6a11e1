package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"github.com/KaramelBytes/hmpi-cli/internal/utils"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// TemplateSamples returns the two example rows shipped in every template.
func TemplateSamples() []scoring.WaterSample {
	return []scoring.WaterSample{
		{
			ID: "sample_1", Latitude: 28.6139, Longitude: 77.2090,
			Pb: 0.005, As: 0.002, Cd: 0.001, Cr: 0.02, Ni: 0.03, PH: 7.2, Conductivity: 450,
			Location: "Delhi Area 1", SampleDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			CollectedBy: "Researcher 1", Notes: "Regular monitoring",
		},
		{
			ID: "sample_2", Latitude: 19.0760, Longitude: 72.8777,
			Pb: 0.008, As: 0.003, Cd: 0.002, Cr: 0.03, Ni: 0.04, PH: 7.8, Conductivity: 520,
			Location: "Mumbai Area 2", SampleDate: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			CollectedBy: "Researcher 2", Notes: "Industrial area",
		},
	}
}

type templateMeta struct {
	Description  string `json:"description" yaml:"description"`
	Version      string `json:"version" yaml:"version"`
	Instructions string `json:"instructions" yaml:"instructions"`
}

type templateDoc struct {
	Metadata templateMeta          `json:"metadata" yaml:"metadata"`
	Samples  []scoring.WaterSample `json:"samples" yaml:"samples"`
}

// writeTemplateCSV writes samples in the ingestion schema with plain dates.
func writeTemplateCSV(out io.Writer, samples []scoring.WaterSample) error {
	w := csv.NewWriter(out)
	if err := w.Write(SampleColumns); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, s := range samples {
		rec := sampleRecord(s)
		rec[11] = s.SampleDate.Format("2006-01-02")
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Template renders a fill-in dataset in the given format.
func Template(f Format) ([]byte, error) {
	samples := TemplateSamples()
	doc := templateDoc{
		Metadata: templateMeta{
			Description:  "Water sample template",
			Version:      exportVersion,
			Instructions: "Fill in the samples array with your water quality data",
		},
		Samples: samples,
	}
	switch f {
	case FormatCSV:
		var buf bytes.Buffer
		if err := writeTemplateCSV(&buf, samples); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return utils.PrettyJSON(doc)
	case FormatYAML:
		b, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return b, nil
	case FormatXLSX:
		x := excelize.NewFile()
		defer x.Close()
		if err := x.SetSheetName("Sheet1", "Samples"); err != nil {
			return nil, fmt.Errorf("create workbook: %w", err)
		}
		rows := [][]any{make([]any, len(SampleColumns))}
		for i, c := range SampleColumns {
			rows[0][i] = c
		}
		for _, s := range samples {
			rows = append(rows, []any{
				s.ID, s.Latitude, s.Longitude, s.Pb, s.As, s.Cd, s.Cr, s.Ni, s.PH, s.Conductivity,
				s.Location, s.SampleDate.Format("2006-01-02"), s.CollectedBy, s.Notes,
			})
		}
		if err := writeRows(x, "Samples", rows); err != nil {
			return nil, err
		}
		buf, err := x.WriteToBuffer()
		if err != nil {
			return nil, fmt.Errorf("write workbook: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
