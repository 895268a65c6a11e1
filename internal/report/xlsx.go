package report

import (
	"fmt"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetSummary       = "Summary"
	SheetDetailed      = "Detailed Results"
	SheetContributions = "Metal Contributions"
)

var detailedHeader = []any{
	"Sample ID", "Location", "Latitude", "Longitude",
	"Lead (mg/L)", "Arsenic (mg/L)", "Cadmium (mg/L)", "Chromium (mg/L)", "Nickel (mg/L)",
	"pH", "Conductivity (μS/cm)", "HMPI", "HPI", "Classification", "Risk Level",
	"Sample Date", "Collected By", "Notes",
}

var contributionsHeader = []any{
	"Sample ID", "Lead Contribution (%)", "Arsenic Contribution (%)", "Cadmium Contribution (%)",
	"Chromium Contribution (%)", "Nickel Contribution (%)",
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func exportXLSX(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("create workbook: %w", err)
	}
	for _, s := range []string{SheetDetailed, SheetContributions} {
		if _, err := f.NewSheet(s); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", s, err)
		}
	}

	sum := doc.Summary
	summary := [][]any{
		{"Water Quality Analysis Report"},
		{"Generated on:", doc.Metadata.ExportDate.Format("2006-01-02")},
		{"Batch ID:", doc.Metadata.BatchID},
		{},
		{"Summary Statistics"},
		{"Total Samples:", sum.TotalSamples},
		{"Safe Samples:", sum.SafeCount},
		{"Moderate Risk Samples:", sum.ModerateCount},
		{"Unsafe Samples:", sum.UnsafeCount},
		{"Average HMPI:", sum.AverageHMPI},
		{"Average HPI:", sum.AverageHPI},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return nil, err
	}

	detailed := [][]any{detailedHeader}
	contrib := [][]any{contributionsHeader}
	for i, r := range doc.Results {
		var s scoring.WaterSample
		if i < len(doc.Samples) {
			s = doc.Samples[i]
		}
		detailed = append(detailed, []any{
			r.SampleID, s.Location, s.Latitude, s.Longitude,
			s.Pb, s.As, s.Cd, s.Cr, s.Ni, s.PH, s.Conductivity,
			r.HMPI, r.HPI, string(r.Classification), string(r.RiskLevel),
			formatDate(s.SampleDate), s.CollectedBy, s.Notes,
		})
		c := r.MetalContributions
		contrib = append(contrib, []any{r.SampleID, c.Pb, c.As, c.Cd, c.Cr, c.Ni})
	}
	if err := writeRows(f, SheetDetailed, detailed); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetContributions, contrib); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
