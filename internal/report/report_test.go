package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/KaramelBytes/hmpi-cli/internal/ingest"
	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"github.com/xuri/excelize/v2"
)

var refTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedExporter() *Exporter {
	return &Exporter{
		Now:   func() time.Time { return refTime },
		NewID: func() string { return "batch-0001" },
	}
}

func processed(t *testing.T, samples []scoring.WaterSample) *scoring.ProcessedData {
	t.Helper()
	data, err := scoring.ProcessBatch(samples)
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	return data
}

func sameSample(a, b scoring.WaterSample) bool {
	return a.ID == b.ID && a.Latitude == b.Latitude && a.Longitude == b.Longitude &&
		a.Pb == b.Pb && a.As == b.As && a.Cd == b.Cd && a.Cr == b.Cr && a.Ni == b.Ni &&
		a.PH == b.PH && a.Conductivity == b.Conductivity && a.SampleDate.Equal(b.SampleDate) &&
		a.Location == b.Location && a.CollectedBy == b.CollectedBy && a.Notes == b.Notes
}

func TestExportImportRoundTrip(t *testing.T) {
	samples := Generate(25, 42, refTime)
	data := processed(t, samples)
	exp := fixedExporter()

	cases := []struct {
		format Format
		file   string
		opt    func(*ingest.Options)
	}{
		{FormatCSV, "batch.csv", nil},
		{FormatJSON, "batch.json", nil},
		{FormatYAML, "batch.yaml", nil},
		{FormatXLSX, "batch.xlsx", func(o *ingest.Options) { o.SheetName = SheetDetailed }},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			b, err := exp.Export(data, tc.format)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			opt := ingest.DefaultOptions()
			if tc.opt != nil {
				tc.opt(&opt)
			}
			res, err := ingest.Parse(tc.file, b, opt)
			if err != nil {
				t.Fatalf("ingest: %v", err)
			}
			if len(res.Errors) != 0 {
				t.Fatalf("unexpected row errors: %v", res.ErrorMessages())
			}
			if len(res.Samples) != len(samples) {
				t.Fatalf("got %d samples, want %d", len(res.Samples), len(samples))
			}
			for i := range samples {
				if !sameSample(res.Samples[i], samples[i]) {
					t.Fatalf("sample %d differs:\n got %+v\nwant %+v", i, res.Samples[i], samples[i])
				}
				if got, want := scoring.ProcessSample(res.Samples[i]), data.Results[i]; !reflect.DeepEqual(got, want) {
					t.Fatalf("result %d differs after round trip", i)
				}
			}
		})
	}
}

func TestExportJSONDocument(t *testing.T) {
	data := processed(t, TemplateSamples())
	b, err := fixedExporter().Export(data, FormatJSON)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Metadata.BatchID != "batch-0001" || doc.Metadata.Version != "1.0" || doc.Metadata.TotalSamples != 2 {
		t.Fatalf("metadata = %+v", doc.Metadata)
	}
	if !doc.Metadata.ExportDate.Equal(refTime) {
		t.Fatalf("export date = %v", doc.Metadata.ExportDate)
	}
	if doc.Summary != data.Summary || len(doc.Results) != 2 || doc.Results[1].SampleID != "sample_2" {
		t.Fatalf("document body mismatch: %+v", doc)
	}
}

func TestRenderKeepsDocumentMetadata(t *testing.T) {
	n := 0
	e := &Exporter{
		Now:   func() time.Time { return refTime },
		NewID: func() string { n++; return fmt.Sprintf("batch-%04d", n) },
	}
	doc := e.Document(processed(t, TemplateSamples()))

	b, err := Render(doc, FormatJSON)
	if err != nil {
		t.Fatalf("Render json: %v", err)
	}
	var got Document
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Metadata.BatchID != doc.Metadata.BatchID || !got.Metadata.ExportDate.Equal(doc.Metadata.ExportDate) {
		t.Fatalf("metadata = %+v, want %+v", got.Metadata, doc.Metadata)
	}

	b, err = Render(doc, FormatXLSX)
	if err != nil {
		t.Fatalf("Render xlsx: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue(SheetSummary, "B3"); v != doc.Metadata.BatchID {
		t.Fatalf("workbook batch id = %q, want %q", v, doc.Metadata.BatchID)
	}
	if n != 1 {
		t.Fatalf("NewID called %d times, want 1", n)
	}
}

func TestNewExporterUsesUUIDs(t *testing.T) {
	e := NewExporter()
	a, b := e.NewID(), e.NewID()
	if len(a) != 36 || a == b {
		t.Fatalf("expected distinct uuids, got %q and %q", a, b)
	}
}

func TestTemplates(t *testing.T) {
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			b, err := Template(f)
			if err != nil {
				t.Fatalf("Template: %v", err)
			}
			res, err := ingest.Parse("template."+string(f), b, ingest.DefaultOptions())
			if err != nil {
				t.Fatalf("ingest template: %v", err)
			}
			if len(res.Errors) != 0 || len(res.Samples) != 2 {
				t.Fatalf("template ingested as %+v", res)
			}
			want := TemplateSamples()
			for i := range want {
				if !sameSample(res.Samples[i], want[i]) {
					t.Fatalf("template sample %d = %+v", i, res.Samples[i])
				}
			}
		})
	}

	b, _ := Template(FormatCSV)
	first := strings.SplitN(string(b), "\n", 2)[0]
	if first != strings.Join(SampleColumns, ",") {
		t.Fatalf("csv header = %q", first)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTemplateCSVReportsWriteErrors(t *testing.T) {
	err := writeTemplateCSV(failingWriter{}, TemplateSamples())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(50, 7, refTime)
	b := Generate(50, 7, refTime)
	c := Generate(50, 8, refTime)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different batches")
	}
	if reflect.DeepEqual(a, c) {
		t.Fatalf("different seeds produced identical batches")
	}
	for _, s := range a {
		if msgs := ingest.Validate(s); len(msgs) != 0 {
			t.Fatalf("generated sample %s invalid: %v", s.ID, msgs)
		}
		if s.SampleDate.After(refTime) || s.SampleDate.Before(refTime.AddDate(-1, 0, -1)) {
			t.Fatalf("sample date %v out of range", s.SampleDate)
		}
	}
	if len(Generate(0, 1, refTime)) != 0 {
		t.Fatalf("expected empty batch")
	}
}

func TestSummaryText(t *testing.T) {
	text := SummaryText(scoring.Summary{TotalSamples: 4, SafeCount: 2, ModerateCount: 1, UnsafeCount: 1, AverageHMPI: 0.75, AverageHPI: 74.5})
	for _, want := range []string{
		"Total Samples Analyzed: 4",
		"• Safe Water: 2 samples (50.0%)",
		"• Unsafe Water: 1 samples (25.0%)",
		"(HMPI): 0.75",
		"(HPI): 74.5",
		"• Immediate attention required for 1 unsafe samples",
		"• Monitoring recommended for 1 moderate risk samples",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "All samples meet") {
		t.Errorf("unexpected all-safe line")
	}
	if got := Recommendations(scoring.Summary{TotalSamples: 3, SafeCount: 3}); !reflect.DeepEqual(got, []string{"All samples meet safety standards"}) {
		t.Errorf("all-safe recommendations = %v", got)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"CSV": FormatCSV, ".json": FormatJSON, "yml": FormatYAML, "xlsx": FormatXLSX} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if f, err := FormatForPath("out/report.yaml"); err != nil || f != FormatYAML {
		t.Errorf("FormatForPath = %q, %v", f, err)
	}
}
