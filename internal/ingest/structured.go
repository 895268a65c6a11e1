package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"gopkg.in/yaml.v3"
)

type jsonParser struct{}

func (jsonParser) CanParse(filename string) bool { return hasSuffix(filename, ".json") }

func (jsonParser) Parse(content []byte, opt Options) (*Result, error) {
	text, err := decodeText(content, opt.Encoding)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return ingestDocument(doc, FormatJSON, opt)
}

type yamlParser struct{}

func (yamlParser) CanParse(filename string) bool { return hasSuffix(filename, ".yaml", ".yml") }

func (yamlParser) Parse(content []byte, opt Options) (*Result, error) {
	text, err := decodeText(content, opt.Encoding)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return ingestDocument(doc, FormatYAML, opt)
}

// ingestDocument accepts either {"samples": [...]} or a top-level array.
func ingestDocument(doc any, format Format, opt Options) (*Result, error) {
	var items []any
	switch d := doc.(type) {
	case []any:
		items = d
	default:
		obj, ok := asObject(doc)
		if !ok {
			return nil, ErrNoSamples
		}
		arr, ok := obj["samples"].([]any)
		if !ok {
			return nil, ErrNoSamples
		}
		items = arr
	}
	res := &Result{Format: format, Samples: []scoring.WaterSample{}}
	for i, item := range items {
		row := i + 1
		res.Rows++
		obj, ok := asObject(item)
		if !ok {
			res.Errors = append(res.Errors, RowError{Row: row, Messages: []string{MsgInvalidItem}})
			continue
		}
		rec := objectRecord(obj, opt)
		s, msgs := rec.finish(row, opt)
		res.add(row, s, msgs)
	}
	return res, nil
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func objectRecord(obj map[string]any, opt Options) *record {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rec := &record{}
	seen := make(map[Field]bool)
	for _, k := range keys {
		f, unit, ok := resolveKey(k)
		if !ok || seen[f] {
			continue
		}
		seen[f] = true
		spec := specFor(f)
		scale := 1.0
		if spec.pollutant {
			scale = unitScale(unit)
		}
		setValue(rec, f, obj[k], scale, opt)
	}
	for _, c := range columns {
		if c.numeric && !seen[c.field] {
			rec.markMissing(c.field)
		}
	}
	return rec
}

func setValue(rec *record, f Field, v any, scale float64, opt Options) {
	if v == nil {
		if specFor(f).numeric {
			rec.markMissing(f)
		}
		return
	}
	if t, ok := v.(time.Time); ok {
		if f == FieldSampleDate {
			rec.setTime(t.UTC())
		} else {
			rec.setRaw(f, t.Format(time.RFC3339), scale, opt, false)
		}
		return
	}
	if specFor(f).numeric {
		if n, ok := toFloat(v); ok {
			rec.setNumber(f, n*scale)
			return
		}
		if s, ok := v.(string); ok {
			rec.setRaw(f, s, scale, opt, false)
			return
		}
		rec.setNumber(f, math.NaN())
		return
	}
	rec.setRaw(f, textOf(v), scale, opt, false)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
