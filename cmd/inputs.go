package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cfgpkg "github.com/KaramelBytes/hmpi-cli/internal/config"
	"github.com/KaramelBytes/hmpi-cli/internal/ingest"
	"github.com/KaramelBytes/hmpi-cli/internal/source"
	"github.com/spf13/cobra"
)

// ingestFlags are shared by commands that read sample files.
type ingestFlags struct {
	delimiter  string
	decimal    string
	thousands  string
	encoding   string
	sheetName  string
	sheetIndex int
	strict     bool
}

func (f *ingestFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.delimiter, "delimiter", "", "delimiter: ',' | ';' | '|' | 'tab' (sniffed if omitted)")
	c.Flags().StringVar(&f.decimal, "decimal", "", "decimal separator for numbers: '.'|'dot'|','|'comma' (auto-detect if omitted)")
	c.Flags().StringVar(&f.thousands, "thousands", "", "thousands separator for numbers: ','|'.'|'space' (auto-detect if omitted)")
	c.Flags().StringVar(&f.encoding, "encoding", "", "text encoding: auto | utf-8 | utf-16le | utf-16be | windows-1252 ...")
	c.Flags().StringVar(&f.sheetName, "sheet-name", "", "XLSX: sheet name to read")
	c.Flags().IntVar(&f.sheetIndex, "sheet-index", 0, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	c.Flags().BoolVar(&f.strict, "strict-missing", false, "report empty numeric cells as row errors instead of reading them as 0")
}

// options merges configuration with explicitly set flags.
func (f *ingestFlags) options(c *cobra.Command) (ingest.Options, error) {
	opt := ingest.DefaultOptions()
	if conf, err := currentConfig(); err == nil {
		opt = conf.IngestOptions()
	}
	fl := c.Flags()
	if fl.Changed("delimiter") {
		d, err := cfgpkg.ParseDelimiter(f.delimiter)
		if err != nil {
			return opt, fmt.Errorf("--delimiter: %w", err)
		}
		opt.Delimiter = d
	}
	if fl.Changed("decimal") {
		d, err := cfgpkg.ParseDecimalSeparator(f.decimal)
		if err != nil {
			return opt, fmt.Errorf("--decimal: %w", err)
		}
		opt.DecimalSeparator = d
	}
	if fl.Changed("thousands") {
		t, err := cfgpkg.ParseThousandsSeparator(f.thousands)
		if err != nil {
			return opt, fmt.Errorf("--thousands: %w", err)
		}
		opt.ThousandsSeparator = t
	}
	if fl.Changed("encoding") {
		opt.Encoding = f.encoding
	}
	if fl.Changed("sheet-name") {
		opt.SheetName = f.sheetName
	}
	if fl.Changed("sheet-index") {
		if f.sheetIndex < 1 {
			return opt, fmt.Errorf("--sheet-index must be >= 1")
		}
		opt.SheetIndex = f.sheetIndex
	}
	if fl.Changed("strict-missing") {
		opt.StrictMissing = f.strict
	}
	return opt, nil
}

// expandInputs resolves local globs and de-duplicates; object URIs pass through.
func expandInputs(args []string) ([]string, error) {
	var files []string
	seen := map[string]struct{}{}
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}
	for _, arg := range args {
		loc, err := source.ParseURI(arg)
		if err != nil {
			return nil, err
		}
		if loc.Scheme != source.SchemeLocal {
			add(arg)
			continue
		}
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			if _, err := os.Stat(arg); err != nil {
				return nil, fmt.Errorf("input not found: %s", arg)
			}
			matches = []string{arg}
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files matched")
	}
	return files, nil
}

func newResolver() *source.Resolver {
	if conf, err := currentConfig(); err == nil {
		return source.NewResolver(conf.SourceConfig())
	}
	return source.NewResolver(source.Config{})
}

// loadInputs reads and ingests every input. Structural failures abort.
func loadInputs(ctx context.Context, args []string, opt ingest.Options) ([]*ingest.Result, error) {
	files, err := expandInputs(args)
	if err != nil {
		return nil, err
	}
	res := newResolver()
	defer res.Close()

	out := make([]*ingest.Result, 0, len(files))
	for _, f := range files {
		data, err := res.Read(ctx, f)
		if err != nil {
			return nil, err
		}
		loc, _ := source.ParseURI(f)
		r, err := ingest.Parse(loc.Name(), data, opt)
		var missing *ingest.MissingColumnsError
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%w\n  expected headers: %s\n  optional headers: %s", err,
				strings.Join(ingest.RequiredColumns(), ", "), strings.Join(ingest.OptionalColumns(), ", "))
		}
		if err != nil {
			return nil, err
		}
		r.Name = f
		slog.Debug("ingested", "input", f, "format", r.Format, "rows", r.Rows, "samples", len(r.Samples), "errors", len(r.Errors))
		out = append(out, r)
	}
	return out, nil
}

// reportRowErrors prints row errors as warnings and returns their count.
func reportRowErrors(c *cobra.Command, results []*ingest.Result) int {
	n := 0
	for _, r := range results {
		for _, msg := range r.ErrorMessages() {
			fmt.Fprintf(c.ErrOrStderr(), "⚠ Warning: %s: %s\n", r.Name, msg)
			n++
		}
	}
	return n
}
