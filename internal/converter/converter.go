// Package converter orchestrates a conversion run: acquire the document,
// resolve the bank profile, run the parsing pipeline and write the output.
package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Xhelo-hub/bank-select-converter/internal/extractor"
	"github.com/Xhelo-hub/bank-select-converter/internal/logger"
	"github.com/Xhelo-hub/bank-select-converter/internal/models"
	"github.com/Xhelo-hub/bank-select-converter/internal/parser"
	"github.com/Xhelo-hub/bank-select-converter/internal/profile"
	"github.com/Xhelo-hub/bank-select-converter/internal/writer"
)

// Options controls a conversion run.
type Options struct {
	// BankID selects the profile explicitly; empty means auto-detect.
	BankID string
	// OutputDir receives the converted CSV. Defaults to "export".
	OutputDir string
}

// Result is the machine-readable account of one conversion.
type Result struct {
	RunID      string           `json:"runId"`
	Bank       string           `json:"bank"`
	Input      string           `json:"input"`
	OutputPath string           `json:"outputPath,omitempty"`
	Converted  int              `json:"converted"`
	Skipped    []models.Skip    `json:"skipped,omitempty"`
	Warnings   []models.Warning `json:"warnings,omitempty"`
}

// Empty reports whether the document parsed but yielded no ledger rows.
func (r *Result) Empty() bool { return r.Converted == 0 }

// Convert runs the pipeline on one statement file. Per-record findings are
// returned on the Result and mirrored as structured log lines; only
// document-level failures return an error.
func Convert(ctx context.Context, inputPath string, opts Options) (*Result, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = "export"
	}

	runID := uuid.NewString()
	log := logger.FromContext(ctx).With().
		Str("run_id", runID).
		Str("file", filepath.Base(inputPath)).
		Logger()

	doc, err := extractor.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", filepath.Base(inputPath), err)
	}

	prof, err := resolveProfile(doc, opts.BankID)
	if err != nil {
		return nil, err
	}
	log = log.With().Str("bank", prof.ID).Logger()
	log.Info().Str("kind", string(doc.Kind)).Msg("converting statement")

	st, err := parser.Parse(doc, prof)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:     runID,
		Bank:      prof.ID,
		Input:     inputPath,
		Converted: len(st.Records),
		Skipped:   st.Skipped,
		Warnings:  st.Warnings,
	}

	for _, w := range st.Warnings {
		log.Warn().
			Str("kind", string(w.Kind)).
			Int("row", w.Row).
			Msg(w.Detail)
	}
	for _, s := range st.Skipped {
		log.Debug().Int("row", s.Row).Str("reason", s.Reason).Msg("row skipped")
	}

	if res.Empty() {
		log.Warn().Msg("no transactions found, nothing written")
		return res, nil
	}

	outPath, err := (&writer.CSVWriter{}).WriteFile(inputPath, opts.OutputDir, st)
	if err != nil {
		return nil, err
	}
	res.OutputPath = outPath

	log.Info().
		Int("converted", res.Converted).
		Int("skipped", len(res.Skipped)).
		Int("warnings", len(res.Warnings)).
		Str("output", outPath).
		Msg("conversion complete")
	return res, nil
}

func resolveProfile(doc *models.Document, bankID string) (*profile.Profile, error) {
	if bankID != "" {
		return profile.Get(bankID)
	}
	return profile.Detect(doc)
}

// ConvertDir converts every statement file in a directory. Failures on
// individual files do not stop the batch; they are collected on the summary.
func ConvertDir(ctx context.Context, dir string, opts Options) (*BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	batch := &BatchResult{}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".pdf", ".csv":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	log := logger.FromContext(ctx)
	for _, name := range names {
		res, cerr := Convert(ctx, filepath.Join(dir, name), opts)
		if cerr != nil {
			log.Error().Str("file", name).Err(cerr).Msg("conversion failed")
			batch.Failed = append(batch.Failed, FailedFile{File: name, Err: cerr.Error()})
			continue
		}
		batch.Results = append(batch.Results, res)
	}
	return batch, nil
}

// BatchResult summarizes a directory conversion.
type BatchResult struct {
	Results []*Result    `json:"results"`
	Failed  []FailedFile `json:"failed,omitempty"`
}

// FailedFile names one input that could not be converted.
type FailedFile struct {
	File string `json:"file"`
	Err  string `json:"error"`
}
