// Package service contains analyzer workflows
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"hashsleuth/internal/core/analyzer"
	"hashsleuth/internal/core/catalog"
	perr "hashsleuth/internal/platform/errors"
	"hashsleuth/internal/services/api/analyzer/domain"
)

// MaxBatch bounds one analyze call
const MaxBatch = 100

// Service defines the analyzer service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analyzer service
type Svc struct {
	core *analyzer.Analyzer
	cat  *catalog.Catalog

	// seams for deterministic tests
	now   func() time.Time
	newID func() string
}

// New constructs an analyzer service over the given catalog
func New(cat *catalog.Catalog) *Svc {
	if cat == nil {
		panic("analyzer.Service requires a non nil catalog")
	}
	return &Svc{
		core:  analyzer.New(cat),
		cat:   cat,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// AnalyzeOne classifies a single input
func (s *Svc) AnalyzeOne(_ context.Context, input string) (domain.Analysis, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Analysis{}, perr.Newf(perr.ErrorCodeValidation, "input is required")
	}
	rec, err := s.core.Analyze(input)
	if err != nil {
		return domain.Analysis{}, err
	}
	return s.wrap(rec), nil
}

// AnalyzeBatch classifies up to MaxBatch inputs, dropping blank elements
func (s *Svc) AnalyzeBatch(ctx context.Context, inputs []string) ([]domain.Analysis, error) {
	if len(inputs) == 0 {
		return nil, perr.Newf(perr.ErrorCodeValidation, "inputs is required")
	}
	if len(inputs) > MaxBatch {
		return nil, perr.Newf(perr.ErrorCodeValidation, "inputs exceeds %d elements", MaxBatch)
	}

	kept := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if t := strings.TrimSpace(in); t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return nil, perr.Newf(perr.ErrorCodeValidation, "inputs has no usable elements")
	}

	out := make([]domain.Analysis, 0, len(kept))
	for _, in := range kept {
		rec, err := s.core.Analyze(in)
		if err != nil {
			return nil, err
		}
		out = append(out, s.wrap(rec))
		if err := ctx.Err(); err != nil {
			return nil, perr.WrapIf(err, perr.ErrorCodeUnavailable, "analysis canceled")
		}
	}
	return out, nil
}

// Identify classifies a single input and returns only the ranked results
func (s *Svc) Identify(ctx context.Context, input string) ([]analyzer.Result, error) {
	a, err := s.AnalyzeOne(ctx, input)
	if err != nil {
		return nil, err
	}
	return a.Results, nil
}

// Patterns lists the loaded catalog
func (s *Svc) Patterns(_ context.Context) []domain.PatternInfo {
	ds := s.cat.Descriptors()
	out := make([]domain.PatternInfo, 0, len(ds))
	for _, d := range ds {
		out = append(out, domain.PatternInfo{
			ID:          d.ID,
			Name:        d.Name,
			Length:      d.Length,
			Charset:     string(d.Charset),
			Prefixes:    len(d.Prefixes),
			Suffixes:    len(d.Suffixes),
			HasRegex:    d.Compiled != nil,
			Example:     d.Example,
			Description: d.Description,
		})
	}
	return out
}

func (s *Svc) wrap(rec analyzer.Record) domain.Analysis {
	return domain.Analysis{
		ID:         s.newID(),
		AnalyzedAt: s.now().UTC().Format(time.RFC3339),
		Record:     rec,
	}
}
