// Package analyzer orchestrates one classification pass: character stats,
// per-descriptor scoring across the catalog, ranking, and the decoding
// probes, assembled into a single analysis record
package analyzer

import (
	"fmt"
	"sort"

	"hashsleuth/internal/core/catalog"
	"hashsleuth/internal/core/decode"
	"hashsleuth/internal/core/score"
	"hashsleuth/internal/core/textstat"
	perr "hashsleuth/internal/platform/errors"
	"hashsleuth/internal/platform/logger"
)

// MaxInputLen bounds the work done per call (entropy histogram plus one
// regex match per descriptor); it is enforced here, not just at transport
const MaxInputLen = 10000

// Result is one ranked format candidate
type Result struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Score    float64    `json:"score"`
	Tier     score.Tier `json:"tier"`
	Evidence []string   `json:"evidence"`
}

// Record is the full analysis of one input. Results holds at most three
// candidates in descending score order; Decoded holds only probes that
// produced output (a failed probe contributes no key, never a null)
type Record struct {
	Input     string            `json:"input"`
	Results   []Result          `json:"results"`
	Stats     textstat.Stats    `json:"stats"`
	Decoded   map[string]string `json:"decoded"`
	Frequency map[string]int    `json:"frequency"`
}

// Analyzer runs classification against an immutable catalog. It keeps no
// per-call state, so one Analyzer is safe for concurrent use
type Analyzer struct {
	cat *catalog.Catalog
}

// New constructs an Analyzer over cat
func New(cat *catalog.Catalog) *Analyzer {
	if cat == nil {
		panic("analyzer.New requires a non nil catalog")
	}
	return &Analyzer{cat: cat}
}

// Analyze classifies input and returns the assembled record. The only error
// it can return is a validation failure (empty input or over MaxInputLen);
// any unexpected failure past validation is absorbed into a degraded record
// carrying an "error" sentinel result
func (a *Analyzer) Analyze(input string) (rec Record, err error) {
	if input == "" {
		return Record{}, perr.Newf(perr.ErrorCodeValidation, "input is required")
	}
	if n := len([]rune(input)); n > MaxInputLen {
		return Record{}, perr.Newf(perr.ErrorCodeValidation, "input exceeds %d characters", MaxInputLen)
	}

	defer func() {
		if v := recover(); v != nil {
			logger.Named("analyzer").Error().Interface("panic", v).Msg("analysis failed; returning degraded record")
			rec = degraded(input, v)
			err = nil
		}
	}()

	stats, freq := textstat.Compute(input)

	in := score.NewInput(input)
	type candidate struct {
		d   catalog.Descriptor
		raw float64
		ev  []string
	}
	var included []candidate
	for _, d := range a.cat.Descriptors() {
		raw, ev := score.Evaluate(in, d)
		if raw < score.IncludeThreshold {
			continue
		}
		included = append(included, candidate{d: d, raw: raw, ev: ev})
	}

	// descending by score; stable keeps catalog order for ties
	sort.SliceStable(included, func(i, j int) bool { return included[i].raw > included[j].raw })
	if len(included) > score.MaxResults {
		included = included[:score.MaxResults]
	}

	results := make([]Result, 0, score.MaxResults)
	for _, c := range included {
		s := score.Clamp(c.raw)
		results = append(results, Result{
			ID:       c.d.ID,
			Name:     c.d.Name,
			Score:    s,
			Tier:     score.TierFor(s),
			Evidence: c.ev,
		})
	}
	if len(results) == 0 {
		results = append(results, Result{
			ID:       "unknown",
			Name:     "Unknown",
			Score:    0,
			Tier:     score.TierRed,
			Evidence: []string{"no patterns matched"},
		})
	}

	return Record{
		Input:     input,
		Results:   results,
		Stats:     stats,
		Decoded:   decode.All(input),
		Frequency: freq,
	}, nil
}

func degraded(input string, cause any) Record {
	return Record{
		Input: input,
		Results: []Result{{
			ID:       "error",
			Name:     "Error",
			Score:    0,
			Tier:     score.TierRed,
			Evidence: []string{fmt.Sprintf("analysis failed: %v", cause)},
		}},
		Decoded:   map[string]string{},
		Frequency: map[string]int{},
	}
}
