// Package http provides http transport for the analyzer
package http

import (
	stdhttp "net/http"

	"hashsleuth/internal/modkit/httpkit"
	perr "hashsleuth/internal/platform/errors"
	"hashsleuth/internal/services/api/analyzer/domain"
	svc "hashsleuth/internal/services/api/analyzer/service"
)

// Register mounts analyzer endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full analysis, single or batch
	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)

	// ranked candidates only
	httpkit.PostJSON[domain.IdentifyInput](r, "/identify", h.identify)

	// catalog listing
	httpkit.Get(r, "/patterns", h.patterns)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /analyzer/analyze Analyzer analyzerAnalyze
// @Summary Analyze one input or a batch
// @Tags Analyzer
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Input"
// @Success 200 {object} domain.Analysis "ok"
// @Router /analyzer/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	switch {
	case in.Input != "":
		return h.svc.AnalyzeOne(r.Context(), in.Input)
	case in.Inputs != nil:
		return h.svc.AnalyzeBatch(r.Context(), in.Inputs)
	default:
		return nil, perr.Newf(perr.ErrorCodeValidation, "input or inputs is required")
	}
}

// swagger:route POST /analyzer/identify Analyzer analyzerIdentify
// @Summary Identify the likeliest formats for one input
// @Tags Analyzer
// @Accept json
// @Produce json
// @Param payload body domain.IdentifyInput true "Input"
// @Success 200 {array} analyzer.Result "ok"
// @Router /analyzer/identify [post]
func (h *handlers) identify(r *stdhttp.Request, in domain.IdentifyInput) (any, error) {
	return h.svc.Identify(r.Context(), in.Input)
}

// swagger:route GET /analyzer/patterns Analyzer analyzerPatterns
// @Summary List loaded pattern descriptors
// @Tags Analyzer
// @Produce json
// @Success 200 {array} domain.PatternInfo "ok"
// @Router /analyzer/patterns [get]
func (h *handlers) patterns(r *stdhttp.Request) (any, error) {
	return h.svc.Patterns(r.Context()), nil
}
