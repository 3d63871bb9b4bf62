package module

import (
	"context"

	"hashsleuth/internal/core/analyzer"
	"hashsleuth/internal/services/api/analyzer/domain"
	ansvc "hashsleuth/internal/services/api/analyzer/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAnalyzerPort struct{ svc ansvc.Service }

// AnalyzeOne classifies a single input
func (a adaptAnalyzerPort) AnalyzeOne(ctx context.Context, input string) (domain.Analysis, error) {
	return a.svc.AnalyzeOne(ctx, input)
}

// AnalyzeBatch classifies a batch of inputs
func (a adaptAnalyzerPort) AnalyzeBatch(ctx context.Context, inputs []string) ([]domain.Analysis, error) {
	return a.svc.AnalyzeBatch(ctx, inputs)
}

// Identify returns only the ranked candidates for one input
func (a adaptAnalyzerPort) Identify(ctx context.Context, input string) ([]analyzer.Result, error) {
	return a.svc.Identify(ctx, input)
}

// Patterns lists the loaded catalog
func (a adaptAnalyzerPort) Patterns(ctx context.Context) []domain.PatternInfo {
	return a.svc.Patterns(ctx)
}
