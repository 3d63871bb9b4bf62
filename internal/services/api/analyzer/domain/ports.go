package domain

import (
	"context"

	"hashsleuth/internal/core/analyzer"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	AnalyzeOne(ctx context.Context, input string) (Analysis, error)
	AnalyzeBatch(ctx context.Context, inputs []string) ([]Analysis, error)
	Identify(ctx context.Context, input string) ([]analyzer.Result, error)
	Patterns(ctx context.Context) []PatternInfo
}
