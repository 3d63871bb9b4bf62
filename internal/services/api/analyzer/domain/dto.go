// Package domain holds DTOs for analyzer http and service contracts
package domain

import (
	"hashsleuth/internal/core/analyzer"
)

// AnalyzeInput carries one input string or a batch
// exactly one of the two fields should be set
type AnalyzeInput struct {
	Input  string   `json:"input,omitempty" validate:"omitempty,max=10000" example:"5d41402abc4b2a76b9719d911017c592"`
	Inputs []string `json:"inputs,omitempty" validate:"omitempty,max=100,dive,max=10000"`
}

// IdentifyInput is the single input identify payload
type IdentifyInput struct {
	Input string `json:"input" validate:"required,max=10000" example:"5d41402abc4b2a76b9719d911017c592"`
}

// Analysis is one analyzed input with service metadata around the core record
type Analysis struct {
	ID         string `json:"id" example:"0b0ef1f3-96a3-4b6b-9c34-5c2b9a4a2f10"`
	AnalyzedAt string `json:"analyzed_at" example:"2025-08-25T13:05:00Z"`
	analyzer.Record
}

// PatternInfo is the read-only catalog listing row
type PatternInfo struct {
	ID          string `json:"id" example:"md5"`
	Name        string `json:"name" example:"MD5"`
	Length      int    `json:"length,omitempty" example:"32"`
	Charset     string `json:"charset,omitempty" example:"hex"`
	Prefixes    int    `json:"prefixes" example:"0"`
	Suffixes    int    `json:"suffixes" example:"0"`
	HasRegex    bool   `json:"has_regex" example:"true"`
	Example     string `json:"example,omitempty" example:"5d41402abc4b2a76b9719d911017c592"`
	Description string `json:"description,omitempty"`
}
