// Package modkit provides module wiring and core deps
package modkit

import (
	"hashsleuth/internal/core/catalog"
	"hashsleuth/internal/platform/config"
	"hashsleuth/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Catalog *catalog.Catalog
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the catalog
func (d Deps) ZeroOK() bool { return true }
