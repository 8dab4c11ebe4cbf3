// Package modkit provides module wiring and core deps
package modkit

import (
	"airreviews/internal/core/lexicon"
	"airreviews/internal/platform/config"
	"airreviews/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Lexicon *lexicon.Snapshot
}

// Logger returns Log or the root logger when unset
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// modules that need a lexicon still nil check it
func (d Deps) ZeroOK() bool { return true }
