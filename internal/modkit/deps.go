// Package modkit provides module wiring and core deps
package modkit

import (
	"freightdesk/internal/core/vocab"
	"freightdesk/internal/platform/config"
	"freightdesk/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
	// Vocab is the lookup table set engines are built from; nil means the embedded pack
	Vocab *vocab.Vocabulary
}

// Logger returns Log or the root logger
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}

// Vocabulary returns Vocab or the embedded pack
func (d Deps) Vocabulary() (*vocab.Vocabulary, error) {
	if d.Vocab != nil {
		return d.Vocab, nil
	}
	return vocab.Default()
}
