// Package logging holds the logger shared by every package in the module.
// It discards everything until a caller installs a logger with Set.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the current logger. It is never nil.
func L() *zap.Logger {
	return current.Load()
}

// Set replaces the logger. Passing nil restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// New builds a logger for command line use. Development mode logs colored
// console lines at debug level, otherwise JSON at info level.
func New(development bool) (*zap.Logger, error) {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.Sampling = nil
	}
	config.DisableStacktrace = !development
	return config.Build()
}
