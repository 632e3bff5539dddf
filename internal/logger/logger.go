// Package logger holds the process-wide Zap sugared logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger for the given environment: JSON output
// for "production", a no-op logger for "test" so test runs stay quiet,
// and a human-readable console encoder otherwise. Only the first call
// takes effect.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger

		switch env {
		case "production":
			prod, err := zap.NewProduction()
			if err != nil {
				prod = zap.NewNop()
			}
			base = prod
		case "test":
			base = zap.NewNop()
		default:
			dev, err := zap.NewDevelopment()
			if err != nil {
				dev = zap.NewNop()
			}
			base = dev
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development
// logger on first use if Init was never called.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
