// Package obslog adapts a structured logrus.FieldLogger to the
// nthprime.Logger sink the core accepts, so advisory messages reach the
// CLI's chosen output format without the core ever importing logrus.
package obslog

import (
	"github.com/sirupsen/logrus"

	"github.com/lawsonwillard/nthprime/pkg/nthprime"
)

// New returns an nthprime.Logger backed by logger, tagged with the
// given method and n so every advisory line is attributable to a call.
func New(logger *logrus.Logger, method string, n int64) nthprime.Logger {
	entry := logger.WithFields(logrus.Fields{
		"method": method,
		"n":      n,
	})
	return nthprime.LoggerFunc(func(format string, args ...any) {
		entry.Infof(format, args...)
	})
}

// NewLogger builds the process-wide logrus.Logger, formatted as JSON or
// text depending on format.
func NewLogger(format string, verbose bool) *logrus.Logger {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
