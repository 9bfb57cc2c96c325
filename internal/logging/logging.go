// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt" // Error wrapping
	"io"  // Output destination

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Setup sets the level and formatter of the standard logrus logger.
// JSON output is meant for production, text output for local runs.
func Setup(out io.Writer, level string, json bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logrus.SetLevel(lvl)
	if out != nil {
		logrus.SetOutput(out)
	}
	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
