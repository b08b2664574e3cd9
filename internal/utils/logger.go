// internal/utils/logger.go
package utils

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fanstore/storefront-backend/internal/config"
)

// SetupLogger configures the standard logrus logger from config.
func SetupLogger(cfg config.LogConfig) {
	logrus.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.WithField("level", cfg.Level).Warn("Unknown log level, falling back to info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
