package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures JSON logging on stdout. LOG_LEVEL overrides the
// default info level; unknown values are ignored.
func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
	}

	if v := os.Getenv("LOG_LEVEL"); len(v) != 0 {
		if level, err := logrus.ParseLevel(v); err == nil {
			logger.Level = level
		}
	}

	return &logger
}
