package logging

import (
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var session = uuid.NewString()

// SetOutput configures logging output for standard loggers.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	logrus.SetOutput(w)
}

// SetLogLevel is fatal for unknown level names.
func SetLogLevel(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to set log level. Valid log levels are:", logrus.AllLevels)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Session returns an entry tagged with this process's session id, so lines
// written by both threads of one run can be told apart from other runs.
func Session() *logrus.Entry {
	return logrus.WithField("session", session)
}
