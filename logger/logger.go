package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLogLevel is used when LOG_LEVEL is unset or invalid
const DefaultLogLevel = logrus.InfoLevel

var log *logrus.Logger

// Init configures the global logger. The level comes from the LOG_LEVEL
// environment variable.
func Init() {
	log = logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)

	level := DefaultLogLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			log.Warnf("invalid log level %q, using %q", raw, DefaultLogLevel)
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)
}

// L returns the global logger, initializing it lazily so packages can log
// before main has run (tests in particular)
func L() *logrus.Logger {
	if log == nil {
		Init()
	}
	return log
}
