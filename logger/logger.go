package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults.
var Log = logrus.New()

// Init configures Log from the environment. Call it once from main.
//
// LOG_LEVEL picks the level (default "info"). LOG_FORMAT=json switches to the
// JSON formatter; anything else uses colored text.
func Init() {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Silence discards all output. Used by tests.
func Silence() {
	Log.SetOutput(io.Discard)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
