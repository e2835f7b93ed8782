// Package logger owns the process-wide structured logger.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance. Init must be called once at startup
// before anything writes to it.
var Log = logrus.New()

// Init configures level and format from the environment. LOG_LEVEL takes
// any logrus level name (default "info"); LOG_FORMAT=json switches to
// JSON output for log collection, anything else keeps the dev-friendly
// text formatter.
func Init() {
	levelName, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Log.SetOutput(os.Stdout)
}
