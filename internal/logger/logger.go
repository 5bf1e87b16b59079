package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

type LogOptions struct {
	// Verbose switches the level to Debug.
	Verbose      bool
	DisableColor bool
	HideLogTime  bool
}

// Init configures the standard logrus logger. Logs go to stderr so that
// traversal output on stdout stays machine readable.
func Init(options LogOptions) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:    options.DisableColor,
		DisableTimestamp: options.HideLogTime,
		FullTimestamp:    !options.HideLogTime,
		TimestampFormat:  "2006-01-02 15:04:05",
	})

	logrus.SetLevel(logrus.InfoLevel)
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
