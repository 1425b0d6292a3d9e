package shared

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logger at the given level name, falling back to
// debug when the name doesn't parse.
func NewLogger(level string) *logrus.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}
	return &logrus.Logger{
		Out:   os.Stdout,
		Level: lvl,
		Formatter: &logrus.TextFormatter{
			FullTimestamp: true,
		},
	}
}
