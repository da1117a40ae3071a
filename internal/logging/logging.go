// Package logging builds the structured logger shared by the engine and the
// server.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger at level (info when empty or unknown). Output is
// JSON unless format is "text".
func New(level, format string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.EqualFold(format, "text") {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}
	log.SetOutput(os.Stdout)

	if err != nil && level != "" {
		log.WithField("invalid_level", level).Warn("unknown log level, using info")
	}
	return log
}

// Discard returns a logger that writes nothing.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

// WithGame scopes a logger to one game.
func WithGame(log *logrus.Logger, gameID, home, away string) *logrus.Entry {
	if log == nil {
		log = Discard()
	}
	return log.WithFields(logrus.Fields{
		"game_id": gameID,
		"home":    home,
		"away":    away,
	})
}
