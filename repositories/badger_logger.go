package repositories

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

var _ badger.Logger = (*BadgerLogger)(nil)

// BadgerLogger redirects Badger's printf-style output to the application logger.
type BadgerLogger struct {
	log *slog.Logger
}

func NewBadgerLogger(log *slog.Logger) *BadgerLogger {
	return &BadgerLogger{log: log.With("component", "badger")}
}

func (l *BadgerLogger) Errorf(format string, args ...any) {
	l.log.Error(message(format, args))
}

func (l *BadgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(message(format, args))
}

func (l *BadgerLogger) Infof(format string, args ...any) {
	l.log.Info(message(format, args))
}

func (l *BadgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(message(format, args))
}

// Badger terminates most lines with a newline.
func message(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
