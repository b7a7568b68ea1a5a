package charts

import (
	"log/slog"
)

var logger = slog.Default()

// SetLogger replaces the logger used to report the elements that could not
// be drawn. It is not safe to call while charts are rendered.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// Logger gives the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger
}
