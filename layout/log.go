package layout

import "log/slog"

var logger = slog.Default()

// SetLogger replaces the logger used for solver diagnostics. A nil logger
// discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
