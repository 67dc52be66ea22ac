package colorspace

import (
	"log/slog"
	"sync/atomic"
)

// discard is the logger in effect until SetLogger installs another one.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discard)
}

// SetLogger sets the logger used by colorspace and the readability package.
// Nothing is logged by default; a nil l restores that. Safe for concurrent use.
//
// Records are emitted at [slog.LevelDebug] only, when a readability search
// ends below its target.
//
//	colorspace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
