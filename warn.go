package refined

import (
	"log/slog"
	"sync"
)

var (
	loggerMu  sync.RWMutex
	pkgLogger *slog.Logger
)

// SetLogger overrides the logger used for configuration warnings.
// Passing nil restores the process default.
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	pkgLogger = l
}

func logger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if pkgLogger != nil {
		return pkgLogger
	}
	return slog.Default()
}
