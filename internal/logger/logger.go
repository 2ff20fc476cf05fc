package logger

// Log levels accepted by New. Anything else falls back to debug.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New builds a console logger at the given level. Each caller owns its
// instance; there is no package-level singleton.
func New(level string) *Logger {
	return newZapLogger(level)
}
