package gpio

// Logger is the logging interface used by the platform adapters. Messages
// are plain strings rather than format verbs so TinyGo builds stay free of
// the fmt machinery and its allocations.
//
// The core pin operations never log; only adapter init and degradation do.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// defaultLogger backs Config.Logger when it is left nil. Build-specific
// init functions replace it with a real sink (see logger-std.go and
// logger-tinygo.go).
var defaultLogger Logger = nopLogger{}

// SetLogger replaces the package default logger. Passing nil silences it.
func SetLogger(l Logger) {
	if l == nil {
		defaultLogger = nopLogger{}
		return
	}
	defaultLogger = l
}

type nopLogger struct{}

func (nopLogger) Debug(msg string) {}
func (nopLogger) Info(msg string)  {}
func (nopLogger) Warn(msg string)  {}
func (nopLogger) Error(msg string) {}
