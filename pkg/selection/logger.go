package selection

// Logger records soft failures the manager swallows, such as a malformed
// persisted value. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(format string, args ...any)

// Printf implements Logger.
func (f LoggerFunc) Printf(format string, args ...any) {
	if f != nil {
		f(format, args...)
	}
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}
