package log

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"

	"github.com/ledgerkit/chaincrypto/crypto"
)

// LogDebug gates debug output of loggers returned by NewLogger. Filters
// built with NewFilter decide independently.
var LogDebug = true

// Logger is the logging interface used across the module.
type Logger interface {
	// Error logs a message at level ERROR.
	Error(msg string, keyvals ...any)
	// Info logs a message at level INFO.
	Info(msg string, keyvals ...any)
	// Warn logs a message at level WARN.
	Warn(msg string, keyvals ...any)
	// Debug logs a message at level DEBUG.
	Debug(msg string, keyvals ...any)

	// With returns a new contextual logger with keyvals prepended to those
	// passed to calls to Info, Warn, Debug or Error.
	With(keyvals ...any) Logger

	// Impl returns the underlying logger implementation.
	// It is used to access the full functionalities of the underlying logger.
	// Advanced users can type cast the returned value to the actual logger.
	Impl() any
}

type slogLogger struct {
	srcLogger *slog.Logger
}

// Interface assertions.
var _ Logger = (*slogLogger)(nil)

// NewLogger returns a logger that writes msg and keyvals to w using slog as an
// underlying logger.
//
// github.com/lmittmann/tint library is used to colorize the output.
//
// NOTE:
//   - the underlying logger could be swapped with something else in the future
//   - w must be safe for concurrent use by multiple goroutines if the returned
//     Logger will be used concurrently.
func NewLogger(w io.Writer) Logger {
	return NewLoggerWithColor(w, true)
}

// NewLoggerWithColor is the same as NewLogger, but colors can be turned off.
func NewLoggerWithColor(w io.Writer, color bool) Logger {
	return &slogLogger{slog.New(tint.NewHandler(w, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: !color,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a = redactSecrets(groups, a)
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		},
	},
	))}
}

func (l *slogLogger) Error(msg string, keyvals ...any) {
	l.srcLogger.Error(msg, keyvals...)
}

func (l *slogLogger) Info(msg string, keyvals ...any) {
	l.srcLogger.Info(msg, keyvals...)
}

func (l *slogLogger) Warn(msg string, keyvals ...any) {
	l.srcLogger.Warn(msg, keyvals...)
}

func (l *slogLogger) Debug(msg string, keyvals ...any) {
	if LogDebug {
		l.srcLogger.Debug(msg, keyvals...)
	}
}

func (l *slogLogger) With(keyvals ...any) Logger {
	return &slogLogger{l.srcLogger.With(keyvals...)}
}

// Impl returns the slog.Logger.
func (l *slogLogger) Impl() any {
	return l.srcLogger
}

// NewJSONLogger returns a Logger that writes msg and keyvals to w as using
// slog (slog.NewJSONHandler).
//
// NOTE:
//   - the underlying logger could be swapped with something else in the future
//   - w must be safe for concurrent use by multiple goroutines if the returned
//     Logger will be used concurrently.
func NewJSONLogger(w io.Writer) Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: redactSecrets,
	}))
	return &slogLogger{logger}
}

// NewJSONLoggerNoTS is the same as NewJSONLogger, but without the timestamp.
// Used for testing purposes.
func NewJSONLoggerNoTS(w io.Writer) Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// Remove time from the output for predictable test output.
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return redactSecrets(nil, a)
		},
	}))
	return &slogLogger{logger}
}

// redactSecrets replaces secret keys with their type. PrivKey's String
// method is already redacted but a handler may format the value through
// reflection, or a caller may pass the raw Bytes.
func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if privKey, ok := a.Value.Any().(crypto.PrivKey); ok {
		return slog.String(a.Key, "REDACTED("+privKey.Type()+")")
	}
	return a
}
