package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Error returns an "error" attribute, or the zero Attr when err is nil so
// handlers skip it entirely.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple errors under an "errors" key, skipping nils.
// Returns the zero Attr when no non-nil errors remain.
func Errors(errs ...error) slog.Attr {
	attrs := make([]any, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		attrs = append(attrs, slog.Any(strconv.Itoa(len(attrs)), err))
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}
	return slog.Group("errors", attrs...)
}

// Group wraps attributes under a common key.
func Group(key string, attrs ...slog.Attr) slog.Attr {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return slog.Group(key, args...)
}

// Duration returns a duration attribute in milliseconds, which keeps log
// aggregation queries unit-free.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Microseconds())/1000)
}

// Component tags a log line with the emitting subsystem.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
