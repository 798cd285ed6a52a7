// Package logger provides slog construction and attribute helpers shared
// across the module. Handlers are configured from environment variables
// (LOG_LEVEL, LOG_FORMAT); the attr helpers keep error and timing fields
// consistent so log queries work the same everywhere.
package logger
