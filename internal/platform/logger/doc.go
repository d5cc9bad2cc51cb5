// Package logger provides structured logging for the application.
//
// It builds JSON log/slog loggers at the configured level and carries
// request-scoped loggers through context.Context.
package logger
