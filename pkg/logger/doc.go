// Package logger builds configured slog loggers: JSON for production,
// text for development, with static service attributes. Decision-path
// packages accept the resulting *slog.Logger rather than constructing
// their own.
package logger
