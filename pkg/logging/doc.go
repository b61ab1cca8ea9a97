// Package logging provides structured logging helpers built on log/slog.
//
// The engine distinguishes two kinds of logging: the operational logger
// created here (developer-facing warnings and errors), and the user-facing
// request log handled by pkg/requestlog.
package logging
