// Package logging builds slog loggers and shared structured-logging helpers.
//
// Loggers are constructed once at startup (console or JSON format, optional
// log file alongside stderr) and threaded through components via
// NewComponentLogger, which stamps every record with a component field.
// WithContext augments a logger with correlation fields carried in
// context.Context by the services package.
//
// Diagnostic output is deliberately chatty at debug level: each extraction
// strategy hit or miss is logged so operators can tell "nothing there" apart
// from "extraction strategy failed" when the upstream markup drifts.
package logging
