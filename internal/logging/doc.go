// Package logging assembles structured slog loggers used across wordstat.
//
// It owns the console and JSON handlers, maps configured level and format
// strings onto slog, and exposes context helpers so each run's correlation ID
// is attached to every line. Diagnostics are written to standard error by
// default; standard output belongs to the report. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
package logging
