// Package logging configures slog loggers for the scam CLI and editor.
//
// New builds a logger from explicit Options; NewFromConfig derives them from
// the loaded configuration, writing human-readable records to stderr and, when
// a log directory is configured, JSON records to scam.log. The console handler
// prints a one-line header (time, level, component, subject, message) followed
// by indented fields; debug records also carry their source location.
//
// Field constants keep attribute keys consistent across packages, and the
// context helpers attach the per-invocation run identifier.
package logging
