// Package services provides shared error classification and context
// annotation helpers used across extraction and reconciliation.
//
// Errors are tagged with sentinel markers via Wrap so callers can classify a
// failure (mapping inconsistency, mandatory field miss, transient fetch
// failure, ...) without string matching. Context helpers carry correlation
// identifiers and the active series/operation so component loggers emit
// consistent structured fields.
package services
