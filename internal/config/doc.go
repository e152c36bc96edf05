// Package config loads, normalizes, and validates rollcall configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ROLLCALL_SOLVER_URL. The Config type centralizes every knob the CLI needs:
// provider base URL and locale, challenge-solver endpoint, mapping database
// path, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
