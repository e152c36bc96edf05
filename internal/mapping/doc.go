// Package mapping persists per-series season mappings and reconciles locally
// extracted episode numbers against them.
//
// A season mapping rebases a local season's numbering onto the provider's
// continuous numbering: provider episode = local episode + offset, optionally
// bounded by a [first, last] range. Mappings live in a SQLite database guarded
// by a sidecar lock so concurrent invocations never interleave writes.
package mapping
