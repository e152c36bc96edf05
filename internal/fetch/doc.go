// Package fetch retrieves provider pages over HTTP.
//
// The client carries the configured user agent, language, timeout, and retry
// policy on every request. When the provider answers with an anti-bot
// challenge instead of markup, the request is replayed through the configured
// challenge solver; without one, the challenge surfaces as a transient error
// so callers can retry later or feed saved markup in by hand.
package fetch
