// Package markup implements the resilient extraction cascade used against the
// source site's obfuscated, versioned HTML.
//
// A Strategy is a named pure function from a parsed page to an optional string
// value. A Chain is an ordered list of strategies for one field, evaluated in
// priority order until one yields a value: typically a structural pattern
// first (class-prefix regex or selector against markup that changes between
// page revisions), then a meta-tag fallback (Open Graph data that survives
// most redesigns). Adding or reordering a fallback is a data change, not a
// control-flow change.
//
// Every strategy evaluation is total. A panic inside a strategy is recovered,
// logged, and treated as a miss so one broken assumption about the markup
// never takes down extraction of the remaining fields or cards.
package markup
