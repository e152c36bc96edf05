// Package match turns extracted episodes and mapping resolutions into scored
// match results.
//
// Confidence reflects how the episode number was recovered: a number parsed
// out of the title scores highest, an accessibility-label number lower, and a
// number inferred from the card's position in the listing lower still. An
// episode with no recoverable number never matches. When a caller supplies an
// expected title, lexical similarity against the extracted title can demote an
// otherwise confident match.
package match
