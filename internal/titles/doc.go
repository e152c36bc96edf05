// Package titles parses free-text episode titles into season number, episode
// number, and cleaned title.
//
// The source site prefixes episode titles with locale-dependent markers such
// as "S2 E10: ..." (English, French, German conventions share the S letter)
// or "T2 E10 - ..." (Spanish/Portuguese temporada). Both markers are optional
// and matching is case-insensitive. Tokenize never fails: input that carries
// no recognizable markers is returned whole as the title.
package titles
