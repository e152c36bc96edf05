// Package scrape assembles series, episode, and search-result records from
// raw source-site markup.
//
// Page-level fields run through markup.Chain fallback cascades (structural
// pattern first, Open Graph meta tag second). Episode and search cards are
// processed independently in document order: a card that cannot yield a
// resolvable identity is dropped and logged, and a failure inside one card
// never aborts extraction of its siblings. Episode numbers embedded in titles
// are recovered by the titles tokenizer, with an accessibility-label fallback
// when the title carries no marker; the chosen path is recorded on the record
// so the match scorer can weigh its confidence.
//
// A series record without a title is an extraction failure. Everything else
// is optional and left unset when no strategy produces it.
package scrape
