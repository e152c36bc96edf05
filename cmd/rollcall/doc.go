// Command rollcall extracts series and episode metadata from provider pages,
// reconciles episode numbering through stored season mappings, and scores the
// results.
package main
