// Package textutil provides text processing utilities for episode title
// comparison and slug handling.
//
// Fingerprints are term-frequency vectors built from lowercased titles with
// short tokens filtered out; cosine similarity between two fingerprints gives
// the match scorer a cheap signal that a fallback-identified episode carries
// the title the caller expected. Slugify converts display titles into the
// URL path segment form the source site uses.
package textutil
