// Package model defines the core data structures used throughout hadithscraper.
//
// This package contains the following main types:
//   - Collection: A canonical hadith work and its display names
//   - Registry: The ordered set of collections the scraper knows about
//   - Book: A thematic subdivision of a collection with its hadiths
//   - Hadith: A single narration extracted from a book page
//   - Document: The per-collection result that is written to disk
//
// The models are serialized directly to the output JSON, so field order and
// omitempty tags are part of the output format.
package model
