// Package report writes scraped collection documents to their destinations.
//
// Two formats are supported:
//   - JSON: the canonical output, one <collection>.json file per collection
//   - Markdown: a readable rendering of a JSON document (export command)
//
// The JSON output is deterministic: the same document always yields the
// same bytes, so re-running a scrape against unchanged pages is a no-op diff.
package report
