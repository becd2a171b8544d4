// Package log provides the structured logger used by hadithscraper, built on
// top of the standard slog package.
//
// The TruncatingHandler shortens long string attribute values before they
// reach the underlying handler. Debug logs carry extracted hadith text, and a
// full Arabic body per line makes them unreadable.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("extracted hadith", "english", text) // shortened to DefaultMaxValueRunes
package log
