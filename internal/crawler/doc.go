// Package crawler fetches sunnah.com pages and extracts book and hadith records.
//
// # Components
//
//   - Fetcher: GETs a page through resty and returns a parsed goquery document
//   - ParseBookList: extracts the book index of a collection page
//   - ParseHadiths: extracts hadith records from a book page using the
//     configured selector table
//   - CleanBookName: strips number prefixes and duplicated Arabic from labels
//   - Scraper: ties the above together per collection and book
//
// # Politeness
//
// The crawler never issues concurrent requests and never retries. The delay
// between book requests is applied by the caller (see package pipeline).
//
// # Usage
//
//	fetcher := crawler.NewFetcher("https://sunnah.com", crawler.WithTimeout(30*time.Second))
//	scraper := crawler.NewScraper(fetcher, config.DefaultSelectors())
//	books, err := scraper.Books(ctx, "bukhari")
package crawler
