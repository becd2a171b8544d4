// Package main provides the entry point for the hadithscraper CLI.
//
// hadithscraper downloads hadith collections from sunnah.com and saves each
// one as a structured JSON document.
//
// Usage:
//
//	hadithscraper                  # every known collection
//	hadithscraper bukhari nawawi40 # selected collections
//	hadithscraper export hadith/data_new/bukhari.json -o bukhari.md
//
// See --help for all available options.
package main

// main is the entry point for hadithscraper.
func main() {
	Execute()
}
