// Package config provides configuration structures and utilities for hadithscraper.
// It defines the scrape settings (target site, politeness delay, timeouts, output
// location), the CSS selector table used for extraction, and the YAML config
// file that can override any of them.
package config
