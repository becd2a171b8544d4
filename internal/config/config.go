package config

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/hadithscraper/internal/model"
)

// Default configuration values.
const (
	// DefaultBaseURL is the site the collections are scraped from.
	DefaultBaseURL = "https://sunnah.com"

	// DefaultOutputDir is where <collection>.json files are written.
	DefaultOutputDir = "hadith/data_new"

	// DefaultTimeout bounds each HTTP request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultDelay is the pause before each book page request.
	// It keeps the scrape at roughly two requests per second.
	DefaultDelay = 500 * time.Millisecond

	// DefaultUserAgent identifies hadithscraper in HTTP requests.
	DefaultUserAgent = "hadithscraper/1.0 (+https://github.com/nao1215/hadithscraper)"

	// AppName is the application name used for XDG directory paths.
	AppName = "hadithscraper"
)

// Config holds all configuration options for hadithscraper.
// It is built from defaults, then the YAML config file, then explicit CLI flags.
//
// Fields tagged yaml:"-" are runtime-only and never read from the config file.
type Config struct {
	// BaseURL is the scheme and host of the hadith site, without a trailing slash.
	BaseURL string `yaml:"base_url,omitempty"`

	// OutputDir is the directory the JSON documents are written to.
	// It is created if missing.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Timeout is the per-request timeout. Requests are never retried.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Delay is the pause before each book page request.
	Delay time.Duration `yaml:"delay,omitempty"`

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Selectors is the CSS selector table used to extract hadiths.
	Selectors Selectors `yaml:"selectors,omitempty"`

	// Collections adds to (or replaces entries of) the built-in registry.
	// Keys are collection identifiers as they appear in site URLs.
	Collections map[string]model.Collection `yaml:"collections,omitempty"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"-"`

	// ConfigFilePath is the explicit config file path, if any.
	ConfigFilePath string `yaml:"-"`

	// Targets are the collection identifiers to scrape, in order.
	// Empty means every registered collection.
	Targets []string `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		OutputDir: DefaultOutputDir,
		Timeout:   DefaultTimeout,
		Delay:     DefaultDelay,
		UserAgent: DefaultUserAgent,
		Selectors: DefaultSelectors(),
	}
}

// XDGConfigDir returns the XDG config directory for hadithscraper.
// On Linux: ~/.config/hadithscraper
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Registry returns the built-in collection registry extended with the
// collections from the config file. Config entries are appended in key order.
func (c *Config) Registry() *model.Registry {
	if len(c.Collections) == 0 {
		return model.DefaultRegistry()
	}

	ids := make([]string, 0, len(c.Collections))
	for id := range c.Collections {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	extra := make([]model.Collection, 0, len(ids))
	for _, id := range ids {
		col := c.Collections[id]
		col.ID = id
		extra = append(extra, col)
	}
	return model.DefaultRegistry().With(extra...)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrEmptyBaseURL
	}

	if c.OutputDir == "" {
		return ErrEmptyOutputDir
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Delay < 0 {
		return ErrInvalidDelay
	}

	return c.Selectors.Validate()
}
