package crawler

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nao1215/hadithscraper/internal/config"
	"github.com/nao1215/hadithscraper/internal/model"
)

// Scraper retrieves book lists and hadiths for collections on the site.
type Scraper struct {
	// fetcher downloads and parses pages.
	fetcher *Fetcher

	// selectors is the extraction table for book pages.
	selectors config.Selectors
}

// NewScraper creates a Scraper using the given fetcher and selector table.
func NewScraper(fetcher *Fetcher, selectors config.Selectors) *Scraper {
	return &Scraper{fetcher: fetcher, selectors: selectors}
}

// Books returns the collection's books in ascending number order.
// Network and HTTP errors are returned as is; there is no partial result.
func (s *Scraper) Books(ctx context.Context, collection string) ([]model.Book, error) {
	doc, err := s.fetcher.Fetch(ctx, "/"+url.PathEscape(collection))
	if err != nil {
		return nil, fmt.Errorf("failed to get book list for %s: %w", collection, err)
	}
	return ParseBookList(doc, collection), nil
}

// Hadiths returns the hadiths on the page of one book, in page order.
func (s *Scraper) Hadiths(ctx context.Context, collection string, book int) ([]model.Hadith, error) {
	path := "/" + url.PathEscape(collection) + "/" + strconv.Itoa(book)
	doc, err := s.fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get hadiths for %s book %d: %w", collection, book, err)
	}
	return ParseHadiths(doc, s.selectors), nil
}
