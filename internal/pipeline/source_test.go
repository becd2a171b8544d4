package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nao1215/hadithscraper/internal/model"
)

var errFakeFetch = errors.New("fake fetch failed")

// fakeSource is an in-memory BookSource keyed by collection.
type fakeSource struct {
	mu sync.Mutex

	books   map[string][]model.Book
	hadiths map[string]map[int][]model.Hadith

	// failBooks lists collections whose book list fails.
	failBooks map[string]bool

	// failHadiths lists "<collection>/<book>" pages that fail.
	failHadiths map[string]bool

	// requests records every call in order.
	requests []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		books:       make(map[string][]model.Book),
		hadiths:     make(map[string]map[int][]model.Hadith),
		failBooks:   make(map[string]bool),
		failHadiths: make(map[string]bool),
	}
}

// addBooks registers n books for collection, book k carrying k hadiths.
func (f *fakeSource) addBooks(collection string, n int) {
	f.hadiths[collection] = make(map[int][]model.Hadith)
	for k := 1; k <= n; k++ {
		f.books[collection] = append(f.books[collection], model.Book{
			Number:  k,
			Name:    fmt.Sprintf("Book %d", k),
			Hadiths: make([]model.Hadith, 0),
		})
		hs := make([]model.Hadith, 0, k)
		for j := 1; j <= k; j++ {
			hs = append(hs, model.Hadith{
				Number:  model.IntPtr(j),
				English: fmt.Sprintf("%s %d.%d", collection, k, j),
				Arabic:  "حديث",
			})
		}
		f.hadiths[collection][k] = hs
	}
}

func (f *fakeSource) Books(_ context.Context, collection string) ([]model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, "/"+collection)
	if f.failBooks[collection] {
		return nil, errFakeFetch
	}
	books := make([]model.Book, len(f.books[collection]))
	copy(books, f.books[collection])
	return books, nil
}

func (f *fakeSource) Hadiths(_ context.Context, collection string, book int) ([]model.Hadith, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := fmt.Sprintf("%s/%d", collection, book)
	f.requests = append(f.requests, "/"+key)
	if f.failHadiths[key] {
		return nil, errFakeFetch
	}
	return f.hadiths[collection][book], nil
}

func (f *fakeSource) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}
