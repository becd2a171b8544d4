package crawler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/hadithscraper/internal/config"
	"github.com/nao1215/hadithscraper/internal/model"
)

func TestFetcher(t *testing.T) {
	t.Parallel()

	t.Run("fetches and parses html", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			//nolint:errcheck // test handler
			_, _ = w.Write([]byte(`<html><head><title>صحيح البخاري</title></head><body><p id="ua">` + r.UserAgent() + `</p></body></html>`))
		}))
		defer server.Close()

		f := NewFetcher(server.URL, WithUserAgent("test-agent"))
		doc, err := f.Fetch(context.Background(), "/bukhari")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := doc.Find("title").Text(); got != "صحيح البخاري" {
			t.Errorf("expected arabic title, got %q", got)
		}
		if got := doc.Find("#ua").Text(); got != "test-agent" {
			t.Errorf("expected custom user agent, got %q", got)
		}
	})

	t.Run("decodes legacy charset", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=windows-1252")
			_, _ = w.Write([]byte("<html><body><p>caf\xe9</p></body></html>")) //nolint:errcheck
		}))
		defer server.Close()

		doc, err := NewFetcher(server.URL).Fetch(context.Background(), "/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := doc.Find("p").Text(); got != "café" {
			t.Errorf("expected decoded text 'café', got %q", got)
		}
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer server.Close()

		_, err := NewFetcher(server.URL).Fetch(context.Background(), "/missing")
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("expected ErrUnexpectedStatus, got %v", err)
		}
	})

	t.Run("timeout is an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(300 * time.Millisecond)
			_, _ = w.Write([]byte(`<html></html>`)) //nolint:errcheck
		}))
		defer server.Close()

		f := NewFetcher(server.URL, WithTimeout(50*time.Millisecond))
		if _, err := f.Fetch(context.Background(), "/slow"); err == nil {
			t.Error("expected timeout error")
		}
	})
}

func TestScraper(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/bukhari", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexHTML)) //nolint:errcheck
	})
	mux.HandleFunc("/bukhari/1", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(bookHTML)) //nolint:errcheck
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	s := NewScraper(NewFetcher(server.URL+"/"), config.DefaultSelectors())

	t.Run("books", func(t *testing.T) {
		t.Parallel()
		books, err := s.Books(context.Background(), "bukhari")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		numbers := make([]int, len(books))
		for i, b := range books {
			numbers[i] = b.Number
		}
		if diff := cmp.Diff([]int{1, 2, 10}, numbers); diff != "" {
			t.Errorf("book numbers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("hadiths", func(t *testing.T) {
		t.Parallel()
		hadiths, err := s.Hadiths(context.Background(), "bukhari", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(hadiths) != 3 {
			t.Fatalf("expected 3 hadiths, got %d", len(hadiths))
		}
		if diff := cmp.Diff(model.IntPtr(1), hadiths[0].Number); diff != "" {
			t.Errorf("number mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing book page is an error", func(t *testing.T) {
		t.Parallel()
		if _, err := s.Hadiths(context.Background(), "bukhari", 99); !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("expected ErrUnexpectedStatus, got %v", err)
		}
	})
}
