package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/nao1215/hadithscraper/internal/model"
	"github.com/nao1215/hadithscraper/internal/report"
)

// BookSource retrieves book listings and hadiths for a collection.
// *crawler.Scraper is the production implementation.
type BookSource interface {
	// Books returns the collection's books in ascending order.
	Books(ctx context.Context, collection string) ([]model.Book, error)

	// Hadiths returns the hadiths of one book in page order.
	Hadiths(ctx context.Context, collection string, book int) ([]model.Hadith, error)
}

// stepBase holds what every step shares: a logger and a progress sink.
type stepBase struct {
	logger   *slog.Logger
	progress io.Writer
}

// StepOption configures the logger and progress output of a step.
type StepOption func(*stepBase)

// WithStepLogger sets the logger used by a step.
func WithStepLogger(logger *slog.Logger) StepOption {
	return func(b *stepBase) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithProgress sets where human-readable progress lines are written.
// Progress is discarded by default.
func WithProgress(w io.Writer) StepOption {
	return func(b *stepBase) {
		if w != nil {
			b.progress = w
		}
	}
}

func newStepBase(opts []StepOption) stepBase {
	b := stepBase{
		logger:   slog.Default(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// printf writes a progress line. Progress output is best effort.
func (b stepBase) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(b.progress, format, args...) //nolint:errcheck // progress is best effort
}

// BookListStep discovers the books of the collection.
type BookListStep struct {
	stepBase
	source BookSource
}

// NewBookListStep creates a step that fills doc.Books from source.
func NewBookListStep(source BookSource, opts ...StepOption) *BookListStep {
	return &BookListStep{
		stepBase: newStepBase(opts),
		source:   source,
	}
}

// Name returns the step name.
func (s *BookListStep) Name() string {
	return "book_list"
}

// Do fetches the book list. A failure here fails the whole collection.
func (s *BookListStep) Do(ctx context.Context, doc *model.Document) error {
	books, err := s.source.Books(ctx, doc.Collection)
	if err != nil {
		return fmt.Errorf("failed to list books of %s: %w", doc.Collection, err)
	}

	doc.Books = books
	s.logger.Info("found books",
		"collection", doc.Collection,
		"books", len(books),
	)
	s.printf("  Found %d books\n", len(books))

	return nil
}

// HadithStep fetches the hadiths of every book in the document.
type HadithStep struct {
	stepBase
	source BookSource

	// delay is the pause before each book request.
	delay time.Duration
}

// NewHadithStep creates a step that fills each book's hadiths from source,
// pausing for delay before every request.
func NewHadithStep(source BookSource, delay time.Duration, opts ...StepOption) *HadithStep {
	return &HadithStep{
		stepBase: newStepBase(opts),
		source:   source,
		delay:    delay,
	}
}

// Name returns the step name.
func (s *HadithStep) Name() string {
	return "hadiths"
}

// Do fetches hadiths book by book.
// A failed book is logged and left with an empty hadith list; only
// cancellation of ctx stops the step early.
func (s *HadithStep) Do(ctx context.Context, doc *model.Document) error {
	total := 0

	for i := range doc.Books {
		book := &doc.Books[i]

		if err := sleep(ctx, s.delay); err != nil {
			return err
		}

		s.printf("  Book %d: %s", book.Number, book.Name)

		hadiths, err := s.source.Hadiths(ctx, doc.Collection, book.Number)
		if err != nil {
			if ctx.Err() != nil {
				s.printf("\n")
				return ctx.Err()
			}
			s.logger.Error("book fetch failed",
				"collection", doc.Collection,
				"book", book.Number,
				"error", err,
			)
			s.printf(" - ERROR: %v\n", err)
			book.Hadiths = make([]model.Hadith, 0)
			continue
		}

		book.Hadiths = hadiths
		total += len(hadiths)
		s.logger.Debug("book scraped",
			"collection", doc.Collection,
			"book", book.Number,
			"name", book.Name,
			"hadiths", len(hadiths),
		)
		s.printf(" - %d hadiths\n", len(hadiths))
	}

	s.logger.Info("collection scraped",
		"collection", doc.Collection,
		"books", len(doc.Books),
		"hadiths", total,
	)
	s.printf("  Total: %d hadiths\n", total)

	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WriteStep saves the document to <dir>/<collection>.json.
type WriteStep struct {
	stepBase
	dir       string
	newWriter report.WriterFactory
}

// NewWriteStep creates a step that writes the document into dir.
func NewWriteStep(dir string, opts ...StepOption) *WriteStep {
	return &WriteStep{
		stepBase:  newStepBase(opts),
		dir:       dir,
		newWriter: report.NewPrettyJSONWriter,
	}
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Path returns the file the document of collection is written to.
func (s *WriteStep) Path(collection string) string {
	return report.CollectionPath(s.dir, collection)
}

// Do writes the document, replacing any previous file.
func (s *WriteStep) Do(_ context.Context, doc *model.Document) error {
	path := s.Path(doc.Collection)
	if err := report.WriteFile(path, doc, s.newWriter); err != nil {
		return err
	}

	s.logger.Info("collection saved",
		"collection", doc.Collection,
		"path", path,
	)
	s.printf("  Saved to %s\n", path)

	return nil
}
