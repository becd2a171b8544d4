package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/nao1215/hadithscraper/internal/model"
)

// ErrCollectionsFailed is returned by Runner.Run when at least one
// collection could not be scraped.
var ErrCollectionsFailed = errors.New("some collections failed")

// Factory creates a fresh pipeline for a collection.
type Factory func(c model.Collection) *Pipeline

// Runner scrapes collections one after another.
type Runner struct {
	// registry resolves collection identifiers.
	registry *model.Registry

	// outputDir is created before any collection is scraped.
	outputDir string

	// factory creates the pipeline for each collection.
	factory Factory

	logger *slog.Logger

	// progress receives human-readable progress lines.
	progress io.Writer

	// warnings receives notices about unknown collections.
	warnings io.Writer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger sets the logger for the runner.
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithRunnerProgress sets where progress lines are written.
func WithRunnerProgress(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.progress = w
	}
}

// WithWarnings sets where unknown collection notices are written.
func WithWarnings(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.warnings = w
	}
}

// WithFactory replaces the pipeline factory.
func WithFactory(f Factory) RunnerOption {
	return func(r *Runner) {
		r.factory = f
	}
}

// NewRunner creates a Runner that scrapes from source into outputDir,
// waiting delay before each book request.
func NewRunner(source BookSource, registry *model.Registry, outputDir string, delay time.Duration, opts ...RunnerOption) *Runner {
	r := &Runner{
		registry:  registry,
		outputDir: outputDir,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.progress == nil {
		r.progress = io.Discard
	}
	if r.warnings == nil {
		r.warnings = io.Discard
	}
	if r.registry == nil {
		r.registry = model.DefaultRegistry()
	}
	if r.factory == nil {
		r.factory = r.defaultFactory(source, delay)
	}

	return r
}

// defaultFactory builds the book list, hadith and write steps.
func (r *Runner) defaultFactory(source BookSource, delay time.Duration) Factory {
	return func(_ model.Collection) *Pipeline {
		stepOpts := []StepOption{
			WithStepLogger(r.logger),
			WithProgress(r.progress),
		}

		p := New(WithLogger(r.logger))
		p.AddSteps(
			NewBookListStep(source, stepOpts...),
			NewHadithStep(source, delay, stepOpts...),
			NewWriteStep(r.outputDir, stepOpts...),
		)
		return p
	}
}

// Run scrapes the given collections in order, or every registered
// collection when ids is empty.
//
// Unknown identifiers are reported and skipped. A failed collection does
// not stop the others; Run returns ErrCollectionsFailed at the end if any
// collection failed. Cancellation of ctx stops the run immediately.
func (r *Runner) Run(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		ids = r.registry.IDs()
	}

	if err := os.MkdirAll(r.outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var failed []error
	for _, id := range ids {
		c, err := r.registry.Lookup(id)
		if err != nil {
			r.logger.Warn("unknown collection", "collection", id)
			_, _ = fmt.Fprintf(r.warnings, "Unknown collection: %s\n", id) //nolint:errcheck // best effort
			continue
		}

		if err := r.runCollection(ctx, c); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failed = append(failed, fmt.Errorf("%s: %w", c.ID, err))
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %w", ErrCollectionsFailed, errors.Join(failed...))
	}
	return nil
}

func (r *Runner) runCollection(ctx context.Context, c model.Collection) error {
	_, _ = fmt.Fprintf(r.progress, "\nScraping %s...\n", c.Name) //nolint:errcheck // best effort

	doc := model.NewDocument(c)
	start := time.Now()

	if err := r.factory(c).Execute(ctx, doc); err != nil {
		r.logger.Error("collection failed",
			"collection", c.ID,
			"error", err,
		)
		return err
	}

	r.logger.Debug("collection finished",
		"collection", c.ID,
		"elapsed", time.Since(start),
	)
	return nil
}
