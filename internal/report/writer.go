package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/hadithscraper/internal/model"
)

// Writer defines the interface for document output.
type Writer interface {
	// Write outputs the document to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(doc *model.Document) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// WriterFactory creates a Writer for the given destination.
type WriterFactory func(output io.Writer) Writer

// WriteFile writes doc to path using a Writer from newWriter.
//
// The document is first written to a temporary file in the same directory and
// then renamed over path, so readers never observe a partially written file
// and an existing file is replaced as a whole.
func WriteFile(path string, doc *model.Document, newWriter WriterFactory) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()           //nolint:errcheck // already failing
			_ = os.Remove(tmp.Name()) //nolint:errcheck // best effort cleanup
		}
	}()

	if _, err = newWriter(tmp).Write(doc); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil { //nolint:gosec // output is meant to be shared
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// CollectionPath returns <dir>/<collection>.json.
func CollectionPath(dir, collection string) string {
	return filepath.Join(dir, collection+".json")
}
