package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/hadithscraper/internal/model"
)

// JSONWriter outputs documents in JSON format.
//
// Non-ASCII text is written literally and HTML characters (<, >, &) are not
// escaped.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// NewPrettyJSONWriter is a WriterFactory for the collection file format.
func NewPrettyJSONWriter(output io.Writer) Writer {
	return NewJSONWriter(output, WithPrettyPrint())
}

// Write outputs the document in JSON format followed by a newline.
func (w *JSONWriter) Write(doc *model.Document) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent(w.indentPrefix, w.indentString)
	}

	// Encode appends the trailing newline.
	if err := enc.Encode(doc); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}

// ReadDocument decodes a collection document previously written by JSONWriter.
func ReadDocument(r io.Reader) (*model.Document, error) {
	var doc model.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Books == nil {
		doc.Books = make([]model.Book, 0)
	}
	return &doc, nil
}
