package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueRunes is the default limit for string attribute values.
const DefaultMaxValueRunes = 80

// Ellipsis is appended to shortened values.
const Ellipsis = "…"

// TruncatingHandler wraps an slog.Handler and shortens string attribute
// values longer than maxRunes. Counting is by rune so Arabic text is never
// cut in the middle of a character.
type TruncatingHandler struct {
	// handler is the underlying slog handler that receives shortened records.
	handler slog.Handler

	// maxRunes is the longest value passed through unchanged.
	maxRunes int
}

// NewTruncatingHandler creates a TruncatingHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
// A non-positive maxRunes selects DefaultMaxValueRunes.
func NewTruncatingHandler(handler slog.Handler, maxRunes int) *TruncatingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxRunes <= 0 {
		maxRunes = DefaultMaxValueRunes
	}
	return &TruncatingHandler{handler: handler, maxRunes: maxRunes}
}

// Enabled reports whether the handler handles records at the given level.
func (h *TruncatingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle shortens the record's attributes and passes it to the underlying handler.
func (h *TruncatingHandler) Handle(ctx context.Context, r slog.Record) error {
	shortened := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		shortened.AddAttrs(h.truncateAttr(a))
		return true
	})
	return h.handler.Handle(ctx, shortened)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *TruncatingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = h.truncateAttr(a)
	}
	return &TruncatingHandler{handler: h.handler.WithAttrs(out), maxRunes: h.maxRunes}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncatingHandler) WithGroup(name string) slog.Handler {
	return &TruncatingHandler{handler: h.handler.WithGroup(name), maxRunes: h.maxRunes}
}

// truncateAttr shortens a single attribute, recursively handling groups.
func (h *TruncatingHandler) truncateAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			out[i] = h.truncateAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	case slog.KindString:
		return slog.String(a.Key, Truncate(a.Value.String(), h.maxRunes))
	default:
		return a
	}
}

// Truncate returns s cut to at most maxRunes runes plus Ellipsis.
// Strings within the limit are returned unchanged.
func Truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	count := 0
	for i := range s {
		if count == maxRunes {
			return s[:i] + Ellipsis
		}
		count++
	}
	return s
}

// NewLogger creates a new slog.Logger writing text records to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Routine progress is reported by the commands themselves, so only problems
// are logged by default.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncatingHandler(textHandler, DefaultMaxValueRunes))
}

// NewJSONLogger creates a new slog.Logger writing JSON records to w.
// Useful when the scrape runs under a log collector.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncatingHandler(jsonHandler, DefaultMaxValueRunes))
}
