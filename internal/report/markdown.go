package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/hadithscraper/internal/model"
)

// MarkdownWriter renders a collection document as Markdown.
// This format is meant for reading and sharing, not for re-import.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// NewMarkdownWriterFactory is a WriterFactory for Markdown files.
func NewMarkdownWriterFactory(output io.Writer) Writer {
	return NewMarkdownWriter(output)
}

// Write outputs the document in Markdown format.
func (w *MarkdownWriter) Write(doc *model.Document) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, doc)
	w.writeContents(md, doc)
	for _, book := range doc.Books {
		w.writeBook(md, book)
	}

	return len(md.String()), md.Build()
}

// writeHeader writes the collection title and summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, doc *model.Document) {
	md.H1(doc.Name)
	md.PlainText("")
	if doc.Arabic != "" {
		md.PlainText(doc.Arabic)
		md.PlainText("")
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Collection", "`" + doc.Collection + "`"},
			{"Books", strconv.Itoa(len(doc.Books))},
			{"Hadiths", strconv.Itoa(doc.HadithCount())},
		},
	})
	md.PlainText("")
}

// writeContents writes one row per book with its hadith count.
func (w *MarkdownWriter) writeContents(md *markdown.Markdown, doc *model.Document) {
	if len(doc.Books) == 0 {
		return
	}

	rows := make([][]string, 0, len(doc.Books))
	for _, book := range doc.Books {
		rows = append(rows, []string{
			strconv.Itoa(book.Number),
			book.Name,
			strconv.Itoa(len(book.Hadiths)),
		})
	}

	md.H2("Contents")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Book", "Name", "Hadiths"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeBook writes a book heading followed by each hadith.
func (w *MarkdownWriter) writeBook(md *markdown.Markdown, book model.Book) {
	md.H2(fmt.Sprintf("%d. %s", book.Number, book.Name))
	md.PlainText("")

	for _, h := range book.Hadiths {
		if h.Number != nil {
			md.H3(fmt.Sprintf("Hadith %d", *h.Number))
		} else {
			md.H3("Hadith")
		}
		md.PlainText("")

		if h.Narrator != "" {
			md.PlainText("**" + h.Narrator + "**")
			md.PlainText("")
		}
		if h.English != "" {
			md.PlainText(h.English)
			md.PlainText("")
		}
		if h.Arabic != "" {
			md.PlainText(h.Arabic)
			md.PlainText("")
		}
	}
}
