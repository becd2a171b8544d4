// Package pipeline runs the scrape of a hadith collection as a sequence of
// steps.
//
// A collection is processed by three steps that share one *model.Document:
// BookListStep fills in the books, HadithStep fills in each book's hadiths,
// and WriteStep saves the result as JSON. A Runner drives the pipeline over
// several collections, one after another.
package pipeline
