package model

// Hadith is a single narration extracted from a book page.
// Every field is optional; absent fields are omitted from the JSON output
// rather than written as null or "".
type Hadith struct {
	// Number is the hadith's number within the collection, when the page has one.
	Number *int `json:"number,omitempty"`

	// Narrator is the narration label (e.g., "Narrated 'Umar bin Al-Khattab:").
	Narrator string `json:"narrator,omitempty"`

	// English is the English body with whitespace collapsed.
	English string `json:"english,omitempty"`

	// Arabic is the Arabic body text.
	Arabic string `json:"arabic,omitempty"`

	// Chain is the Arabic chain of narrators (sanad).
	Chain string `json:"chain,omitempty"`
}

// HasText reports whether the hadith carries English or Arabic text.
// Records without either are not kept.
func (h Hadith) HasText() bool {
	return h.English != "" || h.Arabic != ""
}

// IntPtr returns a pointer to n. It is a helper for optional hadith numbers.
func IntPtr(n int) *int {
	return &n
}

// Book is a thematic subdivision within a collection.
type Book struct {
	// Number is positive and unique within a collection.
	Number int `json:"number"`

	// Name is the cleaned English display name.
	Name string `json:"name"`

	// Hadiths are in page order. Always serialized as an array.
	Hadiths []Hadith `json:"hadiths"`
}

// Document is the scrape result for one collection.
// It is the exact shape written to <output_dir>/<collection>.json.
type Document struct {
	// Name is the collection's English display name.
	Name string `json:"name"`

	// Arabic is the collection's Arabic display name.
	Arabic string `json:"arabic"`

	// Collection is the collection identifier.
	Collection string `json:"collection"`

	// Books are in ascending number order.
	Books []Book `json:"books"`
}

// NewDocument creates an empty Document for the given collection.
func NewDocument(c Collection) *Document {
	return &Document{
		Name:       c.Name,
		Arabic:     c.Arabic,
		Collection: c.ID,
		Books:      make([]Book, 0),
	}
}

// HadithCount returns the total number of hadiths across all books.
func (d *Document) HadithCount() int {
	total := 0
	for _, b := range d.Books {
		total += len(b.Hadiths)
	}
	return total
}
