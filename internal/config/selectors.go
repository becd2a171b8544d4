package config

import "fmt"

// Selectors is the table of CSS selectors used to extract hadith records
// from a book page. The extraction code only reads this table, so a markup
// change on the site is fixed by editing the config file.
//
// A selector may list alternatives separated by commas; the first matching
// element in document order is used.
type Selectors struct {
	// Container matches one element per hadith (legacy and current layouts).
	Container string `yaml:"container,omitempty"`

	// Reference matches the label whose trailing digits are the hadith number.
	Reference string `yaml:"reference,omitempty"`

	// Narrator matches the "Narrated ..." label.
	Narrator string `yaml:"narrator,omitempty"`

	// English matches the English body.
	English string `yaml:"english,omitempty"`

	// Arabic matches the Arabic body.
	Arabic string `yaml:"arabic,omitempty"`

	// Chain matches the Arabic chain of narrators (sanad).
	Chain string `yaml:"chain,omitempty"`
}

// Default selector values for sunnah.com.
const (
	DefaultContainerSelector = ".hadithTextContainers, .actualHadithContainer"
	DefaultReferenceSelector = ".hadith_reference_sticky, .hadith_reference"
	DefaultNarratorSelector  = ".hadith_narrated"
	DefaultEnglishSelector   = ".text_details"
	DefaultArabicSelector    = ".arabic_text_details"
	DefaultChainSelector     = ".arabic_sanad"
)

// DefaultSelectors returns the selector table for the current sunnah.com markup.
func DefaultSelectors() Selectors {
	return Selectors{
		Container: DefaultContainerSelector,
		Reference: DefaultReferenceSelector,
		Narrator:  DefaultNarratorSelector,
		English:   DefaultEnglishSelector,
		Arabic:    DefaultArabicSelector,
		Chain:     DefaultChainSelector,
	}
}

// Validate checks that every selector is set.
func (s Selectors) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"container", s.Container},
		{"reference", s.Reference},
		{"narrator", s.Narrator},
		{"english", s.English},
		{"arabic", s.Arabic},
		{"chain", s.Chain},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s selector is empty", ErrIncompleteSelectors, f.name)
		}
	}
	return nil
}
