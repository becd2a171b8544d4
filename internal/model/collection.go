package model

import (
	"errors"
	"fmt"
)

// ErrUnknownCollection is returned when a collection identifier is not registered.
var ErrUnknownCollection = errors.New("unknown collection")

// Collection is a canonical compiled work of hadith, such as Sahih al-Bukhari.
type Collection struct {
	// ID is the identifier used in sunnah.com URLs (e.g., "bukhari").
	ID string `yaml:"-"`

	// Name is the English display name.
	Name string `yaml:"name"`

	// Arabic is the display name in Arabic script.
	Arabic string `yaml:"arabic"`
}

// Registry is an ordered, read-only set of collections.
// Lookups are by ID; iteration follows registration order.
type Registry struct {
	order []string
	byID  map[string]Collection
}

// NewRegistry creates a Registry from the given collections.
// A later collection with the same ID replaces an earlier one in place.
func NewRegistry(collections ...Collection) *Registry {
	r := &Registry{
		order: make([]string, 0, len(collections)),
		byID:  make(map[string]Collection, len(collections)),
	}
	for _, c := range collections {
		if _, ok := r.byID[c.ID]; !ok {
			r.order = append(r.order, c.ID)
		}
		r.byID[c.ID] = c
	}
	return r
}

// DefaultRegistry returns the built-in collections.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Collection{ID: "bukhari", Name: "Sahih al-Bukhari", Arabic: "صحيح البخاري"},
		Collection{ID: "muslim", Name: "Sahih Muslim", Arabic: "صحيح مسلم"},
		Collection{ID: "nawawi40", Name: "An-Nawawi's 40 Hadith", Arabic: "الأربعون النووية"},
	)
}

// With returns a new Registry containing r's collections followed by extra.
// The receiver is not modified.
func (r *Registry) With(extra ...Collection) *Registry {
	all := append(r.All(), extra...)
	return NewRegistry(all...)
}

// Lookup returns the collection registered under id.
func (r *Registry) Lookup(id string) (Collection, error) {
	c, ok := r.byID[id]
	if !ok {
		return Collection{}, fmt.Errorf("%w: %s", ErrUnknownCollection, id)
	}
	return c, nil
}

// IDs returns all registered identifiers in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// All returns all registered collections in registration order.
func (r *Registry) All() []Collection {
	all := make([]Collection, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.byID[id])
	}
	return all
}

// Len returns the number of registered collections.
func (r *Registry) Len() int {
	return len(r.order)
}
