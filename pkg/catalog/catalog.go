// Package catalog manages the named list and tag sets offered by the edit
// form. Card lists/tags are opaque strings as far as the engine is
// concerned; the catalog only feeds form population and sidebar navigation.
package catalog

import "strings"

// Catalog is the known list and tag names. Order is insertion order, the
// order the sidebar shows them.
type Catalog struct {
	Lists []string `json:"lists"`
	Tags  []string `json:"tags"`
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// AddList records a new list name. Empty input and duplicates are ignored.
func (c *Catalog) AddList(name string) bool {
	return add(&c.Lists, name)
}

// AddTag records a new tag name. Empty input and duplicates are ignored.
func (c *Catalog) AddTag(name string) bool {
	return add(&c.Tags, name)
}

// HasList reports whether the list name is known.
func (c *Catalog) HasList(name string) bool {
	return contains(c.Lists, strings.TrimSpace(name))
}

// HasTag reports whether the tag name is known.
func (c *Catalog) HasTag(name string) bool {
	return contains(c.Tags, strings.TrimSpace(name))
}

func add(names *[]string, name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || contains(*names, trimmed) {
		return false
	}
	*names = append(*names, trimmed)
	return true
}

func contains(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}
