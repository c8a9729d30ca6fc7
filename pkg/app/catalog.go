package app

import "tableflip.dev/dayboard/pkg/catalog"

// Catalog returns the known list and tag names.
func (s *Service) Catalog() (*catalog.Catalog, error) {
	return s.Persistence.LoadCatalog()
}

// RegisterNames records list and tag names in the catalog so they can be
// offered for reuse. Names already present are left alone; the catalog is
// written only when something new arrived.
func (s *Service) RegisterNames(lists, tags []string) error {
	c, err := s.Persistence.LoadCatalog()
	if err != nil {
		return err
	}
	changed := false
	for _, name := range lists {
		if c.AddList(name) {
			changed = true
		}
	}
	for _, name := range tags {
		if c.AddTag(name) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.Persistence.SaveCatalog(c)
}
