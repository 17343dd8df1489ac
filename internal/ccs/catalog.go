package ccs

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrUnknownSpecimen is returned by lookups of an identifier that is not
	// in the catalog.
	ErrUnknownSpecimen = errors.New("ccs: unknown specimen")
	// ErrMissingAliasTarget means an alias names a source that was never
	// defined.
	ErrMissingAliasTarget = errors.New("ccs: alias source not defined")
	// ErrUnknownDisplayName means the GUI selection names an identifier that
	// is not in the catalog.
	ErrUnknownDisplayName = errors.New("ccs: display list names unknown specimen")
)

// Catalog is the read-only set of named specimens. It is safe for concurrent
// use because nothing mutates it after Build returns.
type Catalog struct {
	specimens map[string]Specimen
	names     []string
	display   []string
	aliases   map[string]string
}

// Build constructs the catalog from the literal definitions.
func Build() (*Catalog, error) {
	return build(literalSpecimens(), aliases, guiSelection)
}

func build(direct map[string]Specimen, links []alias, selection []string) (*Catalog, error) {
	c := &Catalog{
		specimens: make(map[string]Specimen, len(direct)+len(links)),
		aliases:   make(map[string]string, len(links)),
	}
	for name, s := range direct {
		c.specimens[name] = s.Clone()
	}

	// Aliases only see literal entries, so their order does not matter.
	for _, a := range links {
		src, ok := direct[a.Source]
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrMissingAliasTarget, a.Name, a.Source)
		}
		c.specimens[a.Name] = src.Clone()
		c.aliases[a.Name] = a.Source
	}

	c.names = make([]string, 0, len(c.specimens))
	for name := range c.specimens {
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)

	display, err := displayList(selection, c.names, c.specimens)
	if err != nil {
		return nil, err
	}
	c.display = display
	return c, nil
}

// displayList appends every name containing hilburgerTag to selection, then
// deduplicates and sorts the result.
func displayList(selection, names []string, specimens map[string]Specimen) ([]string, error) {
	out := make([]string, 0, len(selection))
	for _, name := range selection {
		if _, ok := specimens[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDisplayName, name)
		}
		out = append(out, name)
	}
	for _, name := range names {
		if strings.Contains(name, hilburgerTag) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog, building it on first use.
// It panics if the literal definitions are inconsistent.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Build()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Get returns a copy of the named specimen.
func (c *Catalog) Get(name string) (Specimen, error) {
	s, ok := c.specimens[name]
	if !ok {
		return Specimen{}, fmt.Errorf("%w: %q", ErrUnknownSpecimen, name)
	}
	return s.Clone(), nil
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.specimens[name]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.specimens)
}

// Names returns every identifier in ascending order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// DisplayList returns the sorted, deduplicated identifiers exposed in the GUI.
func (c *Catalog) DisplayList() []string {
	return slices.Clone(c.display)
}

// ByDatabase returns the sorted identifiers whose provenance tag is db.
func (c *Catalog) ByDatabase(db string) []string {
	var out []string
	for _, name := range c.names {
		s := c.specimens[name]
		if s.Database.Valid && s.Database.String == db {
			out = append(out, name)
		}
	}
	return out
}

// Aliases maps each alias identifier to the identifier it was copied from.
func (c *Catalog) Aliases() map[string]string {
	return maps.Clone(c.aliases)
}

// Equal reports whether both catalogs hold identical entries, lists and
// alias links.
func (c *Catalog) Equal(o *Catalog) bool {
	if !slices.Equal(c.names, o.names) || !slices.Equal(c.display, o.display) {
		return false
	}
	if !maps.Equal(c.aliases, o.aliases) {
		return false
	}
	for _, name := range c.names {
		if !c.specimens[name].Equal(o.specimens[name]) {
			return false
		}
	}
	return true
}
