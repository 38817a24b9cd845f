package vedit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned by Catalog.New for an unregistered name.
	ErrUnknownType = errors.New("vedit: unknown catalog type")
	// ErrDuplicateType is returned when a name is registered twice.
	ErrDuplicateType = errors.New("vedit: catalog type already registered")
)

// CatalogEntry is one constructible type.
type CatalogEntry[T any] struct {
	Name    string // stable identifier
	Display string // label shown in "new instance" pickers
	New     func() T
}

// Catalog is the explicit list of types a "create new instance" picker
// offers, registered by the host at construction. Entries keep their
// registration order.
type Catalog[T any] struct {
	entries []CatalogEntry[T]
	index   map[string]int
}

// NewCatalog creates a catalog from entries.
func NewCatalog[T any](entries ...CatalogEntry[T]) (*Catalog[T], error) {
	c := &Catalog[T]{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if err := c.Register(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds an entry.
func (c *Catalog[T]) Register(e CatalogEntry[T]) error {
	if e.Name == "" || e.New == nil {
		return fmt.Errorf("vedit: catalog entry %q needs a name and constructor", e.Name)
	}
	if _, ok := c.index[e.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, e.Name)
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if e.Display == "" {
		e.Display = e.Name
	}
	c.index[e.Name] = len(c.entries)
	c.entries = append(c.entries, e)
	return nil
}

// Entries returns the entries in registration order.
func (c *Catalog[T]) Entries() []CatalogEntry[T] {
	return append([]CatalogEntry[T](nil), c.entries...)
}

// Lookup finds an entry by name.
func (c *Catalog[T]) Lookup(name string) (CatalogEntry[T], bool) {
	i, ok := c.index[name]
	if !ok {
		return CatalogEntry[T]{}, false
	}
	return c.entries[i], true
}

// New constructs a fresh instance of the named type.
func (c *Catalog[T]) New(name string) (T, error) {
	e, ok := c.Lookup(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return e.New(), nil
}
