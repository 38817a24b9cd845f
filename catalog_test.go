package vedit

import (
	"errors"
	"testing"
)

type shape interface{ sides() int }

type triangle struct{}
type square struct{}

func (triangle) sides() int { return 3 }
func (square) sides() int   { return 4 }

func TestCatalog(t *testing.T) {
	c, err := NewCatalog(
		CatalogEntry[shape]{Name: "triangle", New: func() shape { return triangle{} }},
		CatalogEntry[shape]{Name: "square", Display: "Square", New: func() shape { return square{} }},
	)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	entries := c.Entries()
	if len(entries) != 2 || entries[0].Name != "triangle" || entries[1].Name != "square" {
		t.Fatalf("Entries() = %v, want registration order", entries)
	}
	if entries[0].Display != "triangle" {
		t.Errorf("default Display = %q, want name", entries[0].Display)
	}

	s, err := c.New("square")
	if err != nil || s.sides() != 4 {
		t.Errorf("New(square) = %v, %v", s, err)
	}
	if _, err := c.New("circle"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("New(circle) error = %v, want ErrUnknownType", err)
	}
}

func TestCatalogRegisterErrors(t *testing.T) {
	var c Catalog[shape]
	ctor := func() shape { return triangle{} }
	if err := c.Register(CatalogEntry[shape]{Name: "t", New: ctor}); err != nil {
		t.Fatalf("Register() on zero Catalog error = %v", err)
	}
	if err := c.Register(CatalogEntry[shape]{Name: "t", New: ctor}); !errors.Is(err, ErrDuplicateType) {
		t.Errorf("duplicate Register() error = %v, want ErrDuplicateType", err)
	}
	if err := c.Register(CatalogEntry[shape]{Name: "x"}); err == nil {
		t.Error("Register() without constructor succeeded")
	}
}
