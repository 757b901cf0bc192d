package lessons

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mlotufo/primer/pkg/core"
)

// Catalog is an ordered, immutable lesson collection implementing
// core.Catalog.
type Catalog struct {
	ordered []core.Lesson
	byID    map[string]core.Lesson
}

// NewCatalog builds a catalog preserving the given order.
func NewCatalog(items ...core.Lesson) *Catalog {
	c := &Catalog{
		ordered: make([]core.Lesson, 0, len(items)),
		byID:    make(map[string]core.Lesson, len(items)),
	}
	for _, l := range items {
		if _, dup := c.byID[l.ID]; dup {
			continue
		}
		c.ordered = append(c.ordered, l)
		c.byID[l.ID] = l
	}
	return c
}

// Default returns the built-in catalog in presentation order.
func Default() *Catalog {
	return NewCatalog(
		Person(),
		Numbers(),
		Loops(),
		Collections(),
		ErrorHandling(),
		Files(),
	)
}

// All returns every lesson in registration order.
func (c *Catalog) All() []core.Lesson {
	out := make([]core.Lesson, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Get retrieves a lesson by its exact ID.
func (c *Catalog) Get(id string) (core.Lesson, error) {
	l, ok := c.byID[id]
	if !ok {
		return core.Lesson{}, fmt.Errorf("%s: %w", id, core.ErrLessonNotFound)
	}
	return l, nil
}

// Match returns the lessons whose IDs match the doublestar glob
// pattern, in registration order. An empty pattern matches everything.
func (c *Catalog) Match(pattern string) ([]core.Lesson, error) {
	if pattern == "" || pattern == "**" {
		return c.All(), nil
	}

	var out []core.Lesson
	for _, l := range c.ordered {
		ok, err := doublestar.Match(pattern, l.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			out = append(out, l)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%q: %w", pattern, core.ErrNoMatch)
	}
	return out, nil
}

var _ core.Catalog = (*Catalog)(nil)
