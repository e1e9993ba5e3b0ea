// Package catalog holds the ordered quiz page definitions.
package catalog

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/tentwenty/internal/model"
)

var (
	// ErrNotFound is returned for page ids outside the catalog.
	ErrNotFound = errors.New("page not found")
	// ErrInvalid wraps catalog validation failures.
	ErrInvalid = errors.New("invalid catalog")
)

// Catalog is an immutable, validated set of pages plus the start page.
type Catalog struct {
	start model.StartPage
	pages []model.PageDefinition
	index map[int]int
}

// New validates the pages and builds a catalog. Pages keep the given order.
func New(start model.StartPage, pages []model.PageDefinition) (*Catalog, error) {
	if err := Validate(start, pages); err != nil {
		return nil, err
	}
	c := &Catalog{
		start: start,
		pages: make([]model.PageDefinition, len(pages)),
		index: make(map[int]int, len(pages)),
	}
	for i, p := range pages {
		c.pages[i] = clonePage(p)
		c.index[p.ID] = i
	}
	return c, nil
}

// Get returns the page with the given id. Id 0 is the start page, returned as a
// definition with an empty measurement table.
func (c *Catalog) Get(id int) (model.PageDefinition, error) {
	if id == model.StartPageID {
		return model.PageDefinition{
			ID:             model.StartPageID,
			ReferenceLabel: c.start.Title,
			NextPageID:     c.start.FirstPage,
			Image:          c.start.Image,
		}, nil
	}
	i, ok := c.index[id]
	if !ok {
		return model.PageDefinition{}, fmt.Errorf("page %d: %w", id, ErrNotFound)
	}
	return clonePage(c.pages[i]), nil
}

// Start returns the start page settings.
func (c *Catalog) Start() model.StartPage {
	return c.start
}

// Pages returns the quiz pages in catalog order.
func (c *Catalog) Pages() []model.PageDefinition {
	out := make([]model.PageDefinition, len(c.pages))
	for i, p := range c.pages {
		out[i] = clonePage(p)
	}
	return out
}

// Len returns the number of quiz pages, excluding the start page.
func (c *Catalog) Len() int {
	return len(c.pages)
}

func clonePage(p model.PageDefinition) model.PageDefinition {
	p.Measurements = append([]model.Measurement(nil), p.Measurements...)
	return p
}
