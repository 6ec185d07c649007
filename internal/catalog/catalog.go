// Package catalog holds the static menu the storefront ships with. Prices
// arrive as decimal strings and are normalized to numbers when the table is
// decoded, so nothing downstream ever branches on a price's type.
package catalog

import (
	"encoding/json"
	"fmt"

	"damone-orders/internal/domain"
)

// Category order matches the storefront navigation.
var categories = []string{"appetizers", "mainCourse", "desserts", "beverages"}

type Catalog struct {
	byCategory map[string][]domain.MenuItem
	byID       map[string]domain.MenuItem
}

// Load decodes the built-in menu. It panics on a malformed table since the
// data is compiled in; a failure here is a build defect, not a runtime one.
func Load() *Catalog {
	c, err := parse([]byte(rawMenu))
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in menu is invalid: %v", err))
	}
	return c
}

func parse(data []byte) (*Catalog, error) {
	var table map[string][]domain.MenuItem
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}

	c := &Catalog{
		byCategory: make(map[string][]domain.MenuItem, len(table)),
		byID:       make(map[string]domain.MenuItem),
	}
	for category, items := range table {
		for i := range items {
			items[i].Category = category
			c.byID[items[i].ID] = items[i]
		}
		c.byCategory[category] = items
	}
	return c, nil
}

func (c *Catalog) Categories() []string {
	return categories
}

func (c *Catalog) Items(category string) []domain.MenuItem {
	return c.byCategory[category]
}

func (c *Catalog) Find(id string) (domain.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.byCategory[category]
	return ok
}
