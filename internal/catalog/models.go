/*
Package catalog holds the tool catalog the search engine scans.

A catalog is a list of categories plus an ordered list of items. Items
reference their category by id. The catalog is loaded once by the host
(from the embedded default, a JSON file, or a YAML file) and treated as
read-only afterwards.
*/
package catalog

// Item is a single searchable utility in the catalog.
type Item struct {
	// ID uniquely identifies the item within a catalog.
	ID string `json:"id" yaml:"id"`

	// Name is the display name (e.g., "EMI Calculator").
	Name string `json:"name" yaml:"name"`

	// Description is a short human-readable summary.
	Description string `json:"description" yaml:"description"`

	// Category is the id of the item's category.
	Category string `json:"category" yaml:"category"`

	// Tags are free-form labels in display order.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Type is the tool type (e.g., "calculator", "converter").
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Difficulty is the skill level (e.g., "beginner").
	Difficulty string `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`

	// Rating is the average user rating, nil when unrated.
	Rating *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`

	// UsageCount is how often the tool was opened, nil when unknown.
	UsageCount *int `json:"usageCount,omitempty" yaml:"usageCount,omitempty"`

	// CreatedAt is when the tool was added. Kept as text; parsed on demand.
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// HasTag reports whether the item carries tag (exact match).
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Category groups related items.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Catalog is an in-memory collection of items and their categories.
//
// Lookups never mutate the catalog. Catalogs built with New or loaded from a
// file are indexed by id; a struct literal has no index and lookups scan.
type Catalog struct {
	Categories []Category `json:"categories" yaml:"categories"`
	Items      []Item     `json:"tools" yaml:"tools"`

	categoryIndex map[string]int
	itemIndex     map[string]int
}

// New builds a catalog from categories and items and indexes them by id.
func New(categories []Category, items []Item) *Catalog {
	c := &Catalog{
		Categories: categories,
		Items:      items,
	}
	c.reindex()
	return c
}

// reindex rebuilds the id lookups. Later duplicates do not shadow earlier ones.
func (c *Catalog) reindex() {
	c.categoryIndex = make(map[string]int, len(c.Categories))
	for i, cat := range c.Categories {
		if _, exists := c.categoryIndex[cat.ID]; !exists {
			c.categoryIndex[cat.ID] = i
		}
	}

	c.itemIndex = make(map[string]int, len(c.Items))
	for i, item := range c.Items {
		if _, exists := c.itemIndex[item.ID]; !exists {
			c.itemIndex[item.ID] = i
		}
	}
}

// Category resolves a category reference.
func (c *Catalog) Category(id string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	if c.categoryIndex == nil {
		for i := range c.Categories {
			if c.Categories[i].ID == id {
				return c.Categories[i], true
			}
		}
		return Category{}, false
	}
	idx, ok := c.categoryIndex[id]
	if !ok {
		return Category{}, false
	}
	return c.Categories[idx], true
}

// CategoryName returns the display name for a category id, or "" if unknown.
func (c *Catalog) CategoryName(id string) string {
	cat, _ := c.Category(id)
	return cat.Name
}

// Item looks up an item by id. The returned pointer aliases the catalog entry.
func (c *Catalog) Item(id string) (*Item, bool) {
	if c == nil {
		return nil, false
	}
	if c.itemIndex == nil {
		for i := range c.Items {
			if c.Items[i].ID == id {
				return &c.Items[i], true
			}
		}
		return nil, false
	}
	idx, ok := c.itemIndex[id]
	if !ok {
		return nil, false
	}
	return &c.Items[idx], true
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}
