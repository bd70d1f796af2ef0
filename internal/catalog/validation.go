package catalog

import (
	"errors"
	"fmt"
)

// ValidateItem checks a single item in the context of its catalog.
func ValidateItem(c *Catalog, item *Item) error {
	if item.ID == "" {
		return fmt.Errorf("item %q: %w", item.Name, ErrEmptyItemID)
	}

	if item.Category != "" {
		if _, ok := c.Category(item.Category); !ok {
			return fmt.Errorf("item '%s': %w %q", item.ID, ErrUnknownCategory, item.Category)
		}
	}

	return nil
}

// Validate checks every item and reports all problems joined together.
// An empty catalog is valid.
func Validate(c *Catalog) error {
	var errs []error
	seen := make(map[string]bool, len(c.Items))

	for i := range c.Items {
		item := &c.Items[i]
		if err := ValidateItem(c, item); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[item.ID] {
			errs = append(errs, fmt.Errorf("item '%s': %w", item.ID, ErrDuplicateItemID))
			continue
		}
		seen[item.ID] = true
	}

	return errors.Join(errs...)
}
