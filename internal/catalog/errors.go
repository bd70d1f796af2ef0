package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyItemID is returned when an item has no id.
	ErrEmptyItemID = errors.New("item has empty id")

	// ErrDuplicateItemID is returned when two items share an id.
	ErrDuplicateItemID = errors.New("duplicate item id")

	// ErrUnknownCategory is returned when an item references a missing category.
	ErrUnknownCategory = errors.New("unknown category")
)

// NotFoundError represents a missing catalog file
type NotFoundError struct {
	Path string
	Hint string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("catalog file not found: %s", e.Path)
	if e.Hint != "" {
		msg += "\n\n💡 " + e.Hint
	}
	return msg
}

// InvalidCatalogError represents a malformed catalog file
type InvalidCatalogError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidCatalogError) Error() string {
	msg := fmt.Sprintf("invalid catalog: %s\n", e.Path)
	if e.Message != "" {
		msg += e.Message + "\n"
	}
	if e.Hint != "" {
		msg += "💡 " + e.Hint
	}
	return msg
}
