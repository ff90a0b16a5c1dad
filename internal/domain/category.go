package domain

import (
	"errors"
	"strings"
)

// MaxCategoryNameLength bounds explicitly registered category names.
const MaxCategoryNameLength = 50

// Category validation errors.
var (
	ErrEmptyCategoryName   = errors.New("category name cannot be empty")
	ErrCategoryNameTooLong = errors.New("category name must be at most 50 characters")
)

// Category is an explicitly registered tag name. Categories also exist
// implicitly through tasks' category field; the effective set exposed to
// users is the union of both.
type Category struct {
	Name string `json:"name"`
}

// NewCategory creates a Category from name, trimming surrounding
// whitespace. Name comparison is case-sensitive.
func NewCategory(name string) (*Category, error) {
	category := &Category{Name: strings.TrimSpace(name)}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	if len(c.Name) > MaxCategoryNameLength {
		return ErrCategoryNameTooLong
	}
	return nil
}
