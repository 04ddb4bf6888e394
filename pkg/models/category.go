package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// CategoryNameMaxLength is the maximum number of characters in a category name.
const CategoryNameMaxLength = 100

// Category is a named group that movements are filed under.
type Category struct {
	ID uint `gorm:"primaryKey"`
	Timestamps
	Name    string `gorm:"size:100;not null"`
	NameKey string `gorm:"size:400;not null;uniqueIndex:idx_categories_name_key"` // Case folded Name. Used for uniqueness and case-insensitive lookups
}

func (Category) Self() string {
	return "Category"
}

// FoldName returns the key that two category names share if and only if
// they are equal when compared case-insensitively.
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// BeforeSave trims the name, validates it and updates the NameKey.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return fmt.Errorf("%w: the category name must not be empty", ErrValidation)
	}

	if utf8.RuneCountInString(c.Name) > CategoryNameMaxLength {
		return fmt.Errorf("%w: the category name must not be longer than %d characters", ErrValidation, CategoryNameMaxLength)
	}

	c.NameKey = FoldName(c.Name)
	return nil
}
