package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a transaction category of a user.
type Category struct {
	DefaultModel
	UserID uuid.UUID `gorm:"uniqueIndex:category_user_name"`
	User   User      `json:"-"`
	Name   string    `gorm:"uniqueIndex:category_user_name"`
	Color  string    // Hex color for the UI, e.g. "#ff6b6b"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)

	return nil
}

// DefaultCategories returns the set of categories that every new user
// starts out with.
func DefaultCategories(userID uuid.UUID) []Category {
	defaults := []struct {
		name  string
		color string
	}{
		{"Food & Dining", "#ff6b6b"},
		{"Transportation", "#4ecdc4"},
		{"Shopping", "#45b7d1"},
		{"Entertainment", "#f9ca24"},
		{"Bills & Utilities", "#f0932b"},
		{"Healthcare", "#eb4d4b"},
		{"Salary", "#6c5ce7"},
		{"Other", "#a0a0a0"},
	}

	categories := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, Category{
			Name:   d.name,
			Color:  d.color,
			UserID: userID,
		})
	}

	return categories
}
