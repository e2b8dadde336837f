package questions

import (
	"fmt"
	"strings"
)

// Category groups questions by subject.
type Category string

const (
	CategoryGeneral   Category = "General"
	CategoryScience   Category = "Science"
	CategoryHistory   Category = "History"
	CategoryGeography Category = "Geography"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryGeneral, CategoryScience, CategoryHistory, CategoryGeography}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryGeneral:
		return "General"
	case CategoryScience:
		return "Science"
	case CategoryHistory:
		return "History"
	case CategoryGeography:
		return "Geography"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryGeneral, CategoryScience, CategoryHistory, CategoryGeography:
		return true
	default:
		return false
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
