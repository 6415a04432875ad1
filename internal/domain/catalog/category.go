package catalog

import "fmt"

// Category is a facet grouping for records.
type Category struct {
	id    string
	name  LocalizedText
	order int
	icon  string
}

// NewCategory validates and creates a Category.
func NewCategory(id string, name LocalizedText, order int, icon, fallbackLang string) (Category, error) {
	if id == "" {
		return Category{}, fmt.Errorf("category ID is required")
	}
	if len(id) > MaxIDLength {
		return Category{}, fmt.Errorf("category ID too long (max %d)", MaxIDLength)
	}
	if !idRegex.MatchString(id) {
		return Category{}, fmt.Errorf("category ID must be alphanumeric with underscores and hyphens")
	}
	if !name.Has(fallbackLang) {
		return Category{}, fmt.Errorf("category %q: name missing fallback language %q", id, fallbackLang)
	}
	return ReconstructCategory(id, name, order, icon), nil
}

// ReconstructCategory creates a Category without validation.
func ReconstructCategory(id string, name LocalizedText, order int, icon string) Category {
	return Category{id: id, name: cloneLocalized(name), order: order, icon: icon}
}

// ID returns the category identifier.
func (c *Category) ID() string { return c.id }

// Name returns the localized name map.
func (c *Category) Name() LocalizedText { return c.name }

// Order returns the stable presentation sort position.
func (c *Category) Order() int { return c.order }

// Icon returns the optional icon reference ("" when absent).
func (c *Category) Icon() string { return c.icon }
