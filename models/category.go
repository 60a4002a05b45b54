package models

import (
	"strings"
	"unicode/utf8"
)

// CategoriesPath is the tree path holding category records.
const CategoriesPath = "categories"

// Category is a named grouping of menu items, stored at categories/{id}.
type Category struct {
	ID        string  `json:"-"`
	NameTR    string  `json:"name_tr"`
	NameEN    string  `json:"name_en"`
	NameAR    string  `json:"name_ar"`
	Order     int     `json:"order"`
	ImageURL  *string `json:"image_url"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

// Names returns the display names keyed by language.
func (c *Category) Names() Localized {
	return Localized{TR: c.NameTR, EN: c.NameEN, AR: c.NameAR}
}

// Placeholder returns the glyph shown when the category has no image: the
// first letter of its name in lang, or "?" when that name is empty.
func (c *Category) Placeholder(lang Language) string {
	name := strings.TrimSpace(c.Names().Get(lang))
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}

// Validate performs validation on the category record
func (c *Category) Validate() error {
	if strings.TrimSpace(c.NameTR) == "" {
		return ErrInvalidCategoryName
	}
	return nil
}
