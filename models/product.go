package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductsPath is the tree path holding product records.
const ProductsPath = "products"

// MaxPrice is the largest price a product may carry.
var MaxPrice = decimal.New(1, 9)

// Product is a sellable menu item, stored at products/{id}.
type Product struct {
	ID            string          `json:"-"`
	NameTR        string          `json:"name_tr"`
	NameEN        *string         `json:"name_en"`
	NameAR        *string         `json:"name_ar"`
	DescriptionTR *string         `json:"description_tr"`
	DescriptionEN *string         `json:"description_en"`
	DescriptionAR *string         `json:"description_ar"`
	CategoryID    string          `json:"category_id"`
	Price         decimal.Decimal `json:"price"`
	Order         int             `json:"order"`
	ImageURL      *string         `json:"image_url"`
	IsActive      *bool           `json:"is_active"`
	CreatedAt     int64           `json:"created_at"`
	UpdatedAt     int64           `json:"updated_at"`
}

// Active reports whether the product is shown on the public menu. Records
// written before the flag existed carry no value and count as active.
func (p *Product) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// Names returns the display names keyed by language.
func (p *Product) Names() Localized {
	return Localized{TR: p.NameTR, EN: derefString(p.NameEN), AR: derefString(p.NameAR)}
}

// Descriptions returns the descriptions keyed by language.
func (p *Product) Descriptions() Localized {
	return Localized{
		TR: derefString(p.DescriptionTR),
		EN: derefString(p.DescriptionEN),
		AR: derefString(p.DescriptionAR),
	}
}

// Validate performs validation on the product record
func (p *Product) Validate() error {
	if strings.TrimSpace(p.NameTR) == "" {
		return ErrInvalidProductName
	}
	if strings.TrimSpace(p.CategoryID) == "" {
		return ErrInvalidCategoryID
	}
	return nil
}
