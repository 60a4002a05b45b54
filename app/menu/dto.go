package menu

import (
	"github.com/joefazee/qrmenu/internal/formatter"
	"github.com/joefazee/qrmenu/models"
)

const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Response is the public menu rendered in a single language.
type Response struct {
	Language   models.Language `json:"language" swaggertype:"string" example:"tr"`
	Direction  string          `json:"direction" example:"ltr"`
	Currency   string          `json:"currency" example:"₺"`
	Categories []Category      `json:"categories"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ImageURL    *string   `json:"image_url"`
	Placeholder string    `json:"placeholder" example:"T"`
	Products    []Product `json:"products"`
}

type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        string  `json:"price" example:"150"`
	DisplayPrice string  `json:"display_price" example:"₺150"`
	ImageURL     *string `json:"image_url"`
}

func direction(lang models.Language) string {
	if lang.IsRTL() {
		return DirectionRTL
	}
	return DirectionLTR
}

func toCategory(c *models.Category, lang models.Language) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Names().Get(lang),
		ImageURL:    c.ImageURL,
		Placeholder: c.Placeholder(lang),
		Products:    []Product{},
	}
}

func toProduct(p *models.Product, lang models.Language) Product {
	return Product{
		ID:           p.ID,
		Name:         p.Names().Get(lang),
		Description:  p.Descriptions().Get(lang),
		Price:        formatter.FormatPrice(p.Price, lang),
		DisplayPrice: formatter.DisplayPrice(p.Price, lang),
		ImageURL:     p.ImageURL,
	}
}
