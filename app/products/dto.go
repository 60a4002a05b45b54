package products

import (
	"encoding/json"

	"github.com/joefazee/qrmenu/internal/sanitizer"
	"github.com/joefazee/qrmenu/internal/tree"
	"github.com/joefazee/qrmenu/internal/validator"
	"github.com/joefazee/qrmenu/models"
)

const (
	maxNameRunes        = 150
	maxDescriptionRunes = 1000
)

// Fields a product update may set to null.
var clearableFields = []string{"image_url", "description_tr", "description_en", "description_ar"}

type CreateProductRequest struct {
	NameTR        string            `json:"name_tr" example:"Baklava"`
	NameEN        string            `json:"name_en,omitempty"`
	NameAR        string            `json:"name_ar,omitempty"`
	DescriptionTR string            `json:"description_tr,omitempty"`
	DescriptionEN string            `json:"description_en,omitempty"`
	DescriptionAR string            `json:"description_ar,omitempty"`
	CategoryID    string            `json:"category_id"`
	Price         models.FormNumber `json:"price" swaggertype:"number" example:"150"`
	Order         models.FormNumber `json:"order" swaggertype:"number" example:"0"`
	ImageURL      string            `json:"image_url,omitempty"`
	IsActive      *bool             `json:"is_active,omitempty"`
}

func (r *CreateProductRequest) Normalize(s sanitizer.HTMLStripperer) {
	for _, f := range []*string{
		&r.NameTR, &r.NameEN, &r.NameAR,
		&r.DescriptionTR, &r.DescriptionEN, &r.DescriptionAR,
		&r.CategoryID, &r.ImageURL,
	} {
		*f = s.StripHTML(*f)
	}
}

func (r *CreateProductRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.NotBlank(r.NameTR), "name_tr", "Turkish name is required")
	v.Check(validator.NotBlank(r.CategoryID), "category_id", "Category is required")
	checkPrice(v, r.Price)
	checkLengths(v, map[string]string{
		"name_tr": r.NameTR, "name_en": r.NameEN, "name_ar": r.NameAR,
	}, map[string]string{
		"description_tr": r.DescriptionTR, "description_en": r.DescriptionEN, "description_ar": r.DescriptionAR,
	})
	return v.Valid()
}

// UpdateProductRequest is a sparse update: nil or blank text keeps the stored
// value, numbers and is_active apply whenever present, Clear nulls fields.
type UpdateProductRequest struct {
	NameTR        *string            `json:"name_tr,omitempty"`
	NameEN        *string            `json:"name_en,omitempty"`
	NameAR        *string            `json:"name_ar,omitempty"`
	DescriptionTR *string            `json:"description_tr,omitempty"`
	DescriptionEN *string            `json:"description_en,omitempty"`
	DescriptionAR *string            `json:"description_ar,omitempty"`
	CategoryID    *string            `json:"category_id,omitempty"`
	Price         *models.FormNumber `json:"price,omitempty" swaggertype:"number"`
	Order         *models.FormNumber `json:"order,omitempty" swaggertype:"number"`
	ImageURL      *string            `json:"image_url,omitempty"`
	IsActive      *bool              `json:"is_active,omitempty"`
	Clear         []string           `json:"clear,omitempty"`
}

func (r *UpdateProductRequest) texts() map[string]*string {
	return map[string]*string{
		"name_tr":        r.NameTR,
		"name_en":        r.NameEN,
		"name_ar":        r.NameAR,
		"description_tr": r.DescriptionTR,
		"description_en": r.DescriptionEN,
		"description_ar": r.DescriptionAR,
		"category_id":    r.CategoryID,
		"image_url":      r.ImageURL,
	}
}

func (r *UpdateProductRequest) Normalize(s sanitizer.HTMLStripperer) {
	for _, f := range r.texts() {
		if f != nil {
			*f = s.StripHTML(*f)
		}
	}
}

func (r *UpdateProductRequest) Validate(v *validator.Validator) bool {
	names, descriptions := map[string]string{}, map[string]string{}
	for key, f := range r.texts() {
		if f == nil {
			continue
		}
		switch key {
		case "name_tr", "name_en", "name_ar":
			names[key] = *f
		case "description_tr", "description_en", "description_ar":
			descriptions[key] = *f
		}
	}
	checkLengths(v, names, descriptions)
	if r.Price != nil {
		checkPrice(v, *r.Price)
	}
	v.Check(validator.AllIn(r.Clear, clearableFields...), "clear", "Only image_url and descriptions can be cleared")
	return v.Valid()
}

func (r *UpdateProductRequest) fields() tree.Fields {
	f := tree.Fields{}
	for key, value := range r.texts() {
		if value != nil && *value != "" {
			f[key] = *value
		}
	}
	if r.Price != nil && r.Price.Valid() {
		f["price"] = json.Number(r.Price.NonNegativeDecimal().String())
	}
	if r.Order != nil && r.Order.Valid() {
		f["order"] = r.Order.NonNegativeInt()
	}
	if r.IsActive != nil {
		f["is_active"] = *r.IsActive
	}
	for _, name := range r.Clear {
		f[name] = nil
	}
	return f
}

func checkPrice(v *validator.Validator, price models.FormNumber) {
	v.Check(!price.Valid() || price.NonNegativeDecimal().LessThanOrEqual(models.MaxPrice),
		"price", "Price must be at most 1000000000")
}

func checkLengths(v *validator.Validator, names, descriptions map[string]string) {
	for key, value := range names {
		v.Check(validator.MaxRunes(value, maxNameRunes), key, "Name must be at most 150 characters")
	}
	for key, value := range descriptions {
		v.Check(validator.MaxRunes(value, maxDescriptionRunes), key, "Description must be at most 1000 characters")
	}
}

// ProductFilter narrows ListProducts. Zero values match everything.
type ProductFilter struct {
	CategoryID string
	ActiveOnly bool
}

type ProductResponse struct {
	ID            string  `json:"id"`
	NameTR        string  `json:"name_tr"`
	NameEN        *string `json:"name_en"`
	NameAR        *string `json:"name_ar"`
	DescriptionTR *string `json:"description_tr"`
	DescriptionEN *string `json:"description_en"`
	DescriptionAR *string `json:"description_ar"`
	CategoryID    string  `json:"category_id"`
	Price         float64 `json:"price"`
	Order         int     `json:"order"`
	ImageURL      *string `json:"image_url"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

func ToProductResponse(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		NameTR:        p.NameTR,
		NameEN:        p.NameEN,
		NameAR:        p.NameAR,
		DescriptionTR: p.DescriptionTR,
		DescriptionEN: p.DescriptionEN,
		DescriptionAR: p.DescriptionAR,
		CategoryID:    p.CategoryID,
		Price:         p.Price.InexactFloat64(),
		Order:         p.Order,
		ImageURL:      p.ImageURL,
		IsActive:      p.Active(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToProductResponseList(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	return responses
}

// ActivateAllResponse reports how many products were written.
type ActivateAllResponse struct {
	Updated int `json:"updated"`
}
