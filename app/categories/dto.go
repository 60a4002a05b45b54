package categories

import (
	"github.com/joefazee/qrmenu/internal/sanitizer"
	"github.com/joefazee/qrmenu/internal/tree"
	"github.com/joefazee/qrmenu/internal/validator"
	"github.com/joefazee/qrmenu/models"
)

const maxNameRunes = 100

// ClearImageURL is the only field a category update may explicitly null.
const ClearImageURL = "image_url"

// CreateCategoryRequest is the admin payload for a new category.
type CreateCategoryRequest struct {
	NameTR   string            `json:"name_tr" example:"Tatlılar"`
	NameEN   string            `json:"name_en,omitempty" example:"Desserts"`
	NameAR   string            `json:"name_ar,omitempty" example:"حلويات"`
	Order    models.FormNumber `json:"order" swaggertype:"number" example:"2"`
	ImageURL string            `json:"image_url,omitempty"`
}

// Normalize strips markup and surrounding space from every text field.
func (r *CreateCategoryRequest) Normalize(s sanitizer.HTMLStripperer) {
	r.NameTR = s.StripHTML(r.NameTR)
	r.NameEN = s.StripHTML(r.NameEN)
	r.NameAR = s.StripHTML(r.NameAR)
	r.ImageURL = s.StripHTML(r.ImageURL)
}

func (r *CreateCategoryRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.NotBlank(r.NameTR), "name_tr", "Turkish name is required")
	v.Check(validator.MaxRunes(r.NameTR, maxNameRunes), "name_tr", "Turkish name must be at most 100 characters")
	v.Check(validator.MaxRunes(r.NameEN, maxNameRunes), "name_en", "English name must be at most 100 characters")
	v.Check(validator.MaxRunes(r.NameAR, maxNameRunes), "name_ar", "Arabic name must be at most 100 characters")
	return v.Valid()
}

// UpdateCategoryRequest is a sparse update. Absent or blank text fields keep
// their stored value, a present order is applied after coercion, and Clear
// lists fields to set to null.
type UpdateCategoryRequest struct {
	NameTR   *string            `json:"name_tr,omitempty"`
	NameEN   *string            `json:"name_en,omitempty"`
	NameAR   *string            `json:"name_ar,omitempty"`
	Order    *models.FormNumber `json:"order,omitempty" swaggertype:"number"`
	ImageURL *string            `json:"image_url,omitempty"`
	Clear    []string           `json:"clear,omitempty" example:"image_url"`
}

func (r *UpdateCategoryRequest) Normalize(s sanitizer.HTMLStripperer) {
	for _, f := range []*string{r.NameTR, r.NameEN, r.NameAR, r.ImageURL} {
		if f != nil {
			*f = s.StripHTML(*f)
		}
	}
}

func (r *UpdateCategoryRequest) Validate(v *validator.Validator) bool {
	for field, value := range map[string]*string{"name_tr": r.NameTR, "name_en": r.NameEN, "name_ar": r.NameAR} {
		if value != nil {
			v.Check(validator.MaxRunes(*value, maxNameRunes), field, "Name must be at most 100 characters")
		}
	}
	v.Check(validator.AllIn(r.Clear, ClearImageURL), "clear", "Only image_url can be cleared")
	return v.Valid()
}

// fields turns the sparse request into the merge patch.
func (r *UpdateCategoryRequest) fields() tree.Fields {
	f := tree.Fields{}
	setText := func(key string, value *string) {
		if value != nil && *value != "" {
			f[key] = *value
		}
	}
	setText("name_tr", r.NameTR)
	setText("name_en", r.NameEN)
	setText("name_ar", r.NameAR)
	setText("image_url", r.ImageURL)

	if r.Order != nil && r.Order.Valid() {
		f["order"] = r.Order.NonNegativeInt()
	}
	for _, name := range r.Clear {
		f[name] = nil
	}
	return f
}

// CategoryResponse is a stored category as returned by the API.
type CategoryResponse struct {
	ID        string  `json:"id"`
	NameTR    string  `json:"name_tr"`
	NameEN    string  `json:"name_en"`
	NameAR    string  `json:"name_ar"`
	Order     int     `json:"order"`
	ImageURL  *string `json:"image_url"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

func ToCategoryResponse(c *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		NameTR:    c.NameTR,
		NameEN:    c.NameEN,
		NameAR:    c.NameAR,
		Order:     c.Order,
		ImageURL:  c.ImageURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToCategoryResponseList(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCategoryResponse(&categories[i])
	}
	return responses
}
