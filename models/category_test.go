package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	t.Run("Names", func(t *testing.T) {
		c := Category{NameTR: "Tatlılar", NameEN: "Desserts", NameAR: "حلويات"}
		assert.Equal(t, "Tatlılar", c.Names().Get(LanguageTurkish))
		assert.Equal(t, "Desserts", c.Names().Get(LanguageEnglish))
		assert.Equal(t, "حلويات", c.Names().Get(LanguageArabic))
	})

	t.Run("Placeholder", func(t *testing.T) {
		tests := []struct {
			name     string
			category Category
			lang     Language
			expected string
		}{
			{"Turkish initial", Category{NameTR: "çorbalar"}, LanguageTurkish, "Ç"},
			{"English initial", Category{NameTR: "Tatlılar", NameEN: "desserts"}, LanguageEnglish, "D"},
			{"Arabic initial", Category{NameAR: "حلويات"}, LanguageArabic, "ح"},
			{"Missing translation", Category{NameTR: "Tatlılar"}, LanguageEnglish, "?"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, tt.category.Placeholder(tt.lang))
			})
		}
	})

	t.Run("Validate", func(t *testing.T) {
		assert.NoError(t, (&Category{NameTR: "Tatlılar"}).Validate())
		assert.Equal(t, ErrInvalidCategoryName, (&Category{NameTR: "   "}).Validate())
	})
}
