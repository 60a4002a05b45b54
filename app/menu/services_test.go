package menu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/qrmenu/app/categories"
	"github.com/joefazee/qrmenu/app/products"
	"github.com/joefazee/qrmenu/internal/logger"
	"github.com/joefazee/qrmenu/internal/tree"
	"github.com/joefazee/qrmenu/models"
)

func seed(t *testing.T) (Service, tree.Tree) {
	t.Helper()
	ctx := context.Background()
	tr := tree.NewMemoryTree()

	set := func(path, key string, f tree.Fields) {
		require.NoError(t, tr.Set(ctx, path, key, f))
	}
	set(models.CategoriesPath, "drinks", tree.Fields{"name_tr": "İçecekler", "name_en": "Drinks", "name_ar": "", "order": 2})
	set(models.CategoriesPath, "desserts", tree.Fields{"name_tr": "Tatlılar", "name_en": "Desserts", "name_ar": "حلويات", "order": 1})

	set(models.ProductsPath, "tea", tree.Fields{
		"name_tr": "Çay", "name_en": "Tea", "name_ar": "شاي", "description_en": "Black tea",
		"category_id": "drinks", "price": 12.5, "order": 1, "is_active": true,
	})
	set(models.ProductsPath, "ayran", tree.Fields{
		"name_tr": "Ayran", "category_id": "drinks", "price": 20, "order": 0, "is_active": false,
	})
	set(models.ProductsPath, "water", tree.Fields{
		"name_tr": "Su", "name_en": "Water", "category_id": "drinks", "price": 5, "order": 0,
	})
	set(models.ProductsPath, "baklava", tree.Fields{
		"name_tr": "Baklava", "name_ar": "بقلاوة", "category_id": "desserts", "price": 150, "order": 0, "is_active": true,
	})
	set(models.ProductsPath, "orphan", tree.Fields{
		"name_tr": "Yetim", "category_id": "gone", "price": 1, "order": 0, "is_active": true,
	})

	svc := NewService(categories.NewRepository(tr), products.NewRepository(tr), logger.NewNullLogger())
	return svc, tr
}

func TestGetMenu_Turkish(t *testing.T) {
	svc, _ := seed(t)

	menu, err := svc.GetMenu(context.Background(), models.LanguageTurkish, "")
	require.NoError(t, err)

	assert.Equal(t, DirectionLTR, menu.Direction)
	require.Len(t, menu.Categories, 2)
	assert.Equal(t, "Tatlılar", menu.Categories[0].Name)
	assert.Equal(t, "İçecekler", menu.Categories[1].Name)

	drinks := menu.Categories[1].Products
	require.Len(t, drinks, 2)
	assert.Equal(t, "Su", drinks[0].Name)
	assert.Equal(t, "Çay", drinks[1].Name)
	assert.Equal(t, "13", drinks[1].Price)
	assert.Equal(t, "₺13", drinks[1].DisplayPrice)
	assert.Empty(t, drinks[1].Description)
}

func TestGetMenu_Arabic(t *testing.T) {
	svc, _ := seed(t)

	menu, err := svc.GetMenu(context.Background(), models.LanguageArabic, "")
	require.NoError(t, err)

	assert.Equal(t, DirectionRTL, menu.Direction)
	assert.Equal(t, "حلويات", menu.Categories[0].Name)
	assert.Equal(t, "١٥٠", menu.Categories[0].Products[0].Price)
	assert.Equal(t, "١٥٠₺", menu.Categories[0].Products[0].DisplayPrice)

	assert.Equal(t, "", menu.Categories[1].Name)
	assert.Equal(t, "?", menu.Categories[1].Placeholder)
	assert.Equal(t, "", menu.Categories[1].Products[0].Name, "no fallback to the Turkish name")
}

func TestGetMenu_SingleCategory(t *testing.T) {
	svc, _ := seed(t)

	menu, err := svc.GetMenu(context.Background(), models.LanguageEnglish, "drinks")
	require.NoError(t, err)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, "Drinks", menu.Categories[0].Name)
	assert.Equal(t, "Black tea", menu.Categories[0].Products[1].Description)

	_, err = svc.GetMenu(context.Background(), models.LanguageEnglish, "missing")
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestGetMenu_EmptyCategoryHasNoProducts(t *testing.T) {
	svc, tr := seed(t)
	require.NoError(t, tr.Set(context.Background(), models.CategoriesPath, "soups", tree.Fields{"name_tr": "Çorbalar", "order": 0}))

	menu, err := svc.GetMenu(context.Background(), models.LanguageTurkish, "")
	require.NoError(t, err)
	require.Len(t, menu.Categories, 3)
	assert.Equal(t, "Çorbalar", menu.Categories[0].Name)
	assert.NotNil(t, menu.Categories[0].Products)
	assert.Empty(t, menu.Categories[0].Products)
}
