package menu

import (
	"context"

	"github.com/joefazee/qrmenu/app/categories"
	"github.com/joefazee/qrmenu/app/products"
	"github.com/joefazee/qrmenu/internal/formatter"
	"github.com/joefazee/qrmenu/internal/logger"
	"github.com/joefazee/qrmenu/models"
)

type service struct {
	categories categories.Repository
	products   products.Repository
	logger     logger.Logger
}

func NewService(c categories.Repository, p products.Repository, l logger.Logger) Service {
	return &service{categories: c, products: p, logger: l}
}

func (s *service) GetMenu(ctx context.Context, lang models.Language, categoryID string) (*Response, error) {
	var cats []models.Category
	if categoryID != "" {
		c, err := s.categories.Get(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		cats = []models.Category{*c}
	} else {
		var err error
		cats, err = s.categories.List(ctx)
		if err != nil {
			s.logger.Error(err, map[string]interface{}{"op": "menu_categories"})
			return nil, err
		}
	}

	prods, err := s.products.List(ctx)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "menu_products"})
		return nil, err
	}

	res := &Response{
		Language:   lang,
		Direction:  direction(lang),
		Currency:   formatter.CurrencySymbol,
		Categories: make([]Category, len(cats)),
	}
	index := make(map[string]int, len(cats))
	for i := range cats {
		res.Categories[i] = toCategory(&cats[i], lang)
		index[cats[i].ID] = i
	}

	// Products arrive sorted by order, so appending keeps each category sorted.
	for i := range prods {
		p := &prods[i]
		if !p.Active() {
			continue
		}
		if at, ok := index[p.CategoryID]; ok {
			res.Categories[at].Products = append(res.Categories[at].Products, toProduct(p, lang))
		}
	}
	return res, nil
}
