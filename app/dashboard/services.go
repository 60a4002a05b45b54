package dashboard

import (
	"context"

	"github.com/joefazee/qrmenu/app/categories"
	"github.com/joefazee/qrmenu/app/products"
	"github.com/joefazee/qrmenu/internal/logger"
)

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	categories categories.Repository
	products   products.Repository
	logger     logger.Logger
}

func NewService(c categories.Repository, p products.Repository, l logger.Logger) Service {
	return &service{categories: c, products: p, logger: l}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	cats, err := s.categories.Count(ctx)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "count_categories"})
		return nil, err
	}
	total, active, err := s.products.Count(ctx)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "count_products"})
		return nil, err
	}
	return &Stats{
		Categories:       cats,
		Products:         total,
		ActiveProducts:   active,
		InactiveProducts: total - active,
	}, nil
}
