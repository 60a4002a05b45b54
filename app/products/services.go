package products

import (
	"context"
	"errors"

	"github.com/joefazee/qrmenu/internal/logger"
	"github.com/joefazee/qrmenu/internal/sanitizer"
	"github.com/joefazee/qrmenu/internal/validator"
	"github.com/joefazee/qrmenu/models"
)

type service struct {
	repo      Repository
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

func NewService(repo Repository, s sanitizer.HTMLStripperer, l logger.Logger) Service {
	return &service{repo: repo, sanitizer: s, logger: l}
}

func (s *service) ListProducts(ctx context.Context, filter ProductFilter) ([]ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "list_products"})
		return nil, err
	}

	matched := products[:0]
	for i := range products {
		p := &products[i]
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.ActiveOnly && !p.Active() {
			continue
		}
		matched = append(matched, *p)
	}
	return ToProductResponseList(matched), nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

func (s *service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	req.Normalize(s.sanitizer)
	v := validator.New()
	if !req.Validate(v) {
		return nil, v.Err("Validation failed")
	}

	active := req.IsActive == nil || *req.IsActive
	p := &models.Product{
		NameTR:        req.NameTR,
		NameEN:        textOrDefault(req.NameEN, req.NameTR),
		NameAR:        textOrDefault(req.NameAR, req.NameTR),
		DescriptionTR: textOrNil(req.DescriptionTR),
		DescriptionEN: textOrNil(req.DescriptionEN),
		DescriptionAR: textOrNil(req.DescriptionAR),
		CategoryID:    req.CategoryID,
		Price:         req.Price.NonNegativeDecimal(),
		Order:         req.Order.NonNegativeInt(),
		ImageURL:      textOrNil(req.ImageURL),
		IsActive:      &active,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "create_product"})
		return nil, err
	}
	s.logger.Info("product created", map[string]interface{}{"id": p.ID, "category_id": p.CategoryID})
	return ToProductResponse(p), nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*ProductResponse, error) {
	req.Normalize(s.sanitizer)
	v := validator.New()
	if !req.Validate(v) {
		return nil, v.Err("Validation failed")
	}

	if err := s.repo.Update(ctx, id, req.fields()); err != nil {
		if !errors.Is(err, models.ErrRecordNotFound) {
			s.logger.Error(err, map[string]interface{}{"op": "update_product", "id": id})
		}
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "delete_product", "id": id})
		return err
	}
	s.logger.Info("product deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *service) ActivateAll(ctx context.Context) (*ActivateAllResponse, error) {
	n, err := s.repo.ActivateAll(ctx)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "activate_all_products"})
		return nil, err
	}
	s.logger.Info("products activated", map[string]interface{}{"count": n})
	return &ActivateAllResponse{Updated: n}, nil
}

func textOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func textOrDefault(value, fallback string) *string {
	if value == "" {
		return &fallback
	}
	return &value
}
