package categories

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

func (s *service) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "list_categories"})
		return nil, err
	}
	return ToCategoryResponseList(categories), nil
}

func (s *service) GetCategory(ctx context.Context, id string) (*CategoryResponse, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(c), nil
}

func (s *service) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*CategoryResponse, error) {
	req.Normalize(s.sanitizer)
	v := validator.New()
	if !req.Validate(v) {
		return nil, v.Err("Validation failed")
	}

	c := &models.Category{
		NameTR: req.NameTR,
		NameEN: orDefault(req.NameEN, req.NameTR),
		NameAR: orDefault(req.NameAR, req.NameTR),
		Order:  req.Order.NonNegativeInt(),
	}
	if req.ImageURL != "" {
		c.ImageURL = &req.ImageURL
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "create_category"})
		return nil, err
	}
	s.logger.Info("category created", map[string]interface{}{"id": c.ID})
	return ToCategoryResponse(c), nil
}

func (s *service) UpdateCategory(ctx context.Context, id string, req *UpdateCategoryRequest) (*CategoryResponse, error) {
	req.Normalize(s.sanitizer)
	v := validator.New()
	if !req.Validate(v) {
		return nil, v.Err("Validation failed")
	}

	if err := s.repo.Update(ctx, id, req.fields()); err != nil {
		if !errors.Is(err, models.ErrRecordNotFound) {
			s.logger.Error(err, map[string]interface{}{"op": "update_category", "id": id})
		}
		return nil, err
	}
	return s.GetCategory(ctx, id)
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "delete_category", "id": id})
		return err
	}
	s.logger.Info("category deleted", map[string]interface{}{"id": id})
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
