package categories

import (
	"context"

	"github.com/joefazee/qrmenu/internal/tree"
	"github.com/joefazee/qrmenu/models"
)

type Repository interface {
	// List returns every category ascending by order.
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	// Create stores c under a new key and fills in its ID and timestamps.
	Create(ctx context.Context, c *models.Category) error
	// Update merges fields into an existing category and re-stamps updated_at.
	Update(ctx context.Context, id string, fields tree.Fields) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type Service interface {
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (*CategoryResponse, error)
	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req *UpdateCategoryRequest) (*CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
}
