package products

import (
	"context"

	"github.com/joefazee/qrmenu/internal/tree"
	"github.com/joefazee/qrmenu/models"
)

type Repository interface {
	// List returns every product ascending by order.
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, fields tree.Fields) error
	Delete(ctx context.Context, id string) error
	// ActivateAll sets is_active on every stored product and returns how many
	// records were written.
	ActivateAll(ctx context.Context) (int, error)
	// Count returns the number of stored products and how many of them are active.
	Count(ctx context.Context) (total, active int, err error)
}

type Service interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*ProductResponse, error)
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	ActivateAll(ctx context.Context) (*ActivateAllResponse, error)
}
