package menu

import (
	"context"

	"github.com/joefazee/qrmenu/models"
)

type Service interface {
	// GetMenu returns categories in order with their active products. A
	// non-empty categoryID narrows the menu to that category.
	GetMenu(ctx context.Context, lang models.Language, categoryID string) (*Response, error)
}
