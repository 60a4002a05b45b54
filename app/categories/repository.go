package categories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/joefazee/qrmenu/internal/tree"
	"github.com/joefazee/qrmenu/models"
)

type repository struct {
	tree tree.Tree
}

func NewRepository(t tree.Tree) Repository {
	return &repository{tree: t}
}

func (r *repository) List(ctx context.Context) ([]models.Category, error) {
	nodes, err := r.tree.ListOrdered(ctx, models.CategoriesPath, "order")
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %w", models.ErrStore, err)
	}

	categories := make([]models.Category, 0, len(nodes))
	for _, n := range nodes {
		c, err := decode(n)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}

	// Backends only hint at ordering.
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
	return categories, nil
}

func (r *repository) Get(ctx context.Context, id string) (*models.Category, error) {
	node, err := r.tree.Get(ctx, models.CategoriesPath, id)
	if errors.Is(err, tree.ErrNodeNotFound) {
		return nil, models.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get category %s: %w", models.ErrStore, id, err)
	}
	return decode(*node)
}

func (r *repository) Create(ctx context.Context, c *models.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	id := tree.NewKey()
	err := r.tree.Set(ctx, models.CategoriesPath, id, tree.Fields{
		"name_tr":    c.NameTR,
		"name_en":    c.NameEN,
		"name_ar":    c.NameAR,
		"order":      c.Order,
		"image_url":  c.ImageURL,
		"created_at": tree.ServerTimestamp,
		"updated_at": tree.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("%w: create category: %w", models.ErrStore, err)
	}

	stored, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	*c = *stored
	return nil
}

func (r *repository) Update(ctx context.Context, id string, fields tree.Fields) error {
	patch := make(tree.Fields, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch["updated_at"] = tree.ServerTimestamp

	err := r.tree.Update(ctx, models.CategoriesPath, id, patch)
	if errors.Is(err, tree.ErrNodeNotFound) {
		return models.ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: update category %s: %w", models.ErrStore, id, err)
	}
	return nil
}

// Delete does not touch products that reference the category.
func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.tree.Delete(ctx, models.CategoriesPath, id); err != nil {
		return fmt.Errorf("%w: delete category %s: %w", models.ErrStore, id, err)
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	nodes, err := r.tree.List(ctx, models.CategoriesPath)
	if err != nil {
		return 0, fmt.Errorf("%w: count categories: %w", models.ErrStore, err)
	}
	return len(nodes), nil
}

func decode(n tree.Node) (*models.Category, error) {
	var c models.Category
	if err := n.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: decode category %s: %w", models.ErrStore, n.Key, err)
	}
	c.ID = n.Key
	return &c, nil
}
