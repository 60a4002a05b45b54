package products

import (
	"context"
	"encoding/json"
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

func (r *repository) List(ctx context.Context) ([]models.Product, error) {
	nodes, err := r.tree.ListOrdered(ctx, models.ProductsPath, "order")
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %w", models.ErrStore, err)
	}

	products := make([]models.Product, 0, len(nodes))
	for _, n := range nodes {
		p, err := decode(n)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Order < products[j].Order
	})
	return products, nil
}

func (r *repository) Get(ctx context.Context, id string) (*models.Product, error) {
	node, err := r.tree.Get(ctx, models.ProductsPath, id)
	if errors.Is(err, tree.ErrNodeNotFound) {
		return nil, models.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get product %s: %w", models.ErrStore, id, err)
	}
	return decode(*node)
}

func (r *repository) Create(ctx context.Context, p *models.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	id := tree.NewKey()
	err := r.tree.Set(ctx, models.ProductsPath, id, tree.Fields{
		"name_tr":        p.NameTR,
		"name_en":        p.NameEN,
		"name_ar":        p.NameAR,
		"description_tr": p.DescriptionTR,
		"description_en": p.DescriptionEN,
		"description_ar": p.DescriptionAR,
		"category_id":    p.CategoryID,
		"price":          json.Number(p.Price.String()),
		"order":          p.Order,
		"image_url":      p.ImageURL,
		"is_active":      p.Active(),
		"created_at":     tree.ServerTimestamp,
		"updated_at":     tree.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("%w: create product: %w", models.ErrStore, err)
	}

	stored, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	*p = *stored
	return nil
}

func (r *repository) Update(ctx context.Context, id string, fields tree.Fields) error {
	patch := make(tree.Fields, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch["updated_at"] = tree.ServerTimestamp

	err := r.tree.Update(ctx, models.ProductsPath, id, patch)
	if errors.Is(err, tree.ErrNodeNotFound) {
		return models.ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: update product %s: %w", models.ErrStore, id, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.tree.Delete(ctx, models.ProductsPath, id); err != nil {
		return fmt.Errorf("%w: delete product %s: %w", models.ErrStore, id, err)
	}
	return nil
}

// ActivateAll rewrites every record with is_active set, keeping all other
// stored fields as they are, unknown ones included. updated_at is not touched.
func (r *repository) ActivateAll(ctx context.Context) (int, error) {
	nodes, err := r.tree.List(ctx, models.ProductsPath)
	if err != nil {
		return 0, fmt.Errorf("%w: activate products: %w", models.ErrStore, err)
	}
	if len(nodes) == 0 {
		return 0, nil
	}

	values := make(map[string]tree.Fields, len(nodes))
	for _, n := range nodes {
		fields, err := n.Fields()
		if err != nil {
			return 0, fmt.Errorf("%w: decode product %s: %w", models.ErrStore, n.Key, err)
		}
		fields["is_active"] = true
		values[n.Key] = fields
	}

	if err := r.tree.SetMany(ctx, models.ProductsPath, values); err != nil {
		return 0, fmt.Errorf("%w: activate products: %w", models.ErrStore, err)
	}
	return len(values), nil
}

func (r *repository) Count(ctx context.Context) (total, active int, err error) {
	products, err := r.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	for i := range products {
		if products[i].Active() {
			active++
		}
	}
	return len(products), active, nil
}

func decode(n tree.Node) (*models.Product, error) {
	var p models.Product
	if err := n.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: decode product %s: %w", models.ErrStore, n.Key, err)
	}
	p.ID = n.Key
	return &p, nil
}
