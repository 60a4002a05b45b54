package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/joefazee/qrmenu/internal/tree"
	"github.com/joefazee/qrmenu/models"
)

type repository struct {
	tree tree.Tree
}

func NewRepository(t tree.Tree) Repository {
	return &repository{tree: t}
}

func (r *repository) Get(ctx context.Context, id string) (*models.Admin, error) {
	node, err := r.tree.Get(ctx, models.AdminsPath, id)
	if errors.Is(err, tree.ErrNodeNotFound) {
		return nil, models.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get admin %s: %w", models.ErrStore, id, err)
	}
	return decode(*node)
}

// GetByEmail scans every account; the admin list is a handful of records.
func (r *repository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	nodes, err := r.tree.List(ctx, models.AdminsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list admins: %w", models.ErrStore, err)
	}

	email = models.NormalizeEmail(email)
	for _, n := range nodes {
		a, err := decode(n)
		if err != nil {
			return nil, err
		}
		if models.NormalizeEmail(a.Email) == email {
			return a, nil
		}
	}
	return nil, models.ErrRecordNotFound
}

func (r *repository) Create(ctx context.Context, a *models.Admin) error {
	id := tree.NewKey()
	err := r.tree.Set(ctx, models.AdminsPath, id, tree.Fields{
		"email":         a.Email,
		"password_hash": a.PasswordHash,
		"created_at":    tree.ServerTimestamp,
		"updated_at":    tree.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("%w: create admin: %w", models.ErrStore, err)
	}

	stored, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	*a = *stored
	return nil
}

func decode(n tree.Node) (*models.Admin, error) {
	var a models.Admin
	if err := n.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: decode admin %s: %w", models.ErrStore, n.Key, err)
	}
	a.ID = n.Key
	return &a, nil
}
