package tree

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type treeNode struct {
	Path      string `gorm:"primaryKey;column:path"`
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"type:jsonb;column:value;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (treeNode) TableName() string {
	return "tree_nodes"
}

type postgresTree struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostgresTree keeps every node as a row of tree_nodes. The table is
// created by the migrations in the migrations directory.
func NewPostgresTree(db *gorm.DB, opts ...Option) Tree {
	o := buildOptions(opts)
	return &postgresTree{db: db, now: o.now}
}

var upsertNode = clause.OnConflict{
	Columns:   []clause.Column{{Name: "path"}, {Name: "key"}},
	DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
}

func (p *postgresTree) Get(ctx context.Context, path, key string) (*Node, error) {
	var row treeNode
	err := p.db.WithContext(ctx).
		Where(`path = ? AND "key" = ?`, path, key).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Node{Key: row.Key, Value: []byte(row.Value)}, nil
}

func (p *postgresTree) List(ctx context.Context, path string) ([]Node, error) {
	var rows []treeNode
	err := p.db.WithContext(ctx).
		Where("path = ?", path).
		Order(`"key"`).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toNodes(rows), nil
}

func (p *postgresTree) ListOrdered(ctx context.Context, path, child string) ([]Node, error) {
	var rows []treeNode
	err := p.db.WithContext(ctx).
		Where("path = ?", path).
		Order(clause.Expr{
			SQL:  `CASE WHEN jsonb_typeof(value->?) = 'number' THEN (value->>?)::numeric ELSE 0 END, "key"`,
			Vars: []any{child, child},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toNodes(rows), nil
}

func (p *postgresTree) Set(ctx context.Context, path, key string, value Fields) error {
	now := p.now()
	raw, err := encodeFields(value, now)
	if err != nil {
		return err
	}
	row := treeNode{Path: path, Key: key, Value: string(raw), CreatedAt: now, UpdatedAt: now}
	return p.db.WithContext(ctx).Clauses(upsertNode).Create(&row).Error
}

func (p *postgresTree) Update(ctx context.Context, path, key string, fields Fields) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row treeNode
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(`path = ? AND "key" = ?`, path, key).
			Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNodeNotFound
		}
		if err != nil {
			return err
		}

		now := p.now()
		raw, err := mergeFields([]byte(row.Value), fields, now)
		if err != nil {
			return err
		}
		return tx.Model(&treeNode{}).
			Where(`path = ? AND "key" = ?`, path, key).
			Updates(map[string]any{"value": string(raw), "updated_at": now}).Error
	})
}

func (p *postgresTree) SetMany(ctx context.Context, path string, values map[string]Fields) error {
	if len(values) == 0 {
		return nil
	}
	now := p.now()
	rows := make([]treeNode, 0, len(values))
	for key, value := range values {
		raw, err := encodeFields(value, now)
		if err != nil {
			return err
		}
		rows = append(rows, treeNode{Path: path, Key: key, Value: string(raw), CreatedAt: now, UpdatedAt: now})
	}
	return p.db.WithContext(ctx).Clauses(upsertNode).Create(&rows).Error
}

func (p *postgresTree) Delete(ctx context.Context, path, key string) error {
	return p.db.WithContext(ctx).
		Where(`path = ? AND "key" = ?`, path, key).
		Delete(&treeNode{}).Error
}

func toNodes(rows []treeNode) []Node {
	nodes := make([]Node, 0, len(rows))
	for _, r := range rows {
		nodes = append(nodes, Node{Key: r.Key, Value: []byte(r.Value)})
	}
	return nodes
}
