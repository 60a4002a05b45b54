package tree

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var nodeColumns = []string{"path", "key", "value", "created_at", "updated_at"}

func newMockTree(t *testing.T) (Tree, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return NewPostgresTree(gormDB, WithClock(fixedClock)), mock
}

func TestPostgresTree_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		tr, mock := newMockTree(t)
		mock.ExpectQuery(`SELECT \* FROM "tree_nodes" WHERE path = \$1 AND "key" = \$2`).
			WillReturnRows(sqlmock.NewRows(nodeColumns).
				AddRow("categories", "abc", `{"name_tr":"Tatlı"}`, fixedNow, fixedNow))

		node, err := tr.Get(context.Background(), "categories", "abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", node.Key)
		assert.JSONEq(t, `{"name_tr":"Tatlı"}`, string(node.Value))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		tr, mock := newMockTree(t)
		mock.ExpectQuery(`SELECT \* FROM "tree_nodes" WHERE path = \$1 AND "key" = \$2`).
			WillReturnRows(sqlmock.NewRows(nodeColumns))

		_, err := tr.Get(context.Background(), "categories", "abc")
		assert.ErrorIs(t, err, ErrNodeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		tr, mock := newMockTree(t)
		boom := errors.New("connection reset")
		mock.ExpectQuery(`SELECT \* FROM "tree_nodes"`).WillReturnError(boom)

		_, err := tr.Get(context.Background(), "categories", "abc")
		assert.ErrorIs(t, err, boom)
	})
}

func TestPostgresTree_ListOrdered(t *testing.T) {
	tr, mock := newMockTree(t)
	mock.ExpectQuery(`SELECT \* FROM "tree_nodes" WHERE path = \$1 ORDER BY CASE WHEN jsonb_typeof`).
		WillReturnRows(sqlmock.NewRows(nodeColumns).
			AddRow("categories", "b", `{"order":0}`, fixedNow, fixedNow).
			AddRow("categories", "a", `{"order":4}`, fixedNow, fixedNow))

	nodes, err := tr.ListOrdered(context.Background(), "categories", "order")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "b", nodes[0].Key)
	assert.Equal(t, "a", nodes[1].Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTree_List(t *testing.T) {
	tr, mock := newMockTree(t)
	mock.ExpectQuery(`SELECT \* FROM "tree_nodes" WHERE path = \$1 ORDER BY "key"`).
		WithArgs("products").
		WillReturnRows(sqlmock.NewRows(nodeColumns))

	nodes, err := tr.List(context.Background(), "products")
	require.NoError(t, err)
	assert.Empty(t, nodes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTree_Set(t *testing.T) {
	tr, mock := newMockTree(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "tree_nodes" .* ON CONFLICT \("path","key"\) DO UPDATE SET`).
		WithArgs("categories", "abc", `{"created_at":1700000000000,"name_tr":"Kahve"}`, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tr.Set(context.Background(), "categories", "abc", Fields{"name_tr": "Kahve", "created_at": ServerTimestamp})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTree_Update(t *testing.T) {
	t.Run("merges under row lock", func(t *testing.T) {
		tr, mock := newMockTree(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "tree_nodes" WHERE path = \$1 AND "key" = \$2 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(nodeColumns).
				AddRow("products", "p1", `{"name_tr":"Ayran","price":10}`, fixedNow, fixedNow))
		mock.ExpectExec(`UPDATE "tree_nodes" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tr.Update(context.Background(), "products", "p1", Fields{"price": 12})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row rolls back", func(t *testing.T) {
		tr, mock := newMockTree(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).WillReturnRows(sqlmock.NewRows(nodeColumns))
		mock.ExpectRollback()

		err := tr.Update(context.Background(), "products", "ghost", Fields{"price": 12})
		assert.ErrorIs(t, err, ErrNodeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTree_Delete(t *testing.T) {
	tr, mock := newMockTree(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tree_nodes" WHERE path = \$1 AND "key" = \$2`).
		WithArgs("categories", "abc").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, tr.Delete(context.Background(), "categories", "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTree_SetManyEmpty(t *testing.T) {
	tr, mock := newMockTree(t)
	require.NoError(t, tr.SetMany(context.Background(), "products", map[string]Fields{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
