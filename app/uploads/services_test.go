package uploads

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/qrmenu/internal/blob"
	"github.com/joefazee/qrmenu/internal/logger"
	"github.com/joefazee/qrmenu/internal/validator"
	"github.com/joefazee/qrmenu/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

var clock = time.UnixMilli(1_700_000_000_000)

func fixedNow() time.Time { return clock }

func TestUploadImage_LocalStore(t *testing.T) {
	root := t.TempDir()
	store, err := blob.NewLocalStore(root, "http://localhost:8080/media")
	require.NoError(t, err)
	svc := NewService(store, logger.NewNullLogger(), fixedNow)

	res, err := svc.UploadImage(context.Background(), FolderProducts, "baklava.PNG", 9, strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "products/1700000000000_baklava.PNG", res.Key)
	assert.Equal(t, "http://localhost:8080/media/products/1700000000000_baklava.PNG", res.URL)

	data, err := os.ReadFile(filepath.Join(root, "products", "1700000000000_baklava.PNG"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestUploadImage_ContentType(t *testing.T) {
	tests := map[string]string{
		"a.jpg":  "image/jpeg",
		"a.JPEG": "image/jpeg",
		"a.png":  "image/png",
		"a.gif":  "image/gif",
		"a.webp": "image/webp",
		"a.svg":  "image/svg+xml",
	}
	for filename, want := range tests {
		t.Run(filename, func(t *testing.T) {
			store := &MockStore{}
			store.On("Put", mock.Anything, "categories/1700000000000_"+filename, mock.Anything, want).
				Return("https://cdn.example.com/x", nil)

			svc := NewService(store, logger.NewNullLogger(), fixedNow)
			_, err := svc.UploadImage(context.Background(), FolderCategories, filename, 1, strings.NewReader("x"))
			require.NoError(t, err)
			store.AssertExpectations(t)
		})
	}
}

func TestUploadImage_Validation(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		filename string
		size     int64
		field    string
	}{
		{"unknown folder", "avatars", "a.png", 10, "folder"},
		{"empty folder", "", "a.png", 10, "folder"},
		{"bad extension", FolderProducts, "menu.pdf", 10, "file"},
		{"no extension", FolderProducts, "image", 10, "file"},
		{"too large", FolderProducts, "a.png", MaxImageBytes + 1, "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockStore{}
			svc := NewService(store, logger.NewNullLogger(), fixedNow)

			_, err := svc.UploadImage(context.Background(), tt.folder, tt.filename, tt.size, strings.NewReader("x"))

			var verr *validator.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
			store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("exactly at the limit", func(t *testing.T) {
		store := &MockStore{}
		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("u", nil)
		svc := NewService(store, logger.NewNullLogger(), fixedNow)

		_, err := svc.UploadImage(context.Background(), FolderProducts, "a.png", MaxImageBytes, strings.NewReader("x"))
		assert.NoError(t, err)
	})
}

func TestUploadImage_StoreFailure(t *testing.T) {
	cause := errors.New("cloud unavailable")
	store := &MockStore{}
	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", cause)
	svc := NewService(store, logger.NewNullLogger(), fixedNow)

	res, err := svc.UploadImage(context.Background(), FolderProducts, "a.png", 1, strings.NewReader("x"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, models.ErrUpload)
	assert.ErrorIs(t, err, cause)
	store.AssertNumberOfCalls(t, "Put", 1)
}
