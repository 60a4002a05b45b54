package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1_712_345_678_901)

	tests := []struct {
		name     string
		folder   string
		filename string
		want     string
	}{
		{"plain", "products", "ayran.png", "products/1712345678901_ayran.png"},
		{"spaces", "categories", "ana yemek.jpg", "categories/1712345678901_ana_yemek.jpg"},
		{"path stripped", "products", "../../etc/passwd", "products/1712345678901_passwd"},
		{"windows path", "products", `C:\photos\tea.webp`, "products/1712345678901_tea.webp"},
		{"non ascii", "products", "çay.gif", "products/1712345678901__ay.gif"},
		{"empty", "products", "", "products/1712345678901_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectKey(tt.folder, tt.filename, now))
		})
	}
}

func TestLocalStore_Put(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "http://localhost:8080/media/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Put(ctx, "products/1_tea.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/products/1_tea.png", url)

	data, err := os.ReadFile(filepath.Join(root, "products", "1_tea.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	t.Run("never overwrites", func(t *testing.T) {
		_, err := store.Put(ctx, "products/1_tea.png", strings.NewReader("other"), "image/png")
		assert.ErrorIs(t, err, ErrObjectExists)

		data, err := os.ReadFile(filepath.Join(root, "products", "1_tea.png"))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("rejects escaping keys", func(t *testing.T) {
		_, err := store.Put(ctx, "../outside.png", strings.NewReader("x"), "image/png")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Put(cctx, "products/2_tea.png", strings.NewReader("x"), "image/png")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type mockUploadAPI struct {
	mock.Mock
}

func (m *mockUploadAPI) Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	args := m.Called(ctx, file, params)
	res, _ := args.Get(0).(*uploader.UploadResult)
	return res, args.Error(1)
}

func TestCloudinaryStore_Put(t *testing.T) {
	ctx := context.Background()

	t.Run("returns secure url", func(t *testing.T) {
		up := new(mockUploadAPI)
		store := &cloudinaryStore{upload: up}
		body := strings.NewReader("img")

		up.On("Upload", ctx, body, mock.MatchedBy(func(p uploader.UploadParams) bool {
			return p.PublicID == "categories/5_soup" && p.Overwrite != nil && !*p.Overwrite
		})).Return(&uploader.UploadResult{SecureURL: "https://res.cloudinary.com/demo/categories/5_soup.jpg"}, nil)

		url, err := store.Put(ctx, "categories/5_soup.jpg", body, "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/demo/categories/5_soup.jpg", url)
		up.AssertExpectations(t)
	})

	t.Run("transport error", func(t *testing.T) {
		up := new(mockUploadAPI)
		store := &cloudinaryStore{upload: up}
		boom := errors.New("dial tcp: timeout")
		up.On("Upload", ctx, mock.Anything, mock.Anything).Return(nil, boom)

		_, err := store.Put(ctx, "products/1_a.png", strings.NewReader("x"), "image/png")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("api error in result", func(t *testing.T) {
		up := new(mockUploadAPI)
		store := &cloudinaryStore{upload: up}
		up.On("Upload", ctx, mock.Anything, mock.Anything).
			Return(&uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}, nil)

		_, err := store.Put(ctx, "products/1_a.png", strings.NewReader("x"), "image/png")
		assert.ErrorContains(t, err, "Invalid image file")
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := NewCloudinaryStore("")
		assert.Error(t, err)
	})
}
