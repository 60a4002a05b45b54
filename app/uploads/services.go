package uploads

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/joefazee/qrmenu/internal/blob"
	"github.com/joefazee/qrmenu/internal/logger"
	"github.com/joefazee/qrmenu/internal/validator"
	"github.com/joefazee/qrmenu/models"
)

type service struct {
	store  blob.Store
	logger logger.Logger
	now    func() time.Time
}

func NewService(store blob.Store, l logger.Logger, now func() time.Time) Service {
	return &service{store: store, logger: l, now: now}
}

func (s *service) UploadImage(ctx context.Context, folder, filename string, size int64, body io.Reader) (*UploadResponse, error) {
	v := validator.New()
	v.Check(validator.In(folder, FolderCategories, FolderProducts), "folder", "Folder must be categories or products")
	v.Check(validator.HasExtension(filename, allowedExtensions...), "file", "Only jpg, jpeg, png, gif, webp and svg images are allowed")
	v.Check(size <= MaxImageBytes, "file", "Image must be at most 5 MB")
	if !v.Valid() {
		return nil, v.Err("Validation failed")
	}

	key := blob.ObjectKey(folder, filename, s.now())
	url, err := s.store.Put(ctx, key, body, contentType(filename))
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "upload_image", "key": key})
		return nil, fmt.Errorf("%w: %s: %w", models.ErrUpload, key, err)
	}

	s.logger.Info("image uploaded", map[string]interface{}{"key": key, "size": size})
	return &UploadResponse{URL: url, Key: key}, nil
}

func contentType(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
