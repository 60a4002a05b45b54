package uploads

import (
	"context"
	"io"
)

type Service interface {
	// UploadImage stores body under {folder}/{unixMillis}_{filename} and
	// returns its public URL.
	UploadImage(ctx context.Context, folder, filename string, size int64, body io.Reader) (*UploadResponse, error)
}
