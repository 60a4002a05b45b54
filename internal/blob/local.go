package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type localStore struct {
	root    string
	baseURL string
}

// NewLocalStore writes objects beneath root. URLs are baseURL + "/" + key, so
// root must be served at baseURL.
func NewLocalStore(root, baseURL string) (Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &localStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *localStore) Put(ctx context.Context, key string, body io.Reader, _ string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := filepath.Join(l.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%w: %s", ErrObjectExists, key)
	}
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return l.baseURL + "/" + key, nil
}
