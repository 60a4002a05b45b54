// Package blob uploads binary objects and hands back their public URL.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"unicode"
)

const (
	CloudinaryBackend = "cloudinary"
	LocalBackend      = "local"
)

var (
	ErrObjectExists = errors.New("blob: object already exists")
	ErrInvalidKey   = errors.New("blob: invalid object key")
)

// Store writes an object under key and returns a publicly fetchable URL.
// Stores never overwrite or delete existing objects.
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// ObjectKey builds {folder}/{unixMillis}_{filename}.
func ObjectKey(folder, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d_%s", folder, now.UnixMilli(), cleanFilename(filename))
}

func cleanFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return "file"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

func checkKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}
