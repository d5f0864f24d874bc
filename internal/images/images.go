// Package images hosts product images behind a small interface so the
// storefront never talks to a hosting provider directly.
package images

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrBadURL = errors.New("image url outside media root")

// Store uploads raw image data and returns a URL the templates can render;
// Delete removes a previously uploaded image by that URL.
type Store interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// DiskStore keeps images under a local media directory served at /media/*.
type DiskStore struct {
	Root string
}

func NewDiskStore(root string) *DiskStore {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &DiskStore{Root: root}
}

func (s *DiskStore) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		ext = ".jpg"
	}
	rel := filepath.Join("products", uuid.NewString()+ext)
	full := filepath.Join(s.Root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(full)
		return "", err
	}
	return "/media/" + filepath.ToSlash(rel), nil
}

// Delete removes the file backing the URL. Unknown or already-deleted URLs
// are not errors: delete flows must not fail because the image is gone.
func (s *DiskStore) Delete(_ context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, "/media/")
	if !ok || rel == "" {
		return nil
	}
	clean := filepath.Clean(rel)
	// Block traversal out of the media root.
	if strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return ErrBadURL
	}
	err := os.Remove(filepath.Join(s.Root, clean))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
