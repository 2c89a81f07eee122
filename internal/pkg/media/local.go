package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes binaries to a directory on disk and serves them
// back under /uploads/<name>. Used when Cloudinary is not configured.
type LocalStore struct {
	dir     string
	urlBase string
}

// NewLocalStore creates the uploads directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{dir: dir, urlBase: "/uploads/"}, nil
}

// Dir returns the directory served under /uploads.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Upload(_ context.Context, r io.Reader, folder string) (Asset, error) {
	name := uuid.New().String()
	if folder != "" {
		name = sanitizeFolder(folder) + "-" + name
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return Asset{}, fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return Asset{}, fmt.Errorf("write upload file: %w", err)
	}

	return Asset{URL: s.urlBase + name, AssetID: name}, nil
}

func (s *LocalStore) Delete(_ context.Context, assetID string) error {
	name := filepath.Base(assetID)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func sanitizeFolder(folder string) string {
	folder = strings.ToLower(folder)
	var b strings.Builder
	for _, r := range folder {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
