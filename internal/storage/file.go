package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/menu"
)

var ErrNotFound = errors.New("menu document not found")

// Store is a place menu documents are read from and published to.
type Store interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, body io.Reader) (string, error)
}

// FileStore keeps menu documents in a local directory, where the scraper
// writes them.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func checkName(name string) error {
	if err := menu.ValidateDocumentName(name); err != nil {
		return fmt.Errorf("document %q: %w", name, err)
	}
	if !filepath.IsLocal(name) {
		return fmt.Errorf("document %q: path escapes store", name)
	}
	return nil
}

func (f *FileStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (f *FileStore) Put(ctx context.Context, name string, body io.Reader) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}
