// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/adapter"
)

// localFileStorage implements adapter.FileStorage on the local filesystem.
// Stored files get a random name so uploads can never collide or overwrite
// each other; the original filename only contributes its extension.
type localFileStorage struct {
	dir string
}

// NewLocalFileStorage creates a file storage rooted at dir, creating the
// directory if needed.
func NewLocalFileStorage(dir string) (adapter.FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localFileStorage{dir: dir}, nil
}

// Store writes the file under a generated name and returns the serving path.
func (s *localFileStorage) Store(ctx context.Context, data []byte, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	name := uuid.New().String() + ext

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}

	return "/uploads/" + name, nil
}

// Delete removes a previously stored file. A missing file is not an error.
func (s *localFileStorage) Delete(ctx context.Context, reference string) error {
	name := filepath.Base(reference)

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
