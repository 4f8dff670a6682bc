// Package storage persists window photos. Images are keyed by a flat
// id (uuid hex plus extension) so the id can ride in a retrieval URL
// path segment.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/config"
)

// ImageStore defines the interface for image storage operations
type ImageStore interface {
	// Save stores the image and returns its id and size.
	Save(ctx context.Context, filename string, contentType string, data io.Reader) (string, int64, error)
	// Open returns the image contents and content type for an id.
	Open(ctx context.Context, id string) (io.ReadCloser, string, error)
	// Delete removes an image. Deleting a missing image is not an error.
	Delete(ctx context.Context, id string) error
}

// NewImageStore creates an image store based on configuration.
// For local mode, files are stored on the local filesystem.
// For cloud/azure mode, files are stored in Azure Blob Storage.
func NewImageStore(cfg *config.StorageConfig, logger *zap.Logger) (ImageStore, error) {
	switch cfg.Mode {
	case "local":
		return NewLocalStore(cfg.LocalBasePath)
	case "cloud", "azure":
		if cfg.CloudConnectionString == "" {
			return nil, fmt.Errorf("cloud connection string required for azure storage")
		}
		return NewAzureBlobStore(cfg.CloudConnectionString, cfg.CloudContainer, logger)
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.Mode)
	}
}

// newImageID builds a flat image id from a fresh uuid and the
// original file extension.
func newImageID(filename string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	ext := strings.ToLower(filepath.Ext(filename))
	return id + ext
}

// contentTypeFor derives a content type from the id's extension.
func contentTypeFor(id string) string {
	if ct := mime.TypeByExtension(filepath.Ext(id)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// validImageID rejects ids that could escape the storage root.
func validImageID(id string) bool {
	return id != "" && !strings.ContainsAny(id, "/\\") && !strings.Contains(id, "..")
}

// LocalStore implements ImageStore on the local filesystem. Files are
// sharded into two levels of subdirectories by id prefix to keep
// directory sizes sane.
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a local image store rooted at basePath.
func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{basePath: basePath}, nil
}

func (s *LocalStore) pathFor(id string) string {
	return filepath.Join(s.basePath, id[:2], id[2:4], id)
}

// Save writes the image under a fresh id.
func (s *LocalStore) Save(ctx context.Context, filename string, contentType string, data io.Reader) (string, int64, error) {
	id := newImageID(filename)
	fullPath := s.pathFor(id)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, data)
	if err != nil {
		os.Remove(fullPath) // Cleanup on error
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return id, size, nil
}

// Open returns the stored image for an id.
func (s *LocalStore) Open(ctx context.Context, id string) (io.ReadCloser, string, error) {
	if !validImageID(id) || len(id) < 4 {
		return nil, "", fmt.Errorf("invalid image id: %s", id)
	}

	file, err := os.Open(s.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("image not found: %s", id)
		}
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}

	return file, contentTypeFor(id), nil
}

// Delete removes a stored image.
func (s *LocalStore) Delete(ctx context.Context, id string) error {
	if !validImageID(id) || len(id) < 4 {
		return fmt.Errorf("invalid image id: %s", id)
	}

	if err := os.Remove(s.pathFor(id)); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
