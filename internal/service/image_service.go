package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
	"github.com/quiltanddrapes/fabrication-api/internal/storage"
)

// ImageService stores window photos and hands out the retrieval URLs
// that get embedded in order entries.
type ImageService struct {
	store         storage.ImageStore
	retrievalBase string
	logger        *zap.Logger
}

func NewImageService(store storage.ImageStore, retrievalBase string, logger *zap.Logger) *ImageService {
	return &ImageService{
		store:         store,
		retrievalBase: retrievalBase,
		logger:        logger,
	}
}

// Upload stores an image and returns its id plus the URL clients
// should embed in the order payload.
func (s *ImageService) Upload(ctx context.Context, filename, contentType string, data io.Reader) (*domain.UploadResponse, error) {
	id, size, err := s.store.Save(ctx, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	s.logger.Info("image uploaded",
		zap.String("image_id", id),
		zap.String("filename", filename),
		zap.Int64("size", size),
	)

	return &domain.UploadResponse{
		ID:  id,
		URL: s.retrievalBase + "/" + id,
	}, nil
}

// Download returns the image contents and content type for an id.
func (s *ImageService) Download(ctx context.Context, id string) (io.ReadCloser, string, error) {
	reader, contentType, err := s.store.Open(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "invalid image id") {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	return reader, contentType, nil
}

// Delete removes a stored image. Deleting an image that is already
// gone is not an error; a malformed id is.
func (s *ImageService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if strings.Contains(err.Error(), "invalid image id") {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete image: %w", err)
	}
	s.logger.Info("image deleted", zap.String("image_id", id))
	return nil
}
