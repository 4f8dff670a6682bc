package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"go.uber.org/zap"
)

// AzureBlobStore implements ImageStore on Azure Blob Storage. Blob
// names are the flat image ids.
type AzureBlobStore struct {
	client        *azblob.Client
	containerName string
	logger        *zap.Logger
}

// NewAzureBlobStore creates an Azure Blob image store.
func NewAzureBlobStore(connectionString, containerName string, logger *zap.Logger) (*AzureBlobStore, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	// Ensure container exists
	_, err = client.CreateContainer(context.Background(), containerName, nil)
	if err != nil && !strings.Contains(err.Error(), "ContainerAlreadyExists") {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	logger.Info("Azure Blob Storage initialized",
		zap.String("container", containerName),
	)

	return &AzureBlobStore{
		client:        client,
		containerName: containerName,
		logger:        logger,
	}, nil
}

// Save uploads the image under a fresh id.
func (s *AzureBlobStore) Save(ctx context.Context, filename string, contentType string, data io.Reader) (string, int64, error) {
	id := newImageID(filename)

	uploadOptions := &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	}

	// Wrap data in counting reader to track size
	reader := &countingReader{r: data}

	_, err := s.client.UploadStream(ctx, s.containerName, id, reader, uploadOptions)
	if err != nil {
		return "", 0, fmt.Errorf("failed to upload blob: %w", err)
	}

	s.logger.Info("Image uploaded to Azure Blob Storage",
		zap.String("image_id", id),
		zap.String("container", s.containerName),
		zap.String("content_type", contentType),
		zap.Int64("size", reader.count),
	)

	return id, reader.count, nil
}

// countingReader wraps an io.Reader and counts the number of bytes read
type countingReader struct {
	r     io.Reader
	count int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.count += int64(n)
	return n, err
}

// Open downloads the image for an id.
func (s *AzureBlobStore) Open(ctx context.Context, id string) (io.ReadCloser, string, error) {
	if !validImageID(id) {
		return nil, "", fmt.Errorf("invalid image id: %s", id)
	}

	resp, err := s.client.DownloadStream(ctx, s.containerName, id, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download blob: %w", err)
	}

	contentType := contentTypeFor(id)
	if resp.ContentType != nil && *resp.ContentType != "" {
		contentType = *resp.ContentType
	}

	return resp.Body, contentType, nil
}

// Delete removes the blob for an id.
func (s *AzureBlobStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteBlob(ctx, s.containerName, id, nil)
	if err != nil {
		// Blob already gone is fine
		if strings.Contains(err.Error(), "BlobNotFound") {
			s.logger.Debug("Blob already deleted or not found",
				zap.String("image_id", id),
				zap.String("container", s.containerName),
			)
			return nil
		}
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	s.logger.Info("Image deleted from Azure Blob Storage",
		zap.String("image_id", id),
		zap.String("container", s.containerName),
	)

	return nil
}
