package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/neatify/neatify-api/pkg/config"
)

// CloudinaryStore uploads report images to Cloudinary and returns their
// hosted URL. Only the URL is persisted; the bytes never touch the database.
type CloudinaryStore struct {
	client  *cloudinary.Cloudinary
	folder  string
	timeout time.Duration
}

// NewCloudinary builds a store from a cloudinary:// credential URL.
func NewCloudinary(cfg config.UploadConfig) (*CloudinaryStore, error) {
	if cfg.CloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is not set")
	}

	client, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &CloudinaryStore{client: client, folder: cfg.Folder, timeout: timeout}, nil
}

// Upload streams the image to Cloudinary and returns the secure URL.
func (s *CloudinaryStore) Upload(ctx context.Context, image io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if result.SecureURL == "" {
		// The SDK reports some API-level failures on the result rather
		// than through err.
		if result.Error.Message != "" {
			return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
		}
		return "", fmt.Errorf("cloudinary upload failed: empty secure URL")
	}

	return result.SecureURL, nil
}
