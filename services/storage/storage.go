package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores uploaded media and returns servable URLs.
type StorageService interface {
	// UploadImage stores the image under the folder and returns its URL and
	// public ID.
	UploadImage(ctx context.Context, file io.Reader, folder, name string) (url, publicID string, err error)
	// DeleteImage removes a previously uploaded image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage builds the storage service from API credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("storage: cloudinary credentials not configured")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) UploadImage(ctx context.Context, file io.Reader, folder, name string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: name,
	})
	if err != nil {
		return "", "", fmt.Errorf("storage: failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("storage: upload returned no public ID")
	}
	return result.SecureURL, result.PublicID, nil
}

func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete image: %w", err)
	}
	return nil
}
