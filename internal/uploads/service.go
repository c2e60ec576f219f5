package uploads

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"regive-backend/internal/pkg/apperrors"
)

// Upload constraints (multer parity: 5MB, image formats only).
const (
	MaxFileSize  = 5 * 1024 * 1024
	MaxFileCount = 5
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Service validates image uploads and pushes them to the storage client.
type Service struct {
	Client StorageClient
}

// File is one uploaded image.
type File struct {
	Name string
	Data []byte
}

// StoreImages validates and uploads up to MaxFileCount images, returning
// their public URLs in input order.
func (s *Service) StoreImages(ctx context.Context, files []File) ([]string, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidation("files", "At least one image is required")
	}
	if len(files) > MaxFileCount {
		return nil, apperrors.NewValidation("files", fmt.Sprintf("At most %d images are allowed", MaxFileCount))
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		if len(f.Data) > MaxFileSize {
			return nil, apperrors.NewValidation("files", fmt.Sprintf("File %s exceeds the 5MB limit", f.Name))
		}
		ext := strings.ToLower(filepath.Ext(f.Name))
		if !allowedExtensions[ext] {
			return nil, apperrors.NewValidation("files", "Only image files are allowed!")
		}

		base := strings.TrimSuffix(filepath.Base(f.Name), ext)
		publicID := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
		url, err := s.Client.Store(ctx, publicID, f.Name, f.Data)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
