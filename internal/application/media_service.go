package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abizer007/EcoThreads/pkg/helpers"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MediaService uploads item images to GCS under items/{userID}/{uuid}{ext}.
type MediaService struct {
	GCS      *storage.Client
	Bucket   string
	MaxBytes int64
	Logger   *logrus.Logger
}

func NewMediaService(gcs *storage.Client, bucket string, maxBytes int64, logger *logrus.Logger) *MediaService {
	return &MediaService{GCS: gcs, Bucket: bucket, MaxBytes: maxBytes, Logger: logger}
}

// Upload stores the image and returns its object path and public URL.
func (s *MediaService) Upload(ctx context.Context, userID string, r io.Reader, filename, contentType string, size int64) (string, string, error) {
	if s.GCS == nil || s.Bucket == "" {
		return "", "", errors.New("object storage not configured")
	}
	if s.MaxBytes > 0 && size > s.MaxBytes {
		return "", "", fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, s.MaxBytes)
	}
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return "", "", fmt.Errorf("%w: content type must be jpeg, png or webp", ErrValidation)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := path.Join("items", userID, uuid.NewString()+ext)
	url, err := helpers.UploadObject(ctx, s.GCS, s.Bucket, objectPath, contentType, r)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("image upload failed")
		}
		return "", "", err
	}
	return objectPath, url, nil
}
