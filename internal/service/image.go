package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/google/uuid"

	"personapi/internal/model"
	"personapi/internal/storage"
)

var ErrReaderNil = errors.New("reader is nil")

// ImageService handles uploaded images.
type ImageService interface {
	// Upload measures the image and, when storage is configured, persists it under
	// images/<uuid><ext>. originalFilename is echoed back unchanged.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string) (*model.ImageInfo, error)
}

type imageService struct {
	store storage.Storage
}

// NewImageService constructs an ImageService. store may be nil, in which case
// uploads are measured and discarded.
func NewImageService(store storage.Storage) ImageService {
	return &imageService{store: store}
}

// SizeKB converts a byte count to KiB rounded to two decimals.
func SizeKB(n int) float64 {
	return math.Round(float64(n)/1024*100) / 100
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string) (*model.ImageInfo, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	info := &model.ImageInfo{
		Filename: originalFilename,
		Format:   contentType,
		SizeKB:   SizeKB(len(data)),
	}
	if s.store == nil {
		return info, nil
	}

	key := "images/" + uuid.NewString() + filepath.Ext(originalFilename)
	obj, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	info.StoragePath = obj.Key
	return info, nil
}
