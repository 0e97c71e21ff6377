package service

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/storage"
)

const (
	// Size ceilings, checked before any upstream call.
	MaxHostedUploadSize = 10 * 1024 * 1024
	MaxStoryUploadSize  = 5 * 1024 * 1024
)

// StorySaver persists a story image to local disk.
type StorySaver interface {
	Save(src io.Reader, originalName string) (string, error)
}

type UploadService struct {
	images  storage.ImageHost
	archive storage.ObjectStorage
	local   StorySaver
	logger  *zap.Logger
}

func NewUploadService(images storage.ImageHost, archive storage.ObjectStorage, local StorySaver, logger *zap.Logger) *UploadService {
	return &UploadService{
		images:  images,
		archive: archive,
		local:   local,
		logger:  logger,
	}
}

func validateImage(file *multipart.FileHeader, maxSize int64) error {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("only image uploads are accepted: %w", models.ErrValidation)
	}
	if file.Size > maxSize {
		return fmt.Errorf("file exceeds the %dMB limit: %w", maxSize/(1024*1024), models.ErrValidation)
	}
	return nil
}

// UploadHosted pushes an admin upload to the external image host and returns
// the permanent URL. The original bytes are archived to the object store
// first; archive failure is logged and does not fail the upload.
func (s *UploadService) UploadHosted(file *multipart.FileHeader) (*models.UploadResult, error) {
	if err := validateImage(file, MaxHostedUploadSize); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	if s.archive != nil {
		key := fmt.Sprintf("uploads/%d/%s-%s", time.Now().Year(), uuid.NewString(), file.Filename)
		if err := s.archive.Upload(key, bytes.NewReader(data), int64(len(data))); err != nil {
			s.logger.Warn("failed to archive original upload", zap.String("key", key), zap.Error(err))
		}
	}

	hosted, err := s.images.Upload(data, file.Filename)
	if err != nil {
		s.logger.Error("image host upload failed", zap.String("filename", file.Filename), zap.Error(err))
		return nil, fmt.Errorf("image upload failed")
	}

	return &models.UploadResult{
		URL:       hosted.URL,
		DeleteURL: hosted.DeleteURL,
		ImageID:   hosted.ID,
	}, nil
}

// UploadStory saves a user story image to local disk under a generated name.
func (s *UploadService) UploadStory(file *multipart.FileHeader) (*models.StoryUploadResult, error) {
	if err := validateImage(file, MaxStoryUploadSize); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	path, err := s.local.Save(src, file.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store story image: %w", err)
	}

	return &models.StoryUploadResult{Path: path}, nil
}

// DeleteHosted is best-effort: a failed remote delete never fails the
// caller's enclosing operation, it is only logged.
func (s *UploadService) DeleteHosted(deleteURL string) {
	if err := s.images.Delete(deleteURL); err != nil {
		s.logger.Warn("remote image delete failed", zap.Error(err))
	}
}
