package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/logger"
	"ministry-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxResourceBytes is the largest accepted resource upload
const MaxResourceBytes int64 = 20 << 20

var resourceTypes = map[string]struct{}{
	"image/png":          {},
	"image/jpeg":         {},
	"image/gif":          {},
	"image/webp":         {},
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.ms-excel":                                                  {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
	"application/vnd.ms-powerpoint":                                             {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"text/plain": {},
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]`)

// ResourceService handles business logic for the resource library
type ResourceService struct {
	repo      repository.ResourceRepositoryInterface
	files     FileStore
	validator *validator.Validate
	now       func() time.Time
}

// NewResourceService creates a new resource service
func NewResourceService(repo repository.ResourceRepositoryInterface, files FileStore, validator *validator.Validate) *ResourceService {
	return &ResourceService{
		repo:      repo,
		files:     files,
		validator: validator,
		now:       time.Now,
	}
}

// CreateResourceRequest represents the request to create a resource
type CreateResourceRequest struct {
	Title       string `json:"title" validate:"required,max=200" example:"Guía de discipulado"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category" validate:"required,max=100" example:"Discipulado"`
	Type        string `json:"type" validate:"required,max=50" example:"PDF"`
	FileURL     string `json:"file_url" validate:"omitempty,max=500"`
}

// ResourceResponse represents the response for resource operations
type ResourceResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	FileURL     string    `json:"file_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// UploadResponse describes a stored upload
type UploadResponse struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// CreateResource creates a new resource entry
func (s *ResourceService) CreateResource(req *CreateResourceRequest) (*ResourceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	resource := &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		FileURL:     req.FileURL,
	}
	if err := s.repo.Create(resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	resp := toResourceResponse(resource)
	return &resp, nil
}

// ListResources returns resources newest first, optionally of one category
func (s *ResourceService) ListResources(category string) ([]ResourceResponse, error) {
	resources, err := s.repo.GetAll(strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	responses := make([]ResourceResponse, len(resources))
	for i := range resources {
		responses[i] = toResourceResponse(&resources[i])
	}
	return responses, nil
}

// DeleteResource removes a resource and, when it was uploaded here, its file
func (s *ResourceService) DeleteResource(id uuid.UUID) error {
	resource, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("failed to get resource: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	if resource.FileURL != "" {
		if err := s.files.Remove(resource.FileURL); err != nil {
			logger.New().WithError(err).WithField("file_url", resource.FileURL).Debug("resource file not removed")
		}
	}
	return nil
}

// UploadFile stores a library file and returns where it can be fetched
func (s *ResourceService) UploadFile(upload *Upload) (*UploadResponse, error) {
	contentType := strings.TrimSpace(strings.SplitN(upload.ContentType, ";", 2)[0])
	if _, ok := resourceTypes[contentType]; !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFileType, contentType)
	}
	if upload.Size > MaxResourceBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeFileName(upload.FileName))
	url, err := s.files.Save("resources", name, upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	return &UploadResponse{
		FileURL:  url,
		FileName: upload.FileName,
		FileType: contentType,
		FileSize: upload.Size,
	}, nil
}

// sanitizeFileName keeps letters, digits, dots and dashes and caps the length at 50.
func sanitizeFileName(name string) string {
	safe := unsafeFileChars.ReplaceAllString(name, "_")
	if len(safe) > 50 {
		safe = safe[:50]
	}
	if safe == "" {
		safe = "file"
	}
	return safe
}

func toResourceResponse(resource *models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Description: resource.Description,
		Category:    resource.Category,
		Type:        resource.Type,
		FileURL:     resource.FileURL,
		CreatedAt:   resource.CreatedAt,
	}
}
