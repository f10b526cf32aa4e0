package handlers

import (
	"net/http"

	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceHandler handles HTTP requests for the resource library
type ResourceHandler struct {
	resourceService service.ResourceServiceInterface
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resourceService service.ResourceServiceInterface) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// ListResources returns the library, optionally filtered by category
// @Summary List resources
// @Tags resources
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} service.ResourceResponse
// @Security BearerAuth
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	resources, err := h.resourceService.ListResources(c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// CreateResource adds a resource to the library
// @Summary Create resource
// @Tags resources
// @Accept json
// @Produce json
// @Param resource body service.CreateResourceRequest true "Resource data"
// @Success 201 {object} service.ResourceResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req service.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resource, err := h.resourceService.CreateResource(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// DeleteResource removes a resource
// @Summary Delete resource
// @Tags resources
// @Param id path string true "Resource ID (UUID)"
// @Success 204 "Resource deleted"
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Security BearerAuth
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "resource")
	if !ok {
		return
	}
	if err := h.resourceService.DeleteResource(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadFile stores a resource file and returns its public URL
// @Summary Upload resource file
// @Description PDF, Office documents, images, MP4 or ZIP
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Success 201 {object} service.UploadResponse
// @Failure 400 {object} ErrorResponse "Missing, unsupported or oversized file"
// @Security BearerAuth
// @Router /resources/upload [post]
func (h *ResourceHandler) UploadFile(c *gin.Context) {
	upload, closeFn, ok := formUpload(c, "file")
	if !ok {
		return
	}
	defer closeFn()

	resp, err := h.resourceService.UploadFile(upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
