package handlers

import (
	"net/http"
	"strconv"

	"ministry-portal-backend/internal/auth"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles calendar document analysis
type DocumentHandler struct {
	documentService service.DocumentServiceInterface
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService service.DocumentServiceInterface) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// AnalyzeDocument extracts event proposals from a calendar document
// @Summary Analyze calendar document
// @Description Sends a PDF or image to the document model and returns the proposed events. Nothing is written to the calendar.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or image"
// @Success 200 {object} service.DocumentAnalysis
// @Failure 400 {object} ErrorResponse "Missing, unsupported or oversized file"
// @Failure 500 {object} service.DocumentAnalysis "Unreadable model response"
// @Failure 503 {object} ErrorResponse "Analyzer not configured"
// @Security BearerAuth
// @Router /documents/analyze [post]
func (h *DocumentHandler) AnalyzeDocument(c *gin.Context) {
	uploaderID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return
	}
	upload, closeFn, ok := formUpload(c, "file")
	if !ok {
		return
	}
	defer closeFn()

	result, err := h.documentService.Analyze(c, uploaderID, upload)
	if err != nil {
		if service.IsAnalysisFailure(err) && result != nil {
			c.JSON(http.StatusInternalServerError, result)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListCalendarFiles returns the most recent analyses
// @Summary List analyzed calendar files
// @Tags documents
// @Produce json
// @Param limit query int false "Maximum entries" default(20)
// @Success 200 {array} service.CalendarFileResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) ListCalendarFiles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	files, err := h.documentService.ListCalendarFiles(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}
