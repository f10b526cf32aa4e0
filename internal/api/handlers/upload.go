package handlers

import (
	"mime/multipart"
	"net/http"

	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// formUpload opens the multipart file under field. The returned closer must be
// called once the service is done with the reader.
func formUpload(c *gin.Context, field string) (*service.Upload, func(), bool) {
	header, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return nil, nil, false
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
		return nil, nil, false
	}
	return &service.Upload{
		FileName:    header.Filename,
		ContentType: contentType(header),
		Size:        header.Size,
		Reader:      file,
	}, func() { _ = file.Close() }, true
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
