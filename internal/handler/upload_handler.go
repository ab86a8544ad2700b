package handler

import (
	"net/http"
	"strings"

	"studyhive/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	cloud cloudinary.Client
}

func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadImage hosts an admin-panel image (hero slide, gallery photo)
// and returns its delivery URL. Disabled when no Cloudinary
// credentials were configured.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads are not configured"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	url, thumbURL, err := h.cloud.UploadImage(c.Request.Context(), f, "studyhive/site", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "thumbnail_url": thumbURL})
}
