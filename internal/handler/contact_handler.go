package handler

import (
	"log"
	"net/http"

	"studyhive/internal/models"
	"studyhive/internal/repository"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	repo *repository.ContactRepository
}

func NewContactHandler(repo *repository.ContactRepository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

// List returns submissions newest first, for the admin inbox.
func (h *ContactHandler) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("[contact] list failed: %v", err)
		c.JSON(http.StatusOK, []any{})
		return
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	c.JSON(http.StatusOK, rows)
}

// Submit stores a visitor inquiry. Only the known form fields are
// kept; anything else in the body is discarded, and a missing message
// stays an empty string.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thanks for reaching out! We will contact you shortly."})
}
