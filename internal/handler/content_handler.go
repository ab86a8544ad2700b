package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentRepo is the CRUD surface shared by every content table
// (slides, gallery, social links, pricing).
type ContentRepo interface {
	List(ctx context.Context) ([]map[string]any, error)
	Create(ctx context.Context, row map[string]any) (map[string]any, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// ContentHandler serves the uniform CRUD contract for one resource.
type ContentHandler struct {
	repo ContentRepo
	name string
}

func NewContentHandler(name string, repo ContentRepo) *ContentHandler {
	return &ContentHandler{repo: repo, name: name}
}

// List fails soft: a broken upstream must not break public page
// rendering, so any error collapses to an empty array with status 200.
func (h *ContentHandler) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("[%s] list failed: %v", h.name, err)
		c.JSON(http.StatusOK, []any{})
		return
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	c.JSON(http.StatusOK, rows)
}

// Create forwards the request body verbatim as the new row and returns
// the stored row. Field validation is left to the store's schema.
func (h *ContentHandler) Create(c *gin.Context) {
	var row map[string]any
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	created, err := h.repo.Create(c.Request.Context(), row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *ContentHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.repo.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
