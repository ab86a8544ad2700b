package handler

import (
	"log"
	"net/http"

	"studyhive/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repo *repository.SettingRepository
}

func NewSettingsHandler(repo *repository.SettingRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// Get returns all settings flattened to one {key: value} object.
// Fails soft to an empty object so the public page always renders.
func (h *SettingsHandler) Get(c *gin.Context) {
	values, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("[settings] fetch failed: %v", err)
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, values)
}

// Save upserts every key of the posted object.
func (h *SettingsHandler) Save(c *gin.Context) {
	var values map[string]any
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.repo.SetAll(c.Request.Context(), values); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
