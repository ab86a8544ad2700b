package handler

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"time"

	"studyhive/internal/repository"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	repo *repository.AdminRepository
}

func NewAdminHandler(repo *repository.AdminRepository) *AdminHandler {
	return &AdminHandler{repo: repo}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Login checks the operator credentials by exact string compare and
// hands back an opaque token. The token is only a client-side
// signed-in flag; no later request verifies it.
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	admin, err := h.repo.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		log.Printf("[admin] login lookup failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid username or password"})
		return
	}
	if admin == nil || admin.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid username or password"})
		return
	}
	token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%d", admin.Username, time.Now().UnixMilli())))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin":   gin.H{"id": admin.ID, "username": admin.Username},
	})
}

// ChangePassword re-validates the current password, then writes the
// new one straight to the password column.
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	admin, err := h.repo.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		log.Printf("[admin] change-password lookup failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "current password is incorrect"})
		return
	}
	if admin == nil || admin.Password != req.CurrentPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "current password is incorrect"})
		return
	}
	if err := h.repo.UpdatePassword(c.Request.Context(), req.Username, req.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password updated"})
}
