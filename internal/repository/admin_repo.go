package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"studyhive/internal/models"
	"studyhive/internal/store"
)

type AdminRepository struct {
	client *store.Client
}

func NewAdminRepository(client *store.Client) *AdminRepository {
	return &AdminRepository{client: client}
}

// GetByUsername returns the admin row for an exact username match, or
// nil when no such user exists.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, "admin_users?select=*&username=eq."+url.QueryEscape(username), nil)
	if err != nil {
		return nil, err
	}
	var rows []models.AdminUser
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, username, newPassword string) error {
	_, err := r.client.Rows(ctx, http.MethodPatch, "admin_users?username=eq."+url.QueryEscape(username),
		map[string]any{"password": newPassword})
	return err
}
