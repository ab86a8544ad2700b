package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"studyhive/internal/models"
	"studyhive/internal/store"
)

type SettingRepository struct {
	client *store.Client
}

func NewSettingRepository(client *store.Client) *SettingRepository {
	return &SettingRepository{client: client}
}

// GetAll folds the key/value rows into a single flat object.
func (r *SettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, "site_settings?select=*", nil)
	if err != nil {
		return nil, err
	}
	var rows []models.SiteSetting
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// Set updates the row for key, inserting one when the update matched
// nothing. The probe-then-insert is not atomic: two concurrent first
// writes of a new key can both insert. Settings are low-frequency
// operator edits, so the race is tolerated.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	path := "site_settings?key=eq." + url.QueryEscape(key)
	rows, err := r.client.Rows(ctx, http.MethodPatch, path, map[string]any{"value": value})
	if err == nil && len(rows) > 0 {
		return nil
	}
	if err != nil {
		var upstream *store.UpstreamError
		if !errors.As(err, &upstream) {
			return err
		}
	}
	_, err = r.client.Rows(ctx, http.MethodPost, "site_settings", map[string]any{"key": key, "value": value})
	return err
}

// SetAll upserts every key of an arbitrary flat object, coercing
// values to the text column's representation.
func (r *SettingRepository) SetAll(ctx context.Context, values map[string]any) error {
	for key, v := range values {
		if err := r.Set(ctx, key, coerceString(v)); err != nil {
			return err
		}
	}
	return nil
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		buf, _ := json.Marshal(t)
		return string(buf)
	}
}
