package repository

import (
	"context"
	"net/http"
	"net/url"

	"studyhive/internal/store"
)

// Resource implements the shared CRUD contract every content table
// follows. One instance per table keeps the upstream query shape in a
// single place instead of restating it per resource.
type Resource struct {
	client  *store.Client
	table   string
	orderBy string // e.g. "order_num.asc"; empty for unordered tables
}

func NewResource(client *store.Client, table, orderBy string) *Resource {
	return &Resource{client: client, table: table, orderBy: orderBy}
}

func (r *Resource) listPath() string {
	path := r.table + "?select=*"
	if r.orderBy != "" {
		path += "&order=" + r.orderBy
	}
	return path
}

func (r *Resource) List(ctx context.Context) ([]map[string]any, error) {
	return r.client.Rows(ctx, http.MethodGet, r.listPath(), nil)
}

// Create forwards the row verbatim and returns the stored row, id included.
func (r *Resource) Create(ctx context.Context, row map[string]any) (map[string]any, error) {
	rows, err := r.client.Rows(ctx, http.MethodPost, r.table, row)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return map[string]any{}, nil
	}
	return rows[0], nil
}

// Update patches the row with the given id. A PATCH that matches no
// rows is still a success; there is no existence check.
func (r *Resource) Update(ctx context.Context, id string, fields map[string]any) error {
	_, err := r.client.Rows(ctx, http.MethodPatch, r.table+"?id=eq."+url.QueryEscape(id), fields)
	return err
}

func (r *Resource) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, http.MethodDelete, r.table+"?id=eq."+url.QueryEscape(id), nil)
	return err
}
