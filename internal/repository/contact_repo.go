package repository

import (
	"context"

	"studyhive/internal/models"
	"studyhive/internal/store"
)

// ContactRepository handles visitor inquiries. Newest first on read;
// writes keep only the known form fields.
type ContactRepository struct {
	res *Resource
}

func NewContactRepository(client *store.Client) *ContactRepository {
	return &ContactRepository{res: NewResource(client, "contact_submissions", "created_at.desc")}
}

func (r *ContactRepository) List(ctx context.Context) ([]map[string]any, error) {
	return r.res.List(ctx)
}

func (r *ContactRepository) Create(ctx context.Context, sub models.ContactSubmission) error {
	_, err := r.res.Create(ctx, map[string]any{
		"name":    sub.Name,
		"phone":   sub.Phone,
		"shift":   sub.Shift,
		"message": sub.Message,
	})
	return err
}
