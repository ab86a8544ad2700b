package repository

import (
	"context"
	"encoding/json"

	"studyhive/internal/store"
)

// PricingRepository wraps the pricing_plans table. The features column
// is text holding a JSON-encoded list, so rows cross a serialization
// boundary: encode on write, decode-tolerant on read.
type PricingRepository struct {
	res *Resource
}

func NewPricingRepository(client *store.Client) *PricingRepository {
	return &PricingRepository{res: NewResource(client, "pricing_plans", "order_num.asc")}
}

func (r *PricingRepository) List(ctx context.Context) ([]map[string]any, error) {
	rows, err := r.res.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		decodeFeatures(row)
	}
	return rows, nil
}

func (r *PricingRepository) Create(ctx context.Context, row map[string]any) (map[string]any, error) {
	encodeFeatures(row)
	created, err := r.res.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	decodeFeatures(created)
	return created, nil
}

func (r *PricingRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	encodeFeatures(fields)
	return r.res.Update(ctx, id, fields)
}

func (r *PricingRepository) Delete(ctx context.Context, id string) error {
	return r.res.Delete(ctx, id)
}

// encodeFeatures serializes a non-string features value into the JSON
// string the text column expects. A string is assumed already encoded.
func encodeFeatures(row map[string]any) {
	v, ok := row["features"]
	if !ok {
		return
	}
	if _, isStr := v.(string); isStr {
		return
	}
	if buf, err := json.Marshal(v); err == nil {
		row["features"] = string(buf)
	}
}

// decodeFeatures expands a JSON-string features value back into a
// list. Values the store already returns as arrays, and strings that
// are not valid JSON, pass through unchanged.
func decodeFeatures(row map[string]any) {
	s, ok := row["features"].(string)
	if !ok {
		return
	}
	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return
	}
	row["features"] = decoded
}
