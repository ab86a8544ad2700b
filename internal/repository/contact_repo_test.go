package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"studyhive/internal/models"
)

func TestContactListOrdersNewestFirst(t *testing.T) {
	client, fake := newFakeStore(t, respond(http.StatusOK, `[]`))
	repo := NewContactRepository(client)

	if _, err := repo.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if q := fake.Calls()[0].Query; q != "select=*&order=created_at.desc" {
		t.Errorf("query = %q, want created_at descending", q)
	}
}

func TestContactCreateWritesFixedFieldSet(t *testing.T) {
	client, fake := newFakeStore(t, respond(http.StatusCreated, `[{"id":1}]`))
	repo := NewContactRepository(client)

	err := repo.Create(context.Background(), models.ContactSubmission{
		Name:  "Amina",
		Phone: "0700123456",
		Shift: "evening",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	var sent map[string]any
	if err := json.Unmarshal([]byte(fake.Calls()[0].Body), &sent); err != nil {
		t.Fatalf("body: %v", err)
	}
	if len(sent) != 4 {
		t.Errorf("sent %d fields, want exactly name/phone/shift/message", len(sent))
	}
	if sent["message"] != "" {
		t.Errorf("missing message should default to empty string, got %v", sent["message"])
	}
}
