package models

// ContactSubmission is a visitor inquiry from the public contact form.
// Append-only: the API exposes no update or delete for these rows.
type ContactSubmission struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Shift   string `json:"shift"`
	Message string `json:"message"`
}
