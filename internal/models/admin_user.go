package models

// AdminUser is the operator account for the admin panel. The password
// column holds the raw value and is compared by exact string match;
// nothing server-side tracks a session after login.
type AdminUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
