package models

// SiteSetting is one key/value row of the site configuration table.
// The API flattens all rows into a single {key: value} object.
type SiteSetting struct {
	ID    uint   `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}
