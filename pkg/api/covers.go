package api

import "time"

// Cover describes a stored cover image.
type Cover struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	URL       string    `json:"url"`
}
