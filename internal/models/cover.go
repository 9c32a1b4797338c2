package models

import "time"

// Cover is a stored cover image. URL is the public object-storage URL,
// ObjectKey the key inside the bucket (needed for removal).
type Cover struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ObjectKey string    `json:"object_key"`
}
