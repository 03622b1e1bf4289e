package models

import "time"

// Photo represents a user-uploaded photo. FileName is the object storage
// blob key and stays internal; clients only ever see the public URI.
type Photo struct {
	ID          int64     `json:"photo_id"`
	UserID      int64     `json:"user_id"`
	FileName    string    `json:"-"`
	URI         string    `json:"uri"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_date"`
}
