package models

import "time"

type User struct {
	ID              int64     `json:"user_id"`
	Username        string    `json:"username"`
	Email           string    `json:"email,omitempty"`
	PasswordHash    string    `json:"-"`
	ProfilePhotoURI *string   `json:"profile_photo_uri"`
	CreatedAt       time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
