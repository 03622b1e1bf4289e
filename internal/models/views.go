package models

// Read views assembled for clients. Nested author details are limited to
// username plus avatar URI so a view never expands User -> Photo -> Like ->
// User cycles.

type LikeView struct {
	Username string `json:"username"`
}

type CommentView struct {
	CommentID       int64   `json:"comment_id"`
	Content         string  `json:"content"`
	Username        string  `json:"username"`
	ProfilePhotoURI *string `json:"profile_photo_uri"`
}

type PhotoView struct {
	Photo
	Likes    []LikeView    `json:"likes"`
	Comments []CommentView `json:"comments"`
}

// UserProfile carries Email only for the "me" view.
type UserProfile struct {
	UserID          int64       `json:"user_id"`
	Username        string      `json:"username"`
	Email           string      `json:"email,omitempty"`
	ProfilePhotoURI *string     `json:"profile_photo_uri"`
	Photos          []PhotoView `json:"photos"`
}
