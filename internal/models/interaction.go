package models

import "time"

// Like is unique per (UserID, PhotoID). The row id is internal only.
type Like struct {
	ID      int64 `json:"-"`
	UserID  int64 `json:"user_id"`
	PhotoID int64 `json:"photo_id"`
}

type Comment struct {
	ID        int64     `json:"comment_id"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	PhotoID   int64     `json:"photo_id"`
	CreatedAt time.Time `json:"created_date"`
}

type AddCommentRequest struct {
	Content string `json:"content"`
}
