package store

import (
	"context"

	"photoshare-backend/internal/models"
)

// Store is the persistence surface the services run against. Lookups return
// apperr.ErrNotFound when no row matches; inserts hitting a unique index
// return apperr.ErrConflict. The Postgres implementation enforces every
// uniqueness and cascade rule with constraints so the services' pre-checks
// are only a fast path.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetProfilePhotoURI(ctx context.Context, userID int64, uri string) error
	// DeleteUser removes the user's outgoing likes and comments, the user's
	// photos with their dependents, and the user row, in one transaction.
	DeleteUser(ctx context.Context, id int64) error

	// Photos
	CreatePhoto(ctx context.Context, p *models.Photo) error
	GetPhoto(ctx context.Context, id int64) (*models.Photo, error)
	ListPhotos(ctx context.Context) ([]models.Photo, error)
	ListPhotosByUser(ctx context.Context, userID int64) ([]models.Photo, error)
	// DeletePhoto removes the photo row and all its likes and comments in one
	// transaction.
	DeletePhoto(ctx context.Context, id int64) error

	// Likes
	CreateLike(ctx context.Context, l *models.Like) error
	HasLike(ctx context.Context, userID, photoID int64) (bool, error)
	DeleteLike(ctx context.Context, userID, photoID int64) error
	PhotoLikes(ctx context.Context, photoID int64) ([]models.LikeView, error)

	// Comments
	CreateComment(ctx context.Context, c *models.Comment) error
	GetComment(ctx context.Context, id int64) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	PhotoComments(ctx context.Context, photoID int64) ([]models.CommentView, error)
}
