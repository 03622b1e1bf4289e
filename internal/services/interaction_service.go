package services

import (
	"context"
	"fmt"
	"time"

	"photoshare-backend/internal/apperr"
	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"
)

type InteractionService struct {
	store store.Store
}

func NewInteractionService(st store.Store) *InteractionService {
	return &InteractionService{store: st}
}

// Like inserts at most one like per (user, photo). The existence check is a
// fast path; the unique index decides under concurrent likes and surfaces as
// the same conflict error.
func (s *InteractionService) Like(ctx context.Context, photoID, actingUserID int64) error {
	if _, err := s.store.GetPhoto(ctx, photoID); err != nil {
		return err
	}

	liked, err := s.store.HasLike(ctx, actingUserID, photoID)
	if err != nil {
		return err
	}
	if liked {
		return fmt.Errorf("photo already liked: %w", apperr.ErrConflict)
	}

	return s.store.CreateLike(ctx, &models.Like{UserID: actingUserID, PhotoID: photoID})
}

func (s *InteractionService) Unlike(ctx context.Context, photoID, actingUserID int64) error {
	return s.store.DeleteLike(ctx, actingUserID, photoID)
}

func (s *InteractionService) AddComment(ctx context.Context, photoID, actingUserID int64, content string) (*models.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("comment content is required: %w", apperr.ErrInvalidInput)
	}
	if _, err := s.store.GetPhoto(ctx, photoID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:   content,
		UserID:    actingUserID,
		PhotoID:   photoID,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment is author-only; anyone else gets not-found.
func (s *InteractionService) DeleteComment(ctx context.Context, commentID, actingUserID int64) error {
	comment, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != actingUserID {
		return apperr.ErrNotFound
	}
	return s.store.DeleteComment(ctx, commentID)
}
