package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"photoshare-backend/internal/apperr"
	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"
)

type UserService struct {
	store store.Store
	blobs ObjectStorage
}

func NewUserService(st store.Store, blobs ObjectStorage) *UserService {
	return &UserService{store: st, blobs: blobs}
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("username, email and password are required: %w", apperr.ErrInvalidInput)
	}

	// Fast-path checks for a precise error message. The unique indexes on
	// users stay authoritative under concurrent registration; CreateUser maps
	// a violation to the same conflict error.
	if _, err := s.store.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username already taken: %w", apperr.ErrConflict)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if _, err := s.store.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email already in use: %w", apperr.ErrConflict)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: req.Username, Email: req.Email, PasswordHash: hash}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil || !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("wrong login or password: %w", apperr.ErrUnauthorized)
	}

	token, err := GenerateJWT(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// GetUser returns a user's public profile with annotated photos. The email
// stays private to the self view.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*models.UserProfile, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Email = ""
	return profile, nil
}

// GetSelf is the caller's own profile and includes the email.
func (s *UserService) GetSelf(ctx context.Context, userID int64) (*models.UserProfile, error) {
	return s.profile(ctx, userID)
}

func (s *UserService) profile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	photos, err := s.ListUserPhotos(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &models.UserProfile{
		UserID:          user.ID,
		Username:        user.Username,
		Email:           user.Email,
		ProfilePhotoURI: user.ProfilePhotoURI,
		Photos:          photos,
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for _, u := range users {
		photos, err := s.ListUserPhotos(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, models.UserProfile{
			UserID:          u.ID,
			Username:        u.Username,
			ProfilePhotoURI: u.ProfilePhotoURI,
			Photos:          photos,
		})
	}
	return profiles, nil
}

func (s *UserService) ListUserPhotos(ctx context.Context, userID int64) ([]models.PhotoView, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	photos, err := s.store.ListPhotosByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return annotatePhotos(ctx, s.store, photos)
}

// DeleteSelf removes the user, all their photos and every like/comment the
// user left anywhere. Blob removal runs after the row delete and is best
// effort: a leftover blob is logged, never a failure.
func (s *UserService) DeleteSelf(ctx context.Context, userID int64) error {
	photos, err := s.store.ListPhotosByUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteUser(ctx, userID); err != nil {
		return err
	}
	for _, p := range photos {
		if err := s.blobs.Remove(ctx, p.FileName); err != nil {
			log.Printf("blob delete failed for %s after user %d removal: %v", p.FileName, userID, err)
		}
	}
	return nil
}
