package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"photoshare-backend/internal/apperr"
	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"

	"github.com/google/uuid"
)

// ObjectStorage is the blob store consumed by uploads and deletes. Remove
// must treat an already-missing key as success.
type ObjectStorage interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

type PhotoService struct {
	store store.Store
	blobs ObjectStorage
}

func NewPhotoService(st store.Store, blobs ObjectStorage) *PhotoService {
	return &PhotoService{store: st, blobs: blobs}
}

// Upload writes the blob first, then the record. A failed blob write never
// produces a record; a failed record insert triggers blob cleanup so no
// orphan is left behind.
func (s *PhotoService) Upload(ctx context.Context, ownerID int64, title, description, fileName string, file io.Reader, size int64, contentType string) (*models.Photo, error) {
	if file == nil || size == 0 {
		return nil, fmt.Errorf("no file uploaded: %w", apperr.ErrInvalidInput)
	}

	// Opaque blob key preserving the original extension
	key := uuid.New().String() + filepath.Ext(fileName)

	uri, err := s.blobs.Put(ctx, key, file, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("blob upload for %s failed: %v: %w", key, err, apperr.ErrUnavailable)
	}

	photo := &models.Photo{
		UserID:      ownerID,
		FileName:    key,
		URI:         uri,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.store.CreatePhoto(ctx, photo); err != nil {
		if rmErr := s.blobs.Remove(ctx, key); rmErr != nil {
			log.Printf("orphaned blob %s left after failed photo insert: %v", key, rmErr)
		}
		return nil, err
	}
	return photo, nil
}

// Delete removes an owned photo. Non-owners get not-found so the photo's
// existence is not leaked. Blob removal failure is logged but does not block
// the record delete, which cascades to the photo's likes and comments.
func (s *PhotoService) Delete(ctx context.Context, photoID, actingUserID int64) error {
	photo, err := s.store.GetPhoto(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.UserID != actingUserID {
		return apperr.ErrNotFound
	}

	if err := s.blobs.Remove(ctx, photo.FileName); err != nil {
		log.Printf("blob delete failed for %s, record removed anyway: %v", photo.FileName, err)
	}
	return s.store.DeletePhoto(ctx, photoID)
}

func (s *PhotoService) SetProfilePhoto(ctx context.Context, actingUserID, photoID int64) error {
	photo, err := s.store.GetPhoto(ctx, photoID)
	if err != nil || photo.UserID != actingUserID {
		return fmt.Errorf("photo not found or does not belong to user: %w", apperr.ErrInvalidInput)
	}
	return s.store.SetProfilePhotoURI(ctx, actingUserID, photo.URI)
}

func (s *PhotoService) ListPhotos(ctx context.Context) ([]models.PhotoView, error) {
	photos, err := s.store.ListPhotos(ctx)
	if err != nil {
		return nil, err
	}
	return annotatePhotos(ctx, s.store, photos)
}

func (s *PhotoService) GetPhoto(ctx context.Context, photoID int64) (*models.PhotoView, error) {
	photo, err := s.store.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	view, err := annotatePhoto(ctx, s.store, *photo)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
