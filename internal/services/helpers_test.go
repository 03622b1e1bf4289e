package services

import (
	"bytes"
	"context"
	"testing"

	"photoshare-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func newTestEnv(t *testing.T) (*memStore, *fakeBlobs, *UserService, *PhotoService, *InteractionService) {
	t.Helper()
	st := newMemStore()
	blobs := newFakeBlobs()
	return st, blobs, NewUserService(st, blobs), NewPhotoService(st, blobs), NewInteractionService(st)
}

func registerUser(t *testing.T, users *UserService, name string) *models.User {
	t.Helper()
	u, err := users.Register(context.Background(), models.RegisterRequest{
		Username: name,
		Email:    name + "@example.com",
		Password: "pw-" + name,
	})
	require.NoError(t, err)
	return u
}

func loginReq(name string) models.LoginRequest {
	return models.LoginRequest{Username: name, Password: "pw-" + name}
}

func uploadPhoto(t *testing.T, photos *PhotoService, ownerID int64, title string) *models.Photo {
	t.Helper()
	p, err := photos.Upload(context.Background(), ownerID, title, "",
		title+".jpg", bytes.NewReader([]byte("jpegdata")), 8, "image/jpeg")
	require.NoError(t, err)
	return p
}
