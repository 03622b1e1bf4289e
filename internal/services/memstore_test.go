package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"photoshare-backend/internal/apperr"
	"photoshare-backend/internal/models"
)

// memStore is an in-memory Store with the same error and cascade semantics
// as the Postgres implementation.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]models.User
	photos   map[int64]models.Photo
	likes    map[int64]models.Like
	comments map[int64]models.Comment
	nextID   int64

	createPhotoErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]models.User),
		photos:   make(map[int64]models.Photo),
		likes:    make(map[int64]models.Like),
		comments: make(map[int64]models.Comment),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return fmt.Errorf("users unique index: %w", apperr.ErrConflict)
		}
	}
	u.ID = m.id()
	m.users[u.ID] = *u
	return nil
}

func (m *memStore) GetUser(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, apperr.ErrNotFound
}

func (m *memStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (m *memStore) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []models.User
	for id := int64(1); id <= m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *memStore) SetProfilePhotoURI(_ context.Context, userID int64, uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return apperr.ErrNotFound
	}
	u.ProfilePhotoURI = &uri
	m.users[userID] = u
	return nil
}

func (m *memStore) DeleteUser(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return apperr.ErrNotFound
	}
	// Outgoing likes and comments first, then the user's photos with their
	// dependents, then the user row. Mirrors the Postgres transaction.
	for lid, l := range m.likes {
		if l.UserID == id {
			delete(m.likes, lid)
		}
	}
	for cid, c := range m.comments {
		if c.UserID == id {
			delete(m.comments, cid)
		}
	}
	for pid, p := range m.photos {
		if p.UserID != id {
			continue
		}
		for lid, l := range m.likes {
			if l.PhotoID == pid {
				delete(m.likes, lid)
			}
		}
		for cid, c := range m.comments {
			if c.PhotoID == pid {
				delete(m.comments, cid)
			}
		}
		delete(m.photos, pid)
	}
	delete(m.users, id)
	return nil
}

func (m *memStore) CreatePhoto(_ context.Context, p *models.Photo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createPhotoErr != nil {
		return m.createPhotoErr
	}
	p.ID = m.id()
	m.photos[p.ID] = *p
	return nil
}

func (m *memStore) GetPhoto(_ context.Context, id int64) (*models.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.photos[id]; ok {
		return &p, nil
	}
	return nil, apperr.ErrNotFound
}

func (m *memStore) ListPhotos(_ context.Context) ([]models.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var photos []models.Photo
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.photos[id]; ok {
			photos = append(photos, p)
		}
	}
	return photos, nil
}

func (m *memStore) ListPhotosByUser(_ context.Context, userID int64) ([]models.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var photos []models.Photo
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.photos[id]; ok && p.UserID == userID {
			photos = append(photos, p)
		}
	}
	return photos, nil
}

func (m *memStore) DeletePhoto(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.photos[id]; !ok {
		return apperr.ErrNotFound
	}
	for lid, l := range m.likes {
		if l.PhotoID == id {
			delete(m.likes, lid)
		}
	}
	for cid, c := range m.comments {
		if c.PhotoID == id {
			delete(m.comments, cid)
		}
	}
	delete(m.photos, id)
	return nil
}

func (m *memStore) CreateLike(_ context.Context, l *models.Like) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.likes {
		if existing.UserID == l.UserID && existing.PhotoID == l.PhotoID {
			return fmt.Errorf("likes unique index: %w", apperr.ErrConflict)
		}
	}
	l.ID = m.id()
	m.likes[l.ID] = *l
	return nil
}

func (m *memStore) HasLike(_ context.Context, userID, photoID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.likes {
		if l.UserID == userID && l.PhotoID == photoID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) DeleteLike(_ context.Context, userID, photoID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, l := range m.likes {
		if l.UserID == userID && l.PhotoID == photoID {
			delete(m.likes, id)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (m *memStore) PhotoLikes(_ context.Context, photoID int64) ([]models.LikeView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var likes []models.LikeView
	for id := int64(1); id <= m.nextID; id++ {
		l, ok := m.likes[id]
		if !ok || l.PhotoID != photoID {
			continue
		}
		likes = append(likes, models.LikeView{Username: m.users[l.UserID].Username})
	}
	return likes, nil
}

func (m *memStore) CreateComment(_ context.Context, c *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.id()
	m.comments[c.ID] = *c
	return nil
}

func (m *memStore) GetComment(_ context.Context, id int64) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.comments[id]; ok {
		return &c, nil
	}
	return nil, apperr.ErrNotFound
}

func (m *memStore) DeleteComment(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.comments[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *memStore) PhotoComments(_ context.Context, photoID int64) ([]models.CommentView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var comments []models.CommentView
	for id := int64(1); id <= m.nextID; id++ {
		c, ok := m.comments[id]
		if !ok || c.PhotoID != photoID {
			continue
		}
		author := m.users[c.UserID]
		comments = append(comments, models.CommentView{
			CommentID:       c.ID,
			Content:         c.Content,
			Username:        author.Username,
			ProfilePhotoURI: author.ProfilePhotoURI,
		})
	}
	return comments, nil
}

// fakeBlobs records puts and removes; failures are injectable.
type fakeBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	removed []string
	putErr  error
	rmErr   error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (f *fakeBlobs) Put(_ context.Context, key string, reader io.Reader, _ int64, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return "", f.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.objects[key] = data
	return "http://blobs.test/photos/" + key, nil
}

func (f *fakeBlobs) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rmErr != nil {
		return f.rmErr
	}
	// Removing an absent key is fine, as with a real object store.
	delete(f.objects, key)
	f.removed = append(f.removed, key)
	return nil
}
