package services

import (
	"context"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"
)

// annotatePhoto shapes a photo with its liking usernames and comments, one
// level deep. Comment authors appear as username plus avatar URI only.
func annotatePhoto(ctx context.Context, st store.Store, photo models.Photo) (models.PhotoView, error) {
	likes, err := st.PhotoLikes(ctx, photo.ID)
	if err != nil {
		return models.PhotoView{}, err
	}
	comments, err := st.PhotoComments(ctx, photo.ID)
	if err != nil {
		return models.PhotoView{}, err
	}
	return models.PhotoView{Photo: photo, Likes: likes, Comments: comments}, nil
}

func annotatePhotos(ctx context.Context, st store.Store, photos []models.Photo) ([]models.PhotoView, error) {
	views := make([]models.PhotoView, 0, len(photos))
	for _, p := range photos {
		v, err := annotatePhoto(ctx, st, p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
