package store

import (
	"context"
	"errors"
	"fmt"

	"photoshare-backend/internal/apperr"
	"photoshare-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements Store on a pgx connection pool. Multi-step deletes run
// in a single transaction; everything else is one statement.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const uniqueViolation = "23505"

func mapPgErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, apperr.ErrConflict)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	return err
}

// Users

const userColumns = `id, username, email, password_hash, profile_photo_uri, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ProfilePhotoURI, &u.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &u, nil
}

func (s *Postgres) CreateUser(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := s.pool.QueryRow(ctx, query, u.Username, u.Email, u.PasswordHash).Scan(&u.ID, &u.CreatedAt)
	return mapPgErr(err)
}

func (s *Postgres) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Postgres) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (s *Postgres) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (s *Postgres) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *Postgres) SetProfilePhotoURI(ctx context.Context, userID int64, uri string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE users SET profile_photo_uri = $1 WHERE id = $2`, uri, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteUser(ctx context.Context, id int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// The user's outgoing likes and comments sit behind NO ACTION foreign
	// keys and must go before the user row.
	if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE user_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE user_id = $1`, id); err != nil {
		return err
	}
	// Dependents of the user's own photos, from any user. The photo FK would
	// cascade these anyway; deleting them here keeps the whole cascade policy
	// in this one operation.
	if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE photo_id IN (SELECT id FROM photos WHERE user_id = $1)`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE photo_id IN (SELECT id FROM photos WHERE user_id = $1)`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM photos WHERE user_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return tx.Commit(ctx)
}

// Photos

const photoColumns = `id, user_id, file_name, uri, title, description, created_at`

func scanPhoto(row pgx.Row) (*models.Photo, error) {
	var p models.Photo
	err := row.Scan(&p.ID, &p.UserID, &p.FileName, &p.URI, &p.Title, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &p, nil
}

func (s *Postgres) CreatePhoto(ctx context.Context, p *models.Photo) error {
	query := `INSERT INTO photos (user_id, file_name, uri, title, description, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := s.pool.QueryRow(ctx, query, p.UserID, p.FileName, p.URI, p.Title, p.Description, p.CreatedAt).Scan(&p.ID)
	return mapPgErr(err)
}

func (s *Postgres) GetPhoto(ctx context.Context, id int64) (*models.Photo, error) {
	return scanPhoto(s.pool.QueryRow(ctx, `SELECT `+photoColumns+` FROM photos WHERE id = $1`, id))
}

func (s *Postgres) listPhotos(ctx context.Context, query string, args ...any) ([]models.Photo, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, rows.Err()
}

func (s *Postgres) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	return s.listPhotos(ctx, `SELECT `+photoColumns+` FROM photos ORDER BY id`)
}

func (s *Postgres) ListPhotosByUser(ctx context.Context, userID int64) ([]models.Photo, error) {
	return s.listPhotos(ctx, `SELECT `+photoColumns+` FROM photos WHERE user_id = $1 ORDER BY id`, userID)
}

func (s *Postgres) DeletePhoto(ctx context.Context, id int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE photo_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE photo_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return tx.Commit(ctx)
}

// Likes

func (s *Postgres) CreateLike(ctx context.Context, l *models.Like) error {
	query := `INSERT INTO likes (user_id, photo_id) VALUES ($1, $2) RETURNING id`
	err := s.pool.QueryRow(ctx, query, l.UserID, l.PhotoID).Scan(&l.ID)
	return mapPgErr(err)
}

func (s *Postgres) HasLike(ctx context.Context, userID, photoID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND photo_id = $2)`
	if err := s.pool.QueryRow(ctx, query, userID, photoID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Postgres) DeleteLike(ctx context.Context, userID, photoID int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM likes WHERE user_id = $1 AND photo_id = $2`, userID, photoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Postgres) PhotoLikes(ctx context.Context, photoID int64) ([]models.LikeView, error) {
	query := `SELECT u.username FROM likes l JOIN users u ON u.id = l.user_id WHERE l.photo_id = $1 ORDER BY l.id`
	rows, err := s.pool.Query(ctx, query, photoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []models.LikeView
	for rows.Next() {
		var lv models.LikeView
		if err := rows.Scan(&lv.Username); err != nil {
			return nil, err
		}
		likes = append(likes, lv)
	}
	return likes, rows.Err()
}

// Comments

func (s *Postgres) CreateComment(ctx context.Context, c *models.Comment) error {
	query := `INSERT INTO comments (content, user_id, photo_id, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	err := s.pool.QueryRow(ctx, query, c.Content, c.UserID, c.PhotoID, c.CreatedAt).Scan(&c.ID)
	return mapPgErr(err)
}

func (s *Postgres) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	var c models.Comment
	query := `SELECT id, content, user_id, photo_id, created_at FROM comments WHERE id = $1`
	err := s.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Content, &c.UserID, &c.PhotoID, &c.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &c, nil
}

func (s *Postgres) DeleteComment(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Postgres) PhotoComments(ctx context.Context, photoID int64) ([]models.CommentView, error) {
	query := `SELECT c.id, c.content, u.username, u.profile_photo_uri FROM comments c JOIN users u ON u.id = c.user_id WHERE c.photo_id = $1 ORDER BY c.created_at, c.id`
	rows, err := s.pool.Query(ctx, query, photoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.CommentView
	for rows.Next() {
		var cv models.CommentView
		if err := rows.Scan(&cv.CommentID, &cv.Content, &cv.Username, &cv.ProfilePhotoURI); err != nil {
			return nil, err
		}
		comments = append(comments, cv)
	}
	return comments, rows.Err()
}
