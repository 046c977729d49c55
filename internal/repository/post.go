package repository

import (
	"context"
	"errors"
	"strings"

	"quill/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	ListAll(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, id uint, fields models.PostFields) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// ListAll returns every post ordered by the stored date string. The column
// holds formatted dates ("April 03, 2025"), so the order is string collation,
// not chronological.
func (r *postRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.db.WithContext(ctx).Order("date ASC").Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("post", id)
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if isDuplicateTitle(err) {
		return models.NewConflictError("a post with this title already exists")
	}
	return err
}

// Update overwrites the five mutable columns of the identified post. Date and
// ID are never written. A missing id performs no write and reports not-found.
func (r *postRepository) Update(ctx context.Context, id uint, fields models.PostFields) error {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     fields.Title,
			"subtitle":  fields.Subtitle,
			"author":    fields.Author,
			"image_url": fields.ImageURL,
			"body":      fields.Body,
		})
	if isDuplicateTitle(res.Error) {
		return models.NewConflictError("a post with this title already exists")
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("post", id)
	}
	return nil
}

// Delete permanently removes the row. There is no soft delete.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("post", id)
	}
	return nil
}

// isDuplicateTitle recognizes a unique-constraint violation on the title
// column. TranslateError covers both drivers; the message check is a fallback
// for sqlite builds where translation is unavailable.
func isDuplicateTitle(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
