package repositories

import (
	"github.com/zahin42/blog-backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetAllPosts() ([]models.Post, error)
	GetPublishedPosts() ([]models.Post, error)
	GetUnpublishedPosts() ([]models.Post, error)
	PostExists(id uint) (bool, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID from PostgreSQL
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetAllPosts retrieves every post, published or not
func (r *PostgresPostRepository) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPublishedPosts retrieves posts with a publication timestamp
func (r *PostgresPostRepository) GetPublishedPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("published_date IS NOT NULL").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetUnpublishedPosts retrieves posts without a publication timestamp
func (r *PostgresPostRepository) GetUnpublishedPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("published_date IS NULL").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// PostExists reports whether a post with the given ID exists
func (r *PostgresPostRepository) PostExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdatePost updates an existing post in PostgreSQL
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post by ID from PostgreSQL. Comments on the post are
// removed by the ON DELETE CASCADE constraint.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}
