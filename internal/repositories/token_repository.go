package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/zahin42/blog-backend/internal/models"
	"gorm.io/gorm"
)

// TokenRepository defines the interface for API token operations
type TokenRepository interface {
	GetOrCreateToken(userID uint) (*models.Token, error)
	GetTokenByKey(key string) (*models.Token, error)
	DeleteToken(key string) error
}

// PostgresTokenRepository implements TokenRepository for PostgreSQL
type PostgresTokenRepository struct {
	db *gorm.DB
}

// NewPostgresTokenRepository creates a new PostgresTokenRepository
func NewPostgresTokenRepository(db *gorm.DB) *PostgresTokenRepository {
	return &PostgresTokenRepository{db: db}
}

// GetOrCreateToken returns the user's existing token, creating one on first
// login. The key stays stable across logins until the token is deleted.
func (r *PostgresTokenRepository) GetOrCreateToken(userID uint) (*models.Token, error) {
	var token models.Token
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	token = models.Token{
		Key:     uuid.NewString(),
		UserID:  userID,
		Created: time.Now(),
	}
	if err := r.db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// GetTokenByKey retrieves a token by its key
func (r *PostgresTokenRepository) GetTokenByKey(key string) (*models.Token, error) {
	var token models.Token
	if err := r.db.Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteToken invalidates a token by removing it
func (r *PostgresTokenRepository) DeleteToken(key string) error {
	return r.db.Delete(&models.Token{}, "key = ?", key).Error
}
