// Package mocks provides an in-memory implementation of the repository
// interfaces for handler tests. Misses surface gorm.ErrRecordNotFound so
// handlers translate them exactly as they would for the real store.
package mocks

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zahin42/blog-backend/internal/models"
	"gorm.io/gorm"
)

// Store holds all records behind a single mutex. One Store implements
// every repository interface.
type Store struct {
	mu sync.Mutex

	posts    map[uint]*models.Post
	comments map[uint]*models.Comment
	users    map[uint]*models.User
	tokens   map[string]*models.Token

	nextPostID    uint
	nextCommentID uint
	nextUserID    uint
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		posts:    make(map[uint]*models.Post),
		comments: make(map[uint]*models.Comment),
		users:    make(map[uint]*models.User),
		tokens:   make(map[string]*models.Token),
	}
}

// CreatePost assigns an ID and stores the post
func (s *Store) CreatePost(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPostID++
	post.ID = s.nextPostID
	stored := *post
	s.posts[post.ID] = &stored
	return nil
}

// GetPostByID retrieves a post by ID
func (s *Store) GetPostByID(id uint) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	return &copied, nil
}

// GetAllPosts retrieves every post in ID order
func (s *Store) GetAllPosts() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]models.Post, 0, len(s.posts))
	for id := uint(1); id <= s.nextPostID; id++ {
		if post, ok := s.posts[id]; ok {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

// GetPublishedPosts retrieves posts with a publication timestamp
func (s *Store) GetPublishedPosts() ([]models.Post, error) {
	all, _ := s.GetAllPosts()
	posts := make([]models.Post, 0, len(all))
	for _, post := range all {
		if post.PublishedDate != nil {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// GetUnpublishedPosts retrieves posts without a publication timestamp
func (s *Store) GetUnpublishedPosts() ([]models.Post, error) {
	all, _ := s.GetAllPosts()
	posts := make([]models.Post, 0, len(all))
	for _, post := range all {
		if post.PublishedDate == nil {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// PostExists reports whether a post with the given ID exists
func (s *Store) PostExists(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.posts[id]
	return ok, nil
}

// UpdatePost replaces a stored post
func (s *Store) UpdatePost(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *post
	s.posts[post.ID] = &stored
	return nil
}

// DeletePost removes a post and, like the database constraint, its comments
func (s *Store) DeletePost(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	for commentID, comment := range s.comments {
		if comment.PostID == id {
			delete(s.comments, commentID)
		}
	}
	return nil
}

// CreateComment assigns an ID and stores the comment
func (s *Store) CreateComment(comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCommentID++
	comment.ID = s.nextCommentID
	stored := *comment
	stored.Post = nil
	s.comments[comment.ID] = &stored
	return nil
}

// GetCommentByID retrieves a comment by ID
func (s *Store) GetCommentByID(id uint) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *comment
	return &copied, nil
}

// GetCommentsByPostID retrieves a post's comments with the post attached
func (s *Store) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comments := make([]models.Comment, 0)
	for id := uint(1); id <= s.nextCommentID; id++ {
		comment, ok := s.comments[id]
		if !ok || comment.PostID != postID {
			continue
		}
		copied := *comment
		if post, ok := s.posts[comment.PostID]; ok {
			postCopy := *post
			copied.Post = &postCopy
		}
		comments = append(comments, copied)
	}
	return comments, nil
}

// GetApprovedComments retrieves approved comments with their posts attached
func (s *Store) GetApprovedComments() ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comments := make([]models.Comment, 0)
	for id := uint(1); id <= s.nextCommentID; id++ {
		comment, ok := s.comments[id]
		if !ok || !comment.ApprovedComment {
			continue
		}
		copied := *comment
		if post, ok := s.posts[comment.PostID]; ok {
			postCopy := *post
			copied.Post = &postCopy
		}
		comments = append(comments, copied)
	}
	return comments, nil
}

// UpdateComment replaces a stored comment
func (s *Store) UpdateComment(comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *comment
	stored.Post = nil
	s.comments[comment.ID] = &stored
	return nil
}

// DeleteComment removes a comment
func (s *Store) DeleteComment(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.comments, id)
	return nil
}

// CreateUser assigns an ID and stores the user
func (s *Store) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	user.ID = s.nextUserID
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

// GetUserByUsername retrieves a user by username
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetOrCreateToken returns the user's token, minting one on first use
func (s *Store) GetOrCreateToken(userID uint) (*models.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, token := range s.tokens {
		if token.UserID == userID {
			copied := *token
			return &copied, nil
		}
	}
	token := &models.Token{
		Key:     uuid.NewString(),
		UserID:  userID,
		Created: time.Now(),
	}
	s.tokens[token.Key] = token
	copied := *token
	return &copied, nil
}

// GetTokenByKey retrieves a token by its key
func (s *Store) GetTokenByKey(key string) (*models.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *token
	return &copied, nil
}

// DeleteToken invalidates a token
func (s *Store) DeleteToken(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, key)
	return nil
}
