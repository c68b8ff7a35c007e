package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zahin42/blog-backend/internal/models"
	"github.com/zahin42/blog-backend/internal/repositories"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository // To verify post authors exist
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterPostRoutes registers post-related routes. The published listing is
// public; everything else requires a token.
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/post/list/", h.ListPosts, auth)
	e.GET("/post/published/", h.ListPublishedPosts)
	e.GET("/post/unpublished/", h.ListUnpublishedPosts, auth)
	e.PATCH("/post/publish/:post_id/", h.PublishPost, auth)
	e.POST("/posts/", h.CreatePost, auth)
	e.GET("/posts/:id/", h.GetPost, auth)
	e.PUT("/posts/:id/", h.UpdatePost, auth)
	e.DELETE("/posts/:id/", h.DeletePost, auth)
}

// parseID parses a numeric path parameter. Non-numeric values are treated
// the same as absent records.
func parseID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ListPosts returns every post, published or not, in the raw record shape
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, postListItems(posts))
}

// ListPublishedPosts returns posts with a publication timestamp
func (h *PostHandler) ListPublishedPosts(c echo.Context) error {
	posts, err := h.postRepository.GetPublishedPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	data := postSummaries(posts)
	return c.JSON(http.StatusOK, echo.Map{"data": data, "count": len(data)})
}

// ListUnpublishedPosts returns posts that have not been published yet
func (h *PostHandler) ListUnpublishedPosts(c echo.Context) error {
	posts, err := h.postRepository.GetUnpublishedPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	data := postSummaries(posts)
	return c.JSON(http.StatusOK, echo.Map{"data": data, "count": len(data)})
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, notFoundResponse(postNotFoundMessage))
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, notFoundResponse(postNotFoundMessage))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"data": postDetail(post)})
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(postSaveFailedMessage, err))
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(postSaveFailedMessage, err))
	}

	// The author must reference an existing user
	if _, err := h.userRepository.GetUserByID(req.Author); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(postSaveFailedMessage, err))
	}

	post := &models.Post{
		AuthorID:    req.Author,
		Title:       req.Title,
		Text:        req.Text,
		CreatedDate: time.Now(),
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(postSaveFailedMessage, err))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"title":   "Success!",
		"message": "Post created!",
		"data":    postDetail(post),
	})
}

// UpdatePost replaces an existing post's author, title and text
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, notFoundResponse("Post not found!"))
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, notFoundResponse("Post not found!"))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(postSaveFailedMessage, err))
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(postSaveFailedMessage, err))
	}

	if _, err := h.userRepository.GetUserByID(req.Author); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(postSaveFailedMessage, err))
	}

	post.AuthorID = req.Author
	post.Title = req.Title
	post.Text = req.Text

	if err := h.postRepository.UpdatePost(post); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(postSaveFailedMessage, err))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"title":   "Success!",
		"message": "Post edited!",
		"data":    postDetail(post),
	})
}

// DeletePost deletes a post. Only the post's author may delete it; the
// post's comments go with it.
func (h *PostHandler) DeletePost(c echo.Context) error {
	user := c.Get("user").(*models.User)

	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, notFoundResponse(postNotFoundMessage))
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, notFoundResponse(postNotFoundMessage))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.AuthorID != user.ID {
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Title:   "Error",
			Message: notPostAuthorMessage,
		})
	}

	if err := h.postRepository.DeletePost(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"title":   "Success",
		"message": "Post deleted!",
	})
}

// PublishPost stamps a post with the current time. Publishing an already
// published post refreshes the timestamp.
func (h *PostHandler) PublishPost(c echo.Context) error {
	id, ok := parseID(c, "post_id")
	if !ok {
		return c.JSON(http.StatusNotFound, notFoundResponse(postNotFoundMessage))
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, notFoundResponse(postNotFoundMessage))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post.Publish(time.Now())
	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"title":   "Success",
		"message": "Post published!",
	})
}
