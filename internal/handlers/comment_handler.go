package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zahin42/blog-backend/internal/models"
	"github.com/zahin42/blog-backend/internal/repositories"
	"gorm.io/gorm"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository // To verify posts exist before attaching comments
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes. The approved
// listing is public; everything else requires a token. The static approved
// route wins over the :comment_id parameter.
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/comments/approved/", h.ListApprovedComments)
	e.GET("/comments/:comment_id/", h.GetComment, auth)
	e.POST("/comment/new/", h.CreateComment, auth)
	e.PATCH("/approve/comment/:comment_id/", h.ApproveComment, auth)
	e.DELETE("/approve/comment/:comment_id/", h.DeleteComment, auth)
	e.GET("/post/:post_id/comments/", h.ListPostComments, auth)
}

// GetComment retrieves a comment by ID
func (h *CommentHandler) GetComment(c echo.Context) error {
	id, ok := parseID(c, "comment_id")
	if !ok {
		return c.JSON(http.StatusNotFound, notFoundResponse(commentNotFoundMessage))
	}

	comment, err := h.commentRepository.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, notFoundResponse(commentNotFoundMessage))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"data": commentDetail(comment)})
}

// CreateComment creates a new comment on an existing post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(commentSaveFailed, err))
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(commentSaveFailed, err))
	}

	// A comment cannot be attached to a missing post
	if _, err := h.postRepository.GetPostByID(req.Post); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(commentSaveFailed, err))
	}

	comment := &models.Comment{
		PostID:      req.Post,
		Author:      req.Author,
		Text:        req.Text,
		CreatedDate: time.Now(),
	}

	if err := h.commentRepository.CreateComment(comment); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(commentSaveFailed, err))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"title":   "Success!",
		"message": "Comment created!",
		"data":    commentDetail(comment),
	})
}

// ListPostComments retrieves all comments for a specific post
func (h *CommentHandler) ListPostComments(c echo.Context) error {
	id, ok := parseID(c, "post_id")
	if !ok {
		return c.JSON(http.StatusNotFound, notFoundResponse(postNotFoundMessage))
	}

	exists, err := h.postRepository.PostExists(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, validationErrorResponse(internalErrorMessage, err))
	}
	if !exists {
		return c.JSON(http.StatusNotFound, notFoundResponse(postNotFoundMessage))
	}

	comments, err := h.commentRepository.GetCommentsByPostID(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, validationErrorResponse(internalErrorMessage, err))
	}

	return c.JSON(http.StatusOK, echo.Map{"data": commentsWithPosts(comments)})
}

// ListApprovedComments retrieves all approved comments with their posts
func (h *CommentHandler) ListApprovedComments(c echo.Context) error {
	comments, err := h.commentRepository.GetApprovedComments()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data := commentsWithPosts(comments)
	return c.JSON(http.StatusOK, echo.Map{"data": data, "count": len(data)})
}

// ApproveComment flips a comment's approval flag
func (h *CommentHandler) ApproveComment(c echo.Context) error {
	id, ok := parseID(c, "comment_id")
	if !ok {
		return c.JSON(http.StatusNotFound, notFoundResponse(commentNotFoundMessage))
	}

	comment, err := h.commentRepository.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, notFoundResponse(commentNotFoundMessage))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment.Approve()
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"title":   "Success",
		"message": "Comment Approved!",
	})
}

// DeleteComment deletes a comment. Any authenticated caller may delete any
// comment; comments carry no ownership.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, ok := parseID(c, "comment_id")
	if !ok {
		return c.JSON(http.StatusNotFound, notFoundResponse(commentNotFoundMessage))
	}

	if _, err := h.commentRepository.GetCommentByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, notFoundResponse(commentNotFoundMessage))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.commentRepository.DeleteComment(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"title":   "Success",
		"message": "Comment Removed!",
	})
}
