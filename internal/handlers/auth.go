package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zahin42/blog-backend/internal/models"
	"github.com/zahin42/blog-backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles token issuance
type AuthHandler struct {
	userRepository  repositories.UserRepository
	tokenRepository repositories.TokenRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository) *AuthHandler {
	return &AuthHandler{
		userRepository:  userRepo,
		tokenRepository: tokenRepo,
	}
}

// RegisterAuthRoutes registers the token endpoint
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/api-token-auth/", h.ObtainAuthToken)
}

// ObtainAuthToken exchanges a username and password for the user's API
// token. Repeated logins return the same token until it is invalidated.
func (h *AuthHandler) ObtainAuthToken(c echo.Context) error {
	var req models.AuthTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(invalidLoginMessage, err))
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse(invalidLoginMessage, err))
	}

	user, err := h.userRepository.GetUserByUsername(req.Username)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Title:   "Error",
			Message: invalidLoginMessage,
			Error:   "unable to log in with provided credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Title:   "Error",
			Message: invalidLoginMessage,
			Error:   "unable to log in with provided credentials",
		})
	}

	token, err := h.tokenRepository.GetOrCreateToken(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token":   token.Key,
		"user_id": user.ID,
		"email":   user.Email,
	})
}
