package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zahin42/blog-backend/internal/repositories"
)

// TokenAuth checks for a valid API token and loads the calling user into
// the request context under "user". Both the Bearer and Token schemes are
// accepted.
func TokenAuth(tokens repositories.TokenRepository, users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}
			scheme := strings.ToLower(parts[0])
			if scheme != "bearer" && scheme != "token" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}

			token, err := tokens.GetTokenByKey(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			user, err := users.GetUserByID(token.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set("user", user)

			return next(c)
		}
	}
}
