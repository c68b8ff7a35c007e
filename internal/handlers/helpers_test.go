package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/zahin42/blog-backend/internal/handlers"
	"github.com/zahin42/blog-backend/internal/middleware"
	"github.com/zahin42/blog-backend/internal/mocks"
	"github.com/zahin42/blog-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// setupTestServer wires the real routes against the in-memory store
func setupTestServer() (*echo.Echo, *mocks.Store) {
	store := mocks.NewStore()
	e := echo.New()

	auth := middleware.TokenAuth(store, store)

	handlers.NewAuthHandler(store, store).RegisterAuthRoutes(e)
	handlers.NewPostHandler(store, store).RegisterPostRoutes(e, auth)
	handlers.NewCommentHandler(store, store).RegisterCommentRoutes(e, auth)

	return e, store
}

// seedUser creates a user with a bcrypt-hashed password and an API token,
// returning the user and the token key.
func seedUser(t *testing.T, store *mocks.Store, username, password string) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	require.NoError(t, store.CreateUser(user))

	token, err := store.GetOrCreateToken(user.ID)
	require.NoError(t, err)

	return user, token.Key
}

// doRequest performs a request against the test server. An empty token
// leaves the request unauthenticated.
func doRequest(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
