package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zahin42/blog-backend/internal/models"
)

func TestCreateApproveFlow(t *testing.T) {
	e, store := setupTestServer()
	user, token := seedUser(t, store, "alice", "secret123")

	post := &models.Post{AuthorID: user.ID, Title: "P", Text: "x", CreatedDate: time.Now()}
	require.NoError(t, store.CreatePost(post))

	rec := doRequest(e, http.MethodPost, "/comment/new/", token, map[string]interface{}{
		"post":   post.ID,
		"author": "A",
		"text":   "hi",
	})
	requireStatus(t, rec, http.StatusCreated)
	body := decodeBody(t, rec)
	assert.Equal(t, "Success!", body["title"])
	assert.Equal(t, "Comment created!", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["is_approved"])
	assert.Equal(t, float64(post.ID), data["post"])
	commentID := uint(data["id"].(float64))

	rec = doRequest(e, http.MethodPatch, fmt.Sprintf("/approve/comment/%d/", commentID), token, nil)
	requireStatus(t, rec, http.StatusOK)
	body = decodeBody(t, rec)
	assert.Equal(t, "Success", body["title"])
	assert.Equal(t, "Comment Approved!", body["message"])

	// The approved listing now includes the comment, public, with the
	// full post nested
	rec = doRequest(e, http.MethodGet, "/comments/approved/", "", nil)
	requireStatus(t, rec, http.StatusOK)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])

	listed := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(commentID), listed["id"])
	assert.Equal(t, true, listed["is_approved"])

	nested := listed["post"].(map[string]interface{})
	assert.Equal(t, float64(post.ID), nested["id"])
	assert.Equal(t, "P", nested["title"])
	assert.Equal(t, float64(user.ID), nested["author"])
	assert.Equal(t, false, nested["is_published"])
}

func TestGetCommentDetail(t *testing.T) {
	e, store := setupTestServer()
	user, token := seedUser(t, store, "alice", "secret123")

	post := &models.Post{AuthorID: user.ID, Title: "P", Text: "x", CreatedDate: time.Now()}
	require.NoError(t, store.CreatePost(post))
	comment := &models.Comment{PostID: post.ID, Author: "A", Text: "hi", CreatedDate: time.Now()}
	require.NoError(t, store.CreateComment(comment))

	rec := doRequest(e, http.MethodGet, fmt.Sprintf("/comments/%d/", comment.ID), token, nil)
	requireStatus(t, rec, http.StatusOK)

	// The single-comment detail nests the post ID, not the post object
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(post.ID), data["post"])
	assert.Equal(t, "A", data["author"])
	assert.Equal(t, "hi", data["text"])
	assert.Equal(t, false, data["is_approved"])
}

func TestGetCommentNotFound(t *testing.T) {
	e, store := setupTestServer()
	_, token := seedUser(t, store, "alice", "secret123")

	rec := doRequest(e, http.MethodGet, "/comments/42/", token, nil)
	requireStatus(t, rec, http.StatusNotFound)
	body := decodeBody(t, rec)
	assert.Equal(t, "Error", body["title"])
	assert.Equal(t, "Comment not found.", body["message"])
}

func TestCreateCommentValidation(t *testing.T) {
	e, store := setupTestServer()
	user, token := seedUser(t, store, "alice", "secret123")

	post := &models.Post{AuthorID: user.ID, Title: "P", Text: "x", CreatedDate: time.Now()}
	require.NoError(t, store.CreatePost(post))

	// Missing text
	rec := doRequest(e, http.MethodPost, "/comment/new/", token, map[string]interface{}{
		"post":   post.ID,
		"author": "A",
	})
	requireStatus(t, rec, http.StatusBadRequest)
	body := decodeBody(t, rec)
	assert.Equal(t, "Error", body["title"])
	assert.Equal(t, "Unable to save comment data", body["message"])

	// Comment on a missing post
	rec = doRequest(e, http.MethodPost, "/comment/new/", token, map[string]interface{}{
		"post":   9999,
		"author": "A",
		"text":   "hi",
	})
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Unable to save comment data", decodeBody(t, rec)["message"])
}

func TestListPostComments(t *testing.T) {
	e, store := setupTestServer()
	user, token := seedUser(t, store, "alice", "secret123")

	post := &models.Post{AuthorID: user.ID, Title: "P", Text: "x", CreatedDate: time.Now()}
	require.NoError(t, store.CreatePost(post))
	require.NoError(t, store.CreateComment(&models.Comment{PostID: post.ID, Author: "A", Text: "one", CreatedDate: time.Now()}))
	require.NoError(t, store.CreateComment(&models.Comment{PostID: post.ID, Author: "B", Text: "two", CreatedDate: time.Now()}))

	rec := doRequest(e, http.MethodGet, fmt.Sprintf("/post/%d/comments/", post.ID), token, nil)
	requireStatus(t, rec, http.StatusOK)

	data := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "one", first["text"])
	nested := first["post"].(map[string]interface{})
	assert.Equal(t, "P", nested["title"])
}

func TestListCommentsForDeletedPost(t *testing.T) {
	e, store := setupTestServer()
	user, token := seedUser(t, store, "alice", "secret123")

	post := &models.Post{AuthorID: user.ID, Title: "P", Text: "x", CreatedDate: time.Now()}
	require.NoError(t, store.CreatePost(post))

	rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/posts/%d/", post.ID), token, nil)
	requireStatus(t, rec, http.StatusOK)

	rec = doRequest(e, http.MethodGet, fmt.Sprintf("/post/%d/comments/", post.ID), token, nil)
	requireStatus(t, rec, http.StatusNotFound)
	body := decodeBody(t, rec)
	assert.Equal(t, "Error", body["title"])
	assert.Equal(t, "Post not found.", body["message"])
}

func TestDeleteComment(t *testing.T) {
	e, store := setupTestServer()
	user, _ := seedUser(t, store, "alice", "secret123")
	_, otherToken := seedUser(t, store, "bob", "secret456")

	post := &models.Post{AuthorID: user.ID, Title: "P", Text: "x", CreatedDate: time.Now()}
	require.NoError(t, store.CreatePost(post))
	comment := &models.Comment{PostID: post.ID, Author: "A", Text: "hi", CreatedDate: time.Now()}
	require.NoError(t, store.CreateComment(comment))

	// Comments carry no ownership: any authenticated caller may delete
	rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/approve/comment/%d/", comment.ID), otherToken, nil)
	requireStatus(t, rec, http.StatusOK)
	body := decodeBody(t, rec)
	assert.Equal(t, "Success", body["title"])
	assert.Equal(t, "Comment Removed!", body["message"])

	_, err := store.GetCommentByID(comment.ID)
	require.Error(t, err)
}

func TestApproveCommentNotFound(t *testing.T) {
	e, store := setupTestServer()
	_, token := seedUser(t, store, "alice", "secret123")

	rec := doRequest(e, http.MethodPatch, "/approve/comment/42/", token, nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "Comment not found.", decodeBody(t, rec)["message"])
}
