package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPublished(t *testing.T) {
	unpublished := Post{Title: "Draft", Text: "body"}
	assert.False(t, unpublished.IsPublished())

	now := time.Now()
	published := Post{Title: "Live", Text: "body", PublishedDate: &now}
	assert.True(t, published.IsPublished())
}

func TestPublish(t *testing.T) {
	post := Post{Title: "Draft", Text: "body"}
	now := time.Now()

	post.Publish(now)

	assert.True(t, post.IsPublished())
	assert.Equal(t, now, *post.PublishedDate)
}

func TestPublishRefreshesTimestamp(t *testing.T) {
	post := Post{Title: "Live", Text: "body"}
	first := time.Now()
	post.Publish(first)

	second := first.Add(time.Hour)
	post.Publish(second)

	assert.Equal(t, second, *post.PublishedDate)
}

func TestPostString(t *testing.T) {
	post := Post{Title: "A title", Text: "body"}
	assert.Equal(t, "A title", post.String())
}
