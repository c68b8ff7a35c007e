package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/zahin42/blog-backend/internal/models"
)

// Response shaping for posts and comments. Each listing has its own shape:
// the raw post list carries the author but no publication state, summaries
// carry publication state but no author, and comment listings nest the full
// post where the single-comment detail nests only its ID.

func postListItem(p *models.Post) echo.Map {
	return echo.Map{
		"id":     p.ID,
		"title":  p.Title,
		"text":   p.Text,
		"author": p.AuthorID,
	}
}

func postListItems(posts []models.Post) []echo.Map {
	items := make([]echo.Map, 0, len(posts))
	for i := range posts {
		items = append(items, postListItem(&posts[i]))
	}
	return items
}

func postSummary(p *models.Post) echo.Map {
	return echo.Map{
		"id":           p.ID,
		"title":        p.Title,
		"text":         p.Text,
		"is_published": p.IsPublished(),
	}
}

func postSummaries(posts []models.Post) []echo.Map {
	items := make([]echo.Map, 0, len(posts))
	for i := range posts {
		items = append(items, postSummary(&posts[i]))
	}
	return items
}

func postDetail(p *models.Post) echo.Map {
	return echo.Map{
		"id":           p.ID,
		"title":        p.Title,
		"text":         p.Text,
		"author":       p.AuthorID,
		"is_published": p.IsPublished(),
	}
}

func commentDetail(c *models.Comment) echo.Map {
	return echo.Map{
		"id":          c.ID,
		"post":        c.PostID,
		"author":      c.Author,
		"text":        c.Text,
		"is_approved": c.IsApproved(),
	}
}

// commentWithPost embeds the full post detail. Requires the comment's Post
// to be preloaded.
func commentWithPost(c *models.Comment) echo.Map {
	return echo.Map{
		"id":          c.ID,
		"post":        postDetail(c.Post),
		"author":      c.Author,
		"text":        c.Text,
		"is_approved": c.IsApproved(),
	}
}

func commentsWithPosts(comments []models.Comment) []echo.Map {
	items := make([]echo.Map, 0, len(comments))
	for i := range comments {
		items = append(items, commentWithPost(&comments[i]))
	}
	return items
}
