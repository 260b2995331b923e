package views

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/apopescu/daily-journal/internal/models"
)

func TestNavDerivesFromAuthenticatedFlag(t *testing.T) {
	anon := Nav(false)
	authed := Nav(true)

	labels := func(items []NavItem) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.Label
		}
		return out
	}

	assert.Equal(t, []string{"HOME", "ABOUT", "LOG IN", "REGISTER"}, labels(anon))
	assert.Equal(t, []string{"HOME", "ABOUT", "COMPOSE", "LOG OUT"}, labels(authed))

	// Pure function: repeated calls never accumulate items.
	assert.Equal(t, anon, Nav(false))
	assert.Equal(t, authed, Nav(true))
}

func TestRenderAllTemplates(t *testing.T) {
	r := New()
	post := &models.Post{
		ID:      primitive.NewObjectID(),
		UserID:  "owner",
		Date:    "August 29, 2026",
		Title:   "Title",
		Content: "Body",
	}

	for _, name := range []string{"welcome.html", "register.html", "login.html", "about.html", "compose.html", "error.html"} {
		rec := httptest.NewRecorder()
		r.Render(rec, name, Data{Nav: Nav(false)})
		require.Equal(t, 200, rec.Code, name)
		assert.Contains(t, rec.Body.String(), "</html>", name)
	}

	rec := httptest.NewRecorder()
	r.Render(rec, "userHome.html", Data{Nav: Nav(true), Posts: []models.Post{*post}})
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Title")
	assert.Contains(t, rec.Body.String(), post.ID.Hex())

	rec = httptest.NewRecorder()
	r.Render(rec, "post.html", Data{Nav: Nav(true), Post: post})
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Body")
}

func TestRenderEscapesUserContent(t *testing.T) {
	r := New()
	rec := httptest.NewRecorder()
	r.Render(rec, "userHome.html", Data{Nav: Nav(true), Posts: []models.Post{{
		ID:      primitive.NewObjectID(),
		Title:   "<script>alert(1)</script>",
		Content: "body",
	}}})

	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
}

func TestRenderErrorPage(t *testing.T) {
	r := New()
	rec := httptest.NewRecorder()
	r.RenderError(rec, 500, "Could not load your journal.", true)

	assert.Equal(t, 500, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not load your journal.")
}

func TestPreviewTruncatesLongContent(t *testing.T) {
	long := strings.Repeat("a", 200)
	assert.Equal(t, strings.Repeat("a", 100)+" ...", preview(long))
	assert.Equal(t, "short", preview("short"))
}
