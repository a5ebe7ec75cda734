package blog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func at(t time.Time) models.Timestamp {
	return models.Timestamp{Time: t.UTC().Truncate(time.Second)}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepository()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	posts := []models.BlogPost{
		{ID: "b1", Title: "Oldest", Slug: "oldest", Category: "web-development", Published: true, Timestamp: at(base)},
		{ID: "b2", Title: "Middle", Slug: "middle", Category: "ux-design", Published: true, Timestamp: at(base.Add(24 * time.Hour))},
		{ID: "b3", Title: "Newest", Slug: "newest", Category: "web-development", Published: true, Timestamp: at(base.Add(48 * time.Hour))},
		{ID: "b4", Title: "Draft", Slug: "draft", Category: "web-development", Published: false, Timestamp: at(base.Add(72 * time.Hour))},
	}
	for i := range posts {
		require.NoError(t, repo.Insert(context.Background(), &posts[i]))
	}

	g := gin.New()
	RegisterRoutes(g.Group("/api"), NewService(repo))
	return g
}

func TestListNewestFirstPublishedOnly(t *testing.T) {
	g := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	require.Equal(t, []string{"newest", "middle", "oldest"}, []string{list[0].Slug, list[1].Slug, list[2].Slug})
	for _, p := range list {
		require.True(t, p.Published)
	}
}

func TestListCategoryFilter(t *testing.T) {
	g := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blog?category=web-development", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	for _, p := range list {
		require.Equal(t, "web-development", p.Category)
	}
}

func TestGetBySlug(t *testing.T) {
	g := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blog/middle", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var p models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.Equal(t, "Middle", p.Title)

	// unpublished posts are invisible even with the right slug
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/blog/draft", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/blog/missing", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Blog post not found")
}
