package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func seedProjects(t *testing.T, repo *MemoryRepository) {
	t.Helper()
	projects := []models.Project{
		{ID: "p1", Title: "Storefront relaunch", Client: "Acme", Category: "web", Featured: true, Technologies: []string{"react", "go"}, Timestamp: models.Now()},
		{ID: "p2", Title: "Fitness app", Client: "FitCo", Category: "mobile", Featured: true, Timestamp: models.Now()},
		{ID: "p3", Title: "Brand refresh", Client: "Northline", Category: "web", Featured: false, Timestamp: models.Now()},
	}
	for i := range projects {
		require.NoError(t, repo.Insert(context.Background(), &projects[i]))
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepository()
	seedProjects(t, repo)
	g := gin.New()
	RegisterRoutes(g.Group("/api"), NewService(repo))
	return g
}

func getJSON(t *testing.T, g *gin.Engine, path string, out interface{}) int {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	g.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

func TestListFilters(t *testing.T) {
	g := newTestRouter(t)

	var all []models.Project
	require.Equal(t, http.StatusOK, getJSON(t, g, "/api/projects", &all))
	require.Len(t, all, 3)

	var web []models.Project
	require.Equal(t, http.StatusOK, getJSON(t, g, "/api/projects?category=web", &web))
	require.Len(t, web, 2)
	for _, p := range web {
		require.Equal(t, "web", p.Category)
	}

	var featured []models.Project
	require.Equal(t, http.StatusOK, getJSON(t, g, "/api/projects?featured=true", &featured))
	require.Len(t, featured, 2)
	for _, p := range featured {
		require.True(t, p.Featured)
	}

	// both filters intersect
	var both []models.Project
	require.Equal(t, http.StatusOK, getJSON(t, g, "/api/projects?category=web&featured=true", &both))
	require.Len(t, both, 1)
	require.Equal(t, "p1", both[0].ID)

	require.Equal(t, http.StatusUnprocessableEntity, getJSON(t, g, "/api/projects?featured=maybe", nil))
}

func TestGetByID(t *testing.T) {
	g := newTestRouter(t)

	var p models.Project
	require.Equal(t, http.StatusOK, getJSON(t, g, "/api/projects/p2", &p))
	require.Equal(t, "Fitness app", p.Title)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects/nope", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Project not found")
}
