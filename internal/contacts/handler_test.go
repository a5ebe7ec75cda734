package contacts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	svc := NewService(NewMemoryRepository())
	RegisterRoutes(g.Group("/api"), svc)
	return g
}

func postJSON(g *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestCreateThenList(t *testing.T) {
	g := newTestRouter()

	w := postJSON(g, "/api/contacts", `{"name":"Jamie","email":"jamie@example.com","message":"hello","service_interest":"web"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.False(t, created.Timestamp.IsZero())
	require.Equal(t, "Jamie", created.Name)

	w2 := postJSON(g, "/api/contacts", `{"name":"Robin","email":"robin@example.com","message":"hi"}`)
	require.Equal(t, http.StatusOK, w2.Code)
	var second models.Contact
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &second))
	require.NotEqual(t, created.ID, second.ID)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Equal(t, created.ID, list[0].ID)
	require.Equal(t, "jamie@example.com", list[0].Email)
	require.Equal(t, created.Timestamp.Unix(), list[0].Timestamp.Unix())
}

func TestCreateValidation(t *testing.T) {
	g := newTestRouter()

	// missing required message
	w := postJSON(g, "/api/contacts", `{"name":"Jamie","email":"jamie@example.com"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "validation failed", body.Error)
	require.Contains(t, body.Fields, "Message")

	// malformed email
	w = postJSON(g, "/api/contacts", `{"name":"Jamie","email":"not-an-email","message":"hello"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// nothing stored on failure
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	g.ServeHTTP(w, req)
	var list []models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Empty(t, list)
}

func TestCreateIgnoresUnknownFields(t *testing.T) {
	g := newTestRouter()

	w := postJSON(g, "/api/contacts", `{"name":"Jamie","email":"jamie@example.com","message":"hello","admin":true}`)
	require.Equal(t, http.StatusOK, w.Code)
}
