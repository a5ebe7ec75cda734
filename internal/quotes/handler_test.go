package quotes

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

const validQuote = `{
	"name": "Dana",
	"email": "dana@example.com",
	"company": "Dana Co",
	"phone": "+1 555 0100",
	"project_type": "web",
	"budget": "10k-25k",
	"timeline": "3 months",
	"description": "A new marketing site"
}`

func TestCreateThenList(t *testing.T) {
	g := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(validQuote))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var created models.QuoteRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Dana Co", created.Company)
	require.False(t, created.Timestamp.IsZero())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.QuoteRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)
	require.Equal(t, "A new marketing site", list[0].Description)
}

func TestAllFieldsRequired(t *testing.T) {
	g := newTestRouter()

	// budget missing
	body := `{"name":"Dana","email":"dana@example.com","company":"Dana Co","phone":"+1 555 0100","project_type":"web","timeline":"3 months","description":"site"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Fields, "Budget")
}
