package quotes

import (
	"net/http"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/pkg/httperr"
	"github.com/atelierhq/agency-api/pkg/logger"
	"github.com/atelierhq/agency-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the quote request endpoints on the given group.
func RegisterRoutes(rg *gin.RouterGroup, svc *Service) {
	rg.POST("/quotes", func(c *gin.Context) {
		var in models.QuoteRequestCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusUnprocessableEntity, httperr.Validation(err))
			return
		}
		rec, err := svc.Create(c.Request.Context(), &in)
		if err != nil {
			logger.Errorf("create quote: %v", err)
			metrics.StoreErrors.WithLabelValues("quotes", "insert").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		metrics.SubmissionsCreated.WithLabelValues("quotes").Inc()
		c.JSON(http.StatusOK, rec)
	})

	rg.GET("/quotes", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Errorf("list quotes: %v", err)
			metrics.StoreErrors.WithLabelValues("quotes", "find").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})
}
