package contacts

import (
	"net/http"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/pkg/httperr"
	"github.com/atelierhq/agency-api/pkg/logger"
	"github.com/atelierhq/agency-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the contact form endpoints on the given group.
func RegisterRoutes(rg *gin.RouterGroup, svc *Service) {
	rg.POST("/contacts", func(c *gin.Context) {
		var in models.ContactCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusUnprocessableEntity, httperr.Validation(err))
			return
		}
		rec, err := svc.Create(c.Request.Context(), &in)
		if err != nil {
			logger.Errorf("create contact: %v", err)
			metrics.StoreErrors.WithLabelValues("contacts", "insert").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		metrics.SubmissionsCreated.WithLabelValues("contacts").Inc()
		c.JSON(http.StatusOK, rec)
	})

	rg.GET("/contacts", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Errorf("list contacts: %v", err)
			metrics.StoreErrors.WithLabelValues("contacts", "find").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})
}
