package newsletter

import (
	"errors"
	"net/http"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/pkg/httperr"
	"github.com/atelierhq/agency-api/pkg/logger"
	"github.com/atelierhq/agency-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the newsletter signup endpoint on the given group.
func RegisterRoutes(rg *gin.RouterGroup, svc *Service) {
	rg.POST("/newsletter", func(c *gin.Context) {
		var in models.NewsletterCreate
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusUnprocessableEntity, httperr.Validation(err))
			return
		}
		rec, err := svc.Subscribe(c.Request.Context(), &in)
		if err != nil {
			if errors.Is(err, ErrAlreadySubscribed) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already subscribed"})
				return
			}
			logger.Errorf("subscribe newsletter: %v", err)
			metrics.StoreErrors.WithLabelValues("newsletter", "insert").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		metrics.SubmissionsCreated.WithLabelValues("newsletter").Inc()
		c.JSON(http.StatusOK, rec)
	})
}
