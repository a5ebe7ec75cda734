package portfolio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/atelierhq/agency-api/pkg/logger"
	"github.com/atelierhq/agency-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the portfolio endpoints on the given group.
func RegisterRoutes(rg *gin.RouterGroup, svc *Service) {
	rg.GET("/projects", func(c *gin.Context) {
		f := Filter{Category: c.Query("category")}
		if raw := c.Query("featured"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "featured must be a boolean"})
				return
			}
			f.Featured = &v
		}
		list, err := svc.List(c.Request.Context(), f)
		if err != nil {
			logger.Errorf("list projects: %v", err)
			metrics.StoreErrors.WithLabelValues("projects", "find").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	rg.GET("/projects/:id", func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
				return
			}
			logger.Errorf("get project: %v", err)
			metrics.StoreErrors.WithLabelValues("projects", "find_one").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, p)
	})
}
