package blog

import (
	"errors"
	"net/http"

	"github.com/atelierhq/agency-api/pkg/logger"
	"github.com/atelierhq/agency-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the blog endpoints on the given group.
func RegisterRoutes(rg *gin.RouterGroup, svc *Service) {
	rg.GET("/blog", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			logger.Errorf("list blog posts: %v", err)
			metrics.StoreErrors.WithLabelValues("blog_posts", "find").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	rg.GET("/blog/:slug", func(c *gin.Context) {
		p, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
				return
			}
			logger.Errorf("get blog post: %v", err)
			metrics.StoreErrors.WithLabelValues("blog_posts", "find_one").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, p)
	})
}
