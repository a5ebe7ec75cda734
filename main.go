package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atelierhq/agency-api/handlers"
	"github.com/atelierhq/agency-api/internal/blog"
	"github.com/atelierhq/agency-api/internal/config"
	"github.com/atelierhq/agency-api/internal/contacts"
	"github.com/atelierhq/agency-api/internal/database"
	"github.com/atelierhq/agency-api/internal/newsletter"
	"github.com/atelierhq/agency-api/internal/portfolio"
	"github.com/atelierhq/agency-api/internal/quotes"
	"github.com/atelierhq/agency-api/internal/testimonials"
	"github.com/atelierhq/agency-api/pkg/logger"
	"github.com/atelierhq/agency-api/pkg/metrics"
	"github.com/atelierhq/agency-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v database=%s origins=%v", cfg.MongoDB.URI != "", cfg.MongoDB.Database, cfg.CORS.AllowedOrigins)

	r := gin.New()
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// Retry/backoff when connecting to MongoDB to tolerate startup races
	// with the database container. Every endpoint needs the store, so a
	// final failure is fatal.
	ctx := context.Background()
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if err != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, err)
	}

	db := client.Database(cfg.MongoDB.Database)
	contactSvc := contacts.NewService(contacts.NewMongoRepository(db.Collection("contacts")))
	quoteSvc := quotes.NewService(quotes.NewMongoRepository(db.Collection("quotes")))
	projectSvc := portfolio.NewService(portfolio.NewMongoRepository(db.Collection("projects")))
	blogSvc := blog.NewService(blog.NewMongoRepository(db.Collection("blog_posts")))
	testimonialSvc := testimonials.NewService(testimonials.NewMongoRepository(db.Collection("testimonials")))
	newsletterSvc := newsletter.NewService(newsletter.NewMongoRepository(db.Collection("newsletter")))

	api := r.Group("/api")
	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Agency API is running"})
	})
	contacts.RegisterRoutes(api, contactSvc)
	quotes.RegisterRoutes(api, quoteSvc)
	portfolio.RegisterRoutes(api, projectSvc)
	blog.RegisterRoutes(api, blogSvc)
	testimonials.RegisterRoutes(api, testimonialSvc)
	newsletter.RegisterRoutes(api, newsletterSvc)

	// readiness: 200 only while the store answers pings
	r.GET("/ready", func(c *gin.Context) {
		if err := client.Ping(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting agency API on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Errorf("mongo disconnect: %v", err)
	}
}
