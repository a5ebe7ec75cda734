package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the agency API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>agency-api — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the public API surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "agency-api", "version": "v0.1.0" },
  "paths": {
    "/api/": {
      "get": { "summary": "API banner", "responses": { "200": { "description": "service message" } } }
    },
    "/api/contacts": {
      "post": {
        "summary": "Submit the contact form",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","message"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"company":{"type":"string"},"phone":{"type":"string"},"message":{"type":"string"},"service_interest":{"type":"string"}}}}}},
        "responses": { "200": { "description": "stored contact" }, "422": { "description": "validation failed" } }
      },
      "get": { "summary": "List contact submissions", "responses": { "200": { "description": "contact list" } } }
    },
    "/api/quotes": {
      "post": {
        "summary": "Request a project quote",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","company","phone","project_type","budget","timeline","description"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"company":{"type":"string"},"phone":{"type":"string"},"project_type":{"type":"string"},"budget":{"type":"string"},"timeline":{"type":"string"},"description":{"type":"string"}}}}}},
        "responses": { "200": { "description": "stored quote request" }, "422": { "description": "validation failed" } }
      },
      "get": { "summary": "List quote requests", "responses": { "200": { "description": "quote list" } } }
    },
    "/api/projects": {
      "get": {
        "summary": "List portfolio projects",
        "parameters": [
          { "name": "category", "in": "query", "schema": { "type": "string", "enum": ["web","mobile","ux","marketing"] } },
          { "name": "featured", "in": "query", "schema": { "type": "boolean" } }
        ],
        "responses": { "200": { "description": "project list" } }
      }
    },
    "/api/projects/{id}": {
      "get": { "summary": "Get one project", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ], "responses": { "200": { "description": "project" }, "404": { "description": "not found" } } }
    },
    "/api/blog": {
      "get": { "summary": "List published blog posts, newest first", "parameters": [ { "name": "category", "in": "query", "schema": { "type": "string" } } ], "responses": { "200": { "description": "post list" } } }
    },
    "/api/blog/{slug}": {
      "get": { "summary": "Get one published blog post", "parameters": [ { "name": "slug", "in": "path", "required": true, "schema": { "type": "string" } } ], "responses": { "200": { "description": "post" }, "404": { "description": "not found" } } }
    },
    "/api/testimonials": {
      "get": { "summary": "List testimonials", "responses": { "200": { "description": "testimonial list" } } }
    },
    "/api/newsletter": {
      "post": {
        "summary": "Subscribe to the newsletter",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["email"],"properties":{"email":{"type":"string"}}}}}},
        "responses": { "200": { "description": "subscription" }, "400": { "description": "already subscribed" }, "422": { "description": "validation failed" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
