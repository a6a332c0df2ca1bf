package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger serves the API description.
// - GET /swagger/index.html  -> Swagger UI loading the document below
// - GET /swagger/doc.json    -> OpenAPI 3 JSON
func RegisterSwagger(r gin.IRouter) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>site API - Swagger</title>
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

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "site-api", "version": "v1.0.0" },
  "paths": {
    "/api/logo": {
      "get": { "summary": "Current logo", "responses": { "200": { "description": "logo document" }, "404": { "description": "no logo" } } },
      "post": { "summary": "Replace the logo", "requestBody": { "content": { "application/json": { "schema": {"type":"object"} } } }, "responses": { "201": { "description": "logo saved" } } }
    },
    "/api/banner": {
      "get": { "summary": "List banners", "responses": { "200": { "description": "banners" } } },
      "post": { "summary": "Create banner", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"image":{"type":"string"},"welcomeText":{"type":"string"},"title":{"type":"string"},"subtitle":{"type":"string"},"description":{"type":"string"},"buttonText":{"type":"string"}}}}}}, "responses": { "201": { "description": "insert result" } } }
    },
    "/api/banner/{id}": {
      "get": { "summary": "Get banner", "responses": { "200": { "description": "banner" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update banner", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete banner", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/blogs": {
      "get": { "summary": "List blogs, newest first", "responses": { "200": { "description": "blogs" } } },
      "post": { "summary": "Create blog", "requestBody": { "content": { "application/json": { "schema": {"type":"object"} } } }, "responses": { "201": { "description": "insert result" } } }
    },
    "/api/blogs/{id}": {
      "get": { "summary": "Get blog", "responses": { "200": { "description": "blog" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update blog", "responses": { "200": { "description": "update counts" } } },
      "delete": { "summary": "Delete blog", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/videos": {
      "get": { "summary": "List videos, newest first", "responses": { "200": { "description": "videos" } } },
      "post": { "summary": "Create video", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","description","thumbnail","videoUrl"],"properties":{"title":{"type":"string"},"description":{"type":"string"},"thumbnail":{"type":"string"},"videoUrl":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}}}}}}}, "responses": { "201": { "description": "inserted id" }, "400": { "description": "missing fields" } } }
    },
    "/api/videos/{id}": {
      "get": { "summary": "Get video", "responses": { "200": { "description": "video" } } },
      "put": { "summary": "Update video", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete video", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/about": {
      "get": { "summary": "About page content", "responses": { "200": { "description": "documents" } } }
    },
    "/api/qna": {
      "get": { "summary": "List questions", "parameters": [{ "name": "status", "in": "query", "schema": { "type": "string", "enum": ["pending", "answered"] } }], "responses": { "200": { "description": "questions" } } },
      "post": { "summary": "Submit a question", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["question"],"properties":{"question":{"type":"string"},"userName":{"type":"string"},"userEmail":{"type":"string"}}}}}}, "responses": { "201": { "description": "submitted" } } }
    },
    "/api/qna/{id}": {
      "get": { "summary": "Get question", "responses": { "200": { "description": "question" } } },
      "put": { "summary": "Answer question", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["answer"],"properties":{"answer":{"type":"string"},"question":{"type":"string"}}}}}}, "responses": { "200": { "description": "answered" } } },
      "delete": { "summary": "Delete question", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/contact": {
      "get": { "summary": "List messages", "parameters": [{ "name": "page", "in": "query", "schema": { "type": "integer" } }, { "name": "limit", "in": "query", "schema": { "type": "integer" } }], "responses": { "200": { "description": "page of messages" } } },
      "post": { "summary": "Send a message", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","subject","message"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"subject":{"type":"string"},"message":{"type":"string"}}}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "validation errors" } } },
      "delete": { "summary": "Delete messages by id", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"ids":{"type":"array","items":{"type":"string"}}}}}}}, "responses": { "200": { "description": "deleted count" } } }
    },
    "/api/contact/stats": { "get": { "summary": "Counts by status", "responses": { "200": { "description": "stats" } } } },
    "/api/contact/search/{query}": { "get": { "summary": "Search messages", "responses": { "200": { "description": "matches" } } } },
    "/api/contact/status/{status}": { "get": { "summary": "Messages by status", "responses": { "200": { "description": "matches" } } } },
    "/api/contact/{id}": {
      "get": { "summary": "Get message", "responses": { "200": { "description": "message" } } },
      "put": { "summary": "Update message", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete message", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/contact/{id}/status": { "patch": { "summary": "Set message status", "responses": { "200": { "description": "updated" } } } },
    "/api/search": {
      "get": { "summary": "Multilingual search", "parameters": [{ "name": "q", "in": "query", "required": true, "schema": { "type": "string" } }, { "name": "type", "in": "query", "schema": { "type": "string", "enum": ["blogs", "videos", "qna"] } }], "responses": { "200": { "description": "grouped results" }, "400": { "description": "missing term or bad type" } } }
    },
    "/api/media": { "post": { "summary": "Upload an image", "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"file":{"type":"string","format":"binary"}}}}}}, "responses": { "201": { "description": "stored object" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
