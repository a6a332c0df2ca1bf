package media

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/logger"
	"github.com/elmufurqaan/site/backend/go-services/pkg/response"
)

// RegisterMediaRoutes mounts image upload and download under /api/media.
func RegisterMediaRoutes(r gin.IRouter, svc Service) {
	g := r.Group("/api/media")

	g.POST("", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+(1<<20))
		fh, err := c.FormFile("file")
		if err != nil {
			response.Error(c, http.StatusBadRequest, "File is required")
			return
		}
		f, err := fh.Open()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "File is required")
			return
		}
		defer f.Close()
		up, err := svc.Upload(c.Request.Context(), f)
		if response.HandleError(c, err) {
			return
		}
		response.Created(c, up)
	})

	g.GET("/*key", func(c *gin.Context) {
		rc, contentType, err := svc.Open(c.Request.Context(), c.Param("key"))
		if response.HandleError(c, err) {
			return
		}
		defer rc.Close()
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Type", contentType)
		c.Header("Cache-Control", "public, max-age=86400")
		c.Status(http.StatusOK)
		if _, err := io.Copy(c.Writer, rc); err != nil {
			logger.Warnf("media: stream %s: %v", c.Param("key"), err)
		}
	})
}
