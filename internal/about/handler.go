package about

import (
	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/response"
)

// RegisterAboutRoutes mounts the read-only About API under /api/about.
func RegisterAboutRoutes(r gin.IRouter, svc Service) {
	r.GET("/api/about", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, list)
	})
}
