package search

import (
	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/response"
)

// RegisterSearchRoutes mounts GET /api/search.
func RegisterSearchRoutes(r gin.IRouter, svc Service) {
	r.GET("/api/search", func(c *gin.Context) {
		res, err := svc.Search(c.Request.Context(), c.Query("q"), c.Query("type"))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, res)
	})
}
