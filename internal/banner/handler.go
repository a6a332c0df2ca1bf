package banner

import (
	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/response"
)

// RegisterBannerRoutes mounts the banner API under /api/banner.
func RegisterBannerRoutes(r gin.IRouter, svc Service) {
	g := r.Group("/api/banner")

	g.GET("", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, list)
	})

	g.GET("/:id", func(c *gin.Context) {
		b, err := svc.Get(c.Request.Context(), c.Param("id"))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, b)
	})

	g.POST("", func(c *gin.Context) {
		var in Input
		if !response.BindJSON(c, &in) {
			return
		}
		res, err := svc.Create(c.Request.Context(), in)
		if response.HandleError(c, err) {
			return
		}
		response.Created(c, res)
	})

	g.PUT("/:id", func(c *gin.Context) {
		var in Input
		if !response.BindJSON(c, &in) {
			return
		}
		if response.HandleError(c, svc.Update(c.Request.Context(), c.Param("id"), in)) {
			return
		}
		response.OK(c, gin.H{"message": "Banner updated successfully"})
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if response.HandleError(c, svc.Delete(c.Request.Context(), c.Param("id"))) {
			return
		}
		response.OK(c, gin.H{"message": "Banner deleted successfully"})
	})
}
