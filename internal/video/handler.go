package video

import (
	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/response"
)

// RegisterVideoRoutes mounts the video API under /api/videos.
func RegisterVideoRoutes(r gin.IRouter, svc Service) {
	g := r.Group("/api/videos")

	g.GET("", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, list)
	})

	g.GET("/:id", func(c *gin.Context) {
		v, err := svc.Get(c.Request.Context(), c.Param("id"))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, v)
	})

	g.POST("", func(c *gin.Context) {
		var in Input
		if !response.BindJSON(c, &in) {
			return
		}
		id, err := svc.Create(c.Request.Context(), in)
		if response.HandleError(c, err) {
			return
		}
		response.Created(c, gin.H{"insertedId": id})
	})

	g.PUT("/:id", func(c *gin.Context) {
		var in Input
		if !response.BindJSON(c, &in) {
			return
		}
		if response.HandleError(c, svc.Update(c.Request.Context(), c.Param("id"), in)) {
			return
		}
		response.OK(c, gin.H{"message": "Video updated successfully"})
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if response.HandleError(c, svc.Delete(c.Request.Context(), c.Param("id"))) {
			return
		}
		response.OK(c, gin.H{"message": "Video deleted successfully"})
	})
}
