package blog

import (
	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/response"
)

// RegisterBlogRoutes mounts the blog API under /api/blogs.
func RegisterBlogRoutes(r gin.IRouter, svc Service) {
	g := r.Group("/api/blogs")

	g.GET("", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, list)
	})

	g.GET("/:id", func(c *gin.Context) {
		post, err := svc.Get(c.Request.Context(), c.Param("id"))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, post)
	})

	g.POST("", func(c *gin.Context) {
		var body map[string]interface{}
		if !response.BindJSON(c, &body) {
			return
		}
		res, err := svc.Create(c.Request.Context(), body)
		if response.HandleError(c, err) {
			return
		}
		response.Created(c, res)
	})

	g.PUT("/:id", func(c *gin.Context) {
		var body map[string]interface{}
		if !response.BindJSON(c, &body) {
			return
		}
		res, err := svc.Update(c.Request.Context(), c.Param("id"), body)
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, gin.H{
			"message": "Blog updated successfully",
			"result":  gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount},
		})
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if response.HandleError(c, svc.Delete(c.Request.Context(), c.Param("id"))) {
			return
		}
		response.OK(c, gin.H{"message": "Blog deleted successfully"})
	})
}
