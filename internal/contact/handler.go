package contact

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/response"
)

func queryInt(c *gin.Context, key string) int64 {
	n, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// RegisterContactRoutes mounts the contact message API under /api/contact.
func RegisterContactRoutes(r gin.IRouter, svc Service) {
	g := r.Group("/api/contact")

	g.GET("", func(c *gin.Context) {
		page, err := svc.List(c.Request.Context(), queryInt(c, "page"), queryInt(c, "limit"))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, page)
	})

	g.GET("/stats", func(c *gin.Context) {
		st, err := svc.Stats(c.Request.Context())
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, st)
	})

	g.GET("/search/:query", func(c *gin.Context) {
		list, err := svc.Search(c.Request.Context(), c.Param("query"))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, gin.H{"contacts": list, "count": len(list)})
	})

	g.GET("/status/:status", func(c *gin.Context) {
		list, err := svc.ByStatus(c.Request.Context(), Status(c.Param("status")))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, gin.H{"contacts": list, "count": len(list)})
	})

	g.GET("/:id", func(c *gin.Context) {
		ct, err := svc.Get(c.Request.Context(), c.Param("id"))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, ct)
	})

	g.POST("", func(c *gin.Context) {
		var in CreateInput
		if !response.BindJSON(c, &in) {
			return
		}
		id, err := svc.Create(c.Request.Context(), in)
		if response.HandleError(c, err) {
			return
		}
		response.Created(c, gin.H{"message": "Contact message sent successfully", "contactId": id})
	})

	g.PUT("/:id", func(c *gin.Context) {
		var in UpdateInput
		if !response.BindJSON(c, &in) {
			return
		}
		if response.HandleError(c, svc.Update(c.Request.Context(), c.Param("id"), in)) {
			return
		}
		response.OK(c, gin.H{"message": "Contact updated successfully"})
	})

	g.PATCH("/:id/status", func(c *gin.Context) {
		var in struct {
			Status Status `json:"status"`
		}
		if !response.BindJSON(c, &in) {
			return
		}
		if response.HandleError(c, svc.SetStatus(c.Request.Context(), c.Param("id"), in.Status)) {
			return
		}
		response.OK(c, gin.H{"message": "Contact status updated successfully"})
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if response.HandleError(c, svc.Delete(c.Request.Context(), c.Param("id"))) {
			return
		}
		response.OK(c, gin.H{"message": "Contact deleted successfully"})
	})

	g.DELETE("", func(c *gin.Context) {
		var in struct {
			IDs []string `json:"ids"`
		}
		if !response.BindJSON(c, &in) {
			return
		}
		n, err := svc.DeleteMany(c.Request.Context(), in.IDs)
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, gin.H{"message": "Contacts deleted successfully", "deletedCount": n})
	})
}
