package logo

import (
	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/response"
)

// RegisterLogoRoutes mounts the logo slot under /api/logo.
func RegisterLogoRoutes(r gin.IRouter, svc Service) {
	g := r.Group("/api/logo")

	g.GET("", func(c *gin.Context) {
		doc, err := svc.Get(c.Request.Context())
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, doc)
	})

	g.POST("", func(c *gin.Context) {
		var body map[string]interface{}
		if !response.BindJSON(c, &body) {
			return
		}
		doc, err := svc.Save(c.Request.Context(), body)
		if response.HandleError(c, err) {
			return
		}
		response.Created(c, gin.H{"success": true, "message": "Logo saved successfully", "data": doc})
	})
}
