package qna

import (
	"github.com/gin-gonic/gin"

	"github.com/elmufurqaan/site/backend/go-services/pkg/response"
)

// RegisterQnARoutes mounts the Q&A API under /api/qna.
func RegisterQnARoutes(r gin.IRouter, svc Service) {
	g := r.Group("/api/qna")

	g.GET("", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context(), c.Query("status"))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, list)
	})

	g.GET("/:id", func(c *gin.Context) {
		q, err := svc.Get(c.Request.Context(), c.Param("id"))
		if response.HandleError(c, err) {
			return
		}
		response.OK(c, q)
	})

	g.POST("", func(c *gin.Context) {
		var in SubmitInput
		if !response.BindJSON(c, &in) {
			return
		}
		id, err := svc.Submit(c.Request.Context(), in, c.ClientIP())
		if response.HandleError(c, err) {
			return
		}
		response.Created(c, gin.H{"message": "Question submitted successfully", "insertedId": id})
	})

	g.PUT("/:id", func(c *gin.Context) {
		var in AnswerInput
		if !response.BindJSON(c, &in) {
			return
		}
		if response.HandleError(c, svc.Answer(c.Request.Context(), c.Param("id"), in)) {
			return
		}
		response.OK(c, gin.H{"message": "Q&A updated successfully"})
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if response.HandleError(c, svc.Delete(c.Request.Context(), c.Param("id"))) {
			return
		}
		response.OK(c, gin.H{"message": "Q&A deleted successfully"})
	})
}
