package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/elmufurqaan/site/backend/go-services/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_RecordsRouteMetrics(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/api/items/:id", func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"}) })

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/api/items/:id", "404"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/items/abc", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/api/items/:id", "404")))

	unmatched := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "unmatched", "404"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))
	require.Equal(t, unmatched+1, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
