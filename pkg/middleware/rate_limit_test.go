package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/elmufurqaan/site/backend/go-services/pkg/metrics"
)

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	allowed := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))
	r := limitedEngine(RateLimitMiddleware(10, 3))

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hit(r, "198.51.100.1").Code)
	}
	require.Equal(t, allowed+3, testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory")))
}

func TestRateLimit_RejectsThenRefills(t *testing.T) {
	rejected := testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("memory"))
	// one token, refilled every 200ms
	r := limitedEngine(RateLimitMiddleware(5, 1))

	require.Equal(t, http.StatusOK, hit(r, "198.51.100.2").Code)
	w := hit(r, "198.51.100.2")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "1", w.Header().Get("Retry-After"))
	require.JSONEq(t, `{"error":"Rate limit exceeded"}`, w.Body.String())
	require.Equal(t, rejected+1, testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("memory")))

	time.Sleep(250 * time.Millisecond)
	require.Equal(t, http.StatusOK, hit(r, "198.51.100.2").Code)
}

func TestRateLimit_BucketPerClient(t *testing.T) {
	r := limitedEngine(RateLimitMiddleware(0.5, 1))

	require.Equal(t, http.StatusOK, hit(r, "10.0.0.1").Code)
	require.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1").Code)
	require.Equal(t, http.StatusOK, hit(r, "10.0.0.2").Code)
}
