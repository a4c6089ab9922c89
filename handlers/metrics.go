package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "elearn_requests_total",
	Help: "Total HTTP requests",
})

// CountRequests increments the request counter for every request that
// passes through the router.
func CountRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestCount.Inc()
		c.Next()
	}
}

// Metrics serves the Prometheus text exposition.
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
