package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	loanDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loan_decisions_total",
		Help: "Loan decisions by verdict.",
	}, []string{"verdict"})

	kycVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kyc_verdicts_total",
		Help: "KYC verdicts by outcome.",
	}, []string{"outcome"})
)

// Middleware records request counts and latencies per route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		requestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus scrape endpoint
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// CountLoanDecision increments the decision counter for a verdict
func CountLoanDecision(verdict string) {
	loanDecisionsTotal.WithLabelValues(verdict).Inc()
}

// CountKYCVerdict increments the KYC verdict counter
func CountKYCVerdict(outcome string) {
	kycVerdictsTotal.WithLabelValues(outcome).Inc()
}
