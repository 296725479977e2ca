package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "content_api_http_request_duration_seconds",
		Help:    "HTTP request latencies in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	httpRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "content_api_http_requests_in_flight",
		Help: "Current number of HTTP requests being served",
	})

	videoAnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_api_video_analyses_total",
		Help: "Video analysis requests by outcome",
	}, []string{"outcome"})

	uploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "content_api_upload_size_bytes",
		Help:    "Size of uploaded video files",
		Buckets: prometheus.ExponentialBuckets(1024, 8, 8),
	})

	recommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_api_recommendations_total",
		Help: "Recommendation lookups by resolved profile and whether the requested profile was known",
	}, []string{"profile", "known"})
)

// Outcomes of a video analysis request
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// RecordVideoAnalysis counts one analysis request
func RecordVideoAnalysis(outcome string) {
	videoAnalysesTotal.WithLabelValues(outcome).Inc()
}

// RecordUpload observes the size of an accepted upload
func RecordUpload(size int64) {
	uploadBytes.Observe(float64(size))
}

// RecordRecommendation counts one lookup against the resolved profile
func RecordRecommendation(resolved string, known bool) {
	recommendationsTotal.WithLabelValues(resolved, strconv.FormatBool(known)).Inc()
}

// Middleware records request latency and in-flight requests. The route label
// is the registered pattern so unknown paths collapse into one series
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
