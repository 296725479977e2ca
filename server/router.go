package server

import (
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tomsarry/content_backend/config"
	"github.com/tomsarry/content_backend/handlers"
	"github.com/tomsarry/content_backend/logger"
	"github.com/tomsarry/content_backend/metrics"
)

// CORSConfig allows any origin, method and header with credentials. The
// request origin is echoed back since a wildcard is not valid with credentials
func CORSConfig() cors.Config {
	return cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"DELETE", "GET", "HEAD", "OPTIONS", "PATCH", "POST", "PUT"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}
}

// mirrorRequestHeaders allows whatever headers a preflight asks for
// It must run before the cors middleware, which aborts preflights
func mirrorRequestHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		c.Next()
	}
}

// NewRouter wires the middleware stack and every route
func NewRouter(cfg config.Config, h *handlers.Handler, doc *openapi3.T) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20
	r.HandleMethodNotAllowed = true

	r.Use(
		logger.RequestID(),
		logger.AccessLog(),
		metrics.Middleware(),
		handlers.Recovery(),
		mirrorRequestHeaders(),
		cors.New(CORSConfig()),
	)

	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.POST("/analyze-video", h.AnalyzeVideo)
	r.POST("/recommendations", h.Recommendations)
	r.GET("/performance-metrics", h.PerformanceMetrics)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	if doc != nil {
		r.GET("/openapi.json", func(c *gin.Context) {
			c.JSON(http.StatusOK, doc)
		})
	}

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	return r
}
