package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bytebender77/AI-CitySense/internal/config"
	"github.com/bytebender77/AI-CitySense/internal/issues"
	"github.com/bytebender77/AI-CitySense/internal/metrics"
	"github.com/bytebender77/AI-CitySense/internal/server/middleware"
	"github.com/bytebender77/AI-CitySense/internal/server/respond"
)

// Deps carries the wired handlers the router needs.
type Deps struct {
	Config       config.Config
	IssueHandler *issues.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	metrics.Register()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.IssueHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
