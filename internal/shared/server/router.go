package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/applications"
	"jobportal-backend/internal/contact"
	"jobportal-backend/internal/joboffers"
	"jobportal-backend/internal/shared/config"
	"jobportal-backend/internal/shared/metrics"
	"jobportal-backend/internal/shared/server/middleware"
	"jobportal-backend/internal/shared/server/respond"
	"jobportal-backend/internal/users"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config              config.Config
	JobOffersHandler    *joboffers.Handler
	ApplicationsHandler *applications.Handler
	UsersHandler        *users.Handler
	ContactHandler      *contact.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	origins := deps.Config.CORSAllowOrigin
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-Id"},
			ExposeHeaders:    []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.JobOffersHandler.RegisterRoutes(api)
	deps.UsersHandler.RegisterRoutes(api)
	deps.ContactHandler.RegisterRoutes(api)
	deps.ApplicationsHandler.RegisterPublicRoutes(api)

	admin := api.Group("")
	if deps.Config.AdminAuth {
		admin.Use(middleware.RequireAdmin())
	}
	deps.ApplicationsHandler.RegisterAdminRoutes(admin)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
