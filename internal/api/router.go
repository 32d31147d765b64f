package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"repo-insight/internal/config"
)

// SetupRouter builds the gin engine with all routes. CORS is wide open: the
// frontend runs on a different origin and no credentials are involved.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(cors.Default())

	r.GET("/health", healthHandler)
	r.GET("/config", configHandler(cfg))

	// API routes
	group := r.Group("/api")
	{
		group.POST("/get_repo", GetRepoHandler())
		group.POST("/mid_output", MidOutputHandler())
		group.POST("/project_summary", ProjectSummaryHandler(cfg))
	}
	return r
}
