package routes

import (
	"github.com/gin-gonic/gin"

	"reviewhub/controllers"
	"reviewhub/services"
)

// SetupAnalyzeRoutes registers the analyzer page and API routes.
func SetupAnalyzeRoutes(router *gin.RouterGroup, analyzer *services.AnalyzerService) {
	analyzeCtrl := controllers.NewAnalyzeController(analyzer)
	pageCtrl := controllers.NewPageController(analyzer)

	router.GET("/", pageCtrl.Index)

	api := router.Group("/api")
	{
		api.GET("/status", pageCtrl.Status)
		api.GET("/examples", pageCtrl.Examples)
		api.POST("/analyze", analyzeCtrl.Analyze)
		api.POST("/export", analyzeCtrl.Export)
	}
}
