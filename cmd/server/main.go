package main

import (
	"log"
	"strconv"

	"reviewhub/config"
	"reviewhub/logging"
	"reviewhub/routes"
	"reviewhub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load API keys and overrides from .env when present
	godotenv.Load()

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.InitLogger(cfg.Logging)

	analyzer := services.NewAnalyzerService(cfg)
	if analyzer.Configured() {
		logrus.Infof("Analyzer ready: provider=%s model=%s", analyzer.Provider(), analyzer.Model())
	} else {
		logrus.Warnf("Analyzer disabled: %v", analyzer.ConfigError())
	}

	router := setupRouter(cfg, analyzer)
	port := strconv.Itoa(cfg.Server.Port)
	logrus.Infof("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, analyzer *services.AnalyzerService) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
	}))

	router.LoadHTMLGlob("templates/*")

	routes.SetupAnalyzeRoutes(&router.RouterGroup, analyzer)

	return router
}
