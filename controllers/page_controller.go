package controllers

import (
	"github.com/gin-gonic/gin"

	"reviewhub/models"
)

// StatusResponse reports whether the analyzer backend is ready.
type StatusResponse struct {
	Configured bool   `json:"configured"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Error      string `json:"error,omitempty"`
}

type PageController struct {
	analyzer ReviewAnalyzer
}

func NewPageController(analyzer ReviewAnalyzer) *PageController {
	return &PageController{analyzer: analyzer}
}

// Index serves the analyzer web page.
func (pc *PageController) Index(c *gin.Context) {
	c.HTML(200, "index.html", gin.H{
		"configured": pc.analyzer.Configured(),
		"provider":   pc.analyzer.Provider(),
		"model":      pc.analyzer.Model(),
	})
}

// Status returns analyzer readiness for the UI banner.
func (pc *PageController) Status(c *gin.Context) {
	resp := StatusResponse{
		Configured: pc.analyzer.Configured(),
		Provider:   pc.analyzer.Provider(),
		Model:      pc.analyzer.Model(),
	}
	if err := pc.analyzer.ConfigError(); err != nil {
		resp.Error = err.Error()
	}
	c.JSON(200, resp)
}

// Examples returns the built-in sample reviews.
func (pc *PageController) Examples(c *gin.Context) {
	c.JSON(200, models.ExampleReviews())
}
