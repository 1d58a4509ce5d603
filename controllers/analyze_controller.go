package controllers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"reviewhub/models"
	"reviewhub/utils"
)

// ReviewAnalyzer is the slice of the analyzer service the HTTP layer needs.
type ReviewAnalyzer interface {
	Analyze(ctx context.Context, review string) (models.ReviewAnalysis, error)
	Configured() bool
	ConfigError() error
	Provider() string
	Model() string
}

// AnalyzeRequest is the payload for POST /api/analyze.
type AnalyzeRequest struct {
	Review string `json:"review" binding:"required"`
}

type AnalyzeController struct {
	analyzer ReviewAnalyzer
}

func NewAnalyzeController(analyzer ReviewAnalyzer) *AnalyzeController {
	return &AnalyzeController{analyzer: analyzer}
}

// Analyze runs a submitted review through the model and returns the
// structured result.
func (ac *AnalyzeController) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Review) == "" {
		c.JSON(400, gin.H{"error": "Please enter a review to analyze"})
		return
	}

	if !ac.analyzer.Configured() {
		c.JSON(503, gin.H{"error": "Review analysis is not configured: " + ac.analyzer.ConfigError().Error()})
		return
	}

	analysis, err := ac.analyzer.Analyze(c.Request.Context(), req.Review)
	if err != nil {
		logrus.Errorf("Analysis failed: %v", err)
		c.JSON(502, gin.H{"error": "Analysis failed: " + err.Error()})
		return
	}

	c.JSON(200, analysis)
}

// Export renders a previously returned analysis as a downloadable plain-text
// report.
func (ac *AnalyzeController) Export(c *gin.Context) {
	var analysis models.ReviewAnalysis
	if err := c.ShouldBindJSON(&analysis); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	report := utils.FormatReport(analysis)
	c.Header("Content-Disposition", `attachment; filename="`+utils.ExportFileName+`"`)
	c.Data(200, "text/plain; charset=utf-8", []byte(report))
}
