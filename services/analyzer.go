package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"reviewhub/config"
	"reviewhub/models"
)

// AnalyzerService runs the full review analysis flow: build the prompt, call
// the configured model API once, and parse the reply. A service whose
// provider could not be set up (usually a missing API key) still constructs;
// it reports the problem through Configured and ConfigError so the server
// can keep running and surface the error to users.
type AnalyzerService struct {
	generator TextGenerator
	provider  string
	model     string
	configErr error
}

// NewAnalyzerService builds the analyzer for the provider named in the
// configuration.
func NewAnalyzerService(cfg *config.Config) *AnalyzerService {
	svc := &AnalyzerService{
		provider: cfg.LLM.Provider,
		model:    cfg.LLM.Model,
	}
	svc.generator, svc.configErr = newGenerator(cfg)
	return svc
}

// Configured reports whether the model backend is ready to accept requests.
func (s *AnalyzerService) Configured() bool {
	return s.configErr == nil
}

// ConfigError returns the setup failure, or nil when the service is ready.
func (s *AnalyzerService) ConfigError() error {
	return s.configErr
}

func (s *AnalyzerService) Provider() string {
	return s.provider
}

func (s *AnalyzerService) Model() string {
	return s.model
}

// Analyze runs one review through the model and returns the structured
// result. A reply that does not follow the expected format still produces a
// result; only transport-level failures return an error.
func (s *AnalyzerService) Analyze(ctx context.Context, review string) (models.ReviewAnalysis, error) {
	if s.configErr != nil {
		return models.ReviewAnalysis{}, fmt.Errorf("analyzer not configured: %w", s.configErr)
	}

	reply, err := s.generator.GenerateText(ctx, BuildAnalysisPrompt(review))
	if err != nil {
		logrus.WithField("provider", s.provider).Errorf("Model call failed: %v", err)
		return models.ReviewAnalysis{}, err
	}

	analysis := ParseAnalysis(reply)
	analysis.ID = uuid.New().String()
	analysis.Provider = s.provider
	analysis.Model = s.model
	analysis.CreatedAt = time.Now().UTC()

	if analysis.Sentiment == models.SentimentUnknown {
		logrus.WithField("id", analysis.ID).Warn("Model reply did not contain a recognizable sentiment")
	}
	logrus.WithFields(logrus.Fields{
		"id":        analysis.ID,
		"provider":  s.provider,
		"model":     s.model,
		"sentiment": analysis.Sentiment,
	}).Debug("Review analyzed")

	return analysis, nil
}
