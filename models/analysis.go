package models

import (
	"strings"
	"time"
)

// Sentiment is the overall verdict of a review.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentUnknown  Sentiment = "unknown"
)

// ParseSentiment normalizes a model-produced sentiment value. Comparison is
// case-insensitive and tolerates trailing punctuation; anything unrecognized
// maps to SentimentUnknown.
func ParseSentiment(raw string) Sentiment {
	switch strings.ToLower(strings.TrimRight(strings.TrimSpace(raw), ".!")) {
	case "positive":
		return SentimentPositive
	case "negative":
		return SentimentNegative
	case "neutral":
		return SentimentNeutral
	default:
		return SentimentUnknown
	}
}

// Label returns the sentiment as a display heading, e.g. "Positive".
func (s Sentiment) Label() string {
	switch s {
	case SentimentPositive:
		return "Positive"
	case SentimentNegative:
		return "Negative"
	case SentimentNeutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// ReviewAnalysis is the structured breakdown of a single product review.
type ReviewAnalysis struct {
	ID        string    `json:"id,omitempty"`
	Sentiment Sentiment `json:"sentiment"`
	Summary   string    `json:"summary"`
	Themes    []string  `json:"themes"`
	Pros      []string  `json:"pros"`
	Cons      []string  `json:"cons"`
	Provider  string    `json:"provider,omitempty"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
