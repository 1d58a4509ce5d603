package utils

import (
	"fmt"
	"strings"

	"reviewhub/models"
)

// ExportFileName is the download name for exported analysis reports.
const ExportFileName = "review_analysis.txt"

// FormatReport renders an analysis as the plain-text report offered for
// download.
func FormatReport(analysis models.ReviewAnalysis) string {
	var sb strings.Builder

	sb.WriteString("Review Analysis Results\n")
	sb.WriteString("=====================\n\n")
	sb.WriteString(fmt.Sprintf("Sentiment: %s\n\n", analysis.Sentiment.Label()))
	sb.WriteString(fmt.Sprintf("Summary:\n%s\n\n", analysis.Summary))
	sb.WriteString(fmt.Sprintf("Key Themes:\n%s\n\n", strings.Join(analysis.Themes, ", ")))
	sb.WriteString(fmt.Sprintf("Pros:\n%s\n\n", bulletList(analysis.Pros)))
	sb.WriteString(fmt.Sprintf("Cons:\n%s\n", bulletList(analysis.Cons)))

	return sb.String()
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "None identified"
	}
	bullets := make([]string, 0, len(items))
	for _, item := range items {
		bullets = append(bullets, "• "+item)
	}
	return strings.Join(bullets, "\n")
}
