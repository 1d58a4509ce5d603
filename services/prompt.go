package services

import "fmt"

// BuildAnalysisPrompt constructs the instruction sent to the model for a
// single review. The labeled plain-text reply format it demands is the
// contract ParseAnalysis depends on.
func BuildAnalysisPrompt(review string) string {
	return fmt.Sprintf(
		`Act as a product review analyst. Read the customer review below and break it down into overall sentiment, a short summary, the key themes discussed, and the pros and cons mentioned.

Required Output Format (plain text, no markdown):
SENTIMENT: positive, negative, or neutral
SUMMARY: a one or two sentence summary of the review
THEMES:
- one key theme per line
PROS:
- one pro per line
CONS:
- one con per line

Leave the lines under THEMES, PROS, or CONS empty when the review mentions none.

Review:
%s

Provide ONLY the labeled sections above without additional text or markdown formatting.`,
		review,
	)
}
