package services

import (
	"strings"

	"reviewhub/models"
)

type section int

const (
	sectionNone section = iota
	sectionSentiment
	sectionSummary
	sectionThemes
	sectionPros
	sectionCons
)

var sectionMarkers = []struct {
	section section
	label   string
}{
	{sectionSentiment, "SENTIMENT:"},
	{sectionSummary, "SUMMARY:"},
	{sectionThemes, "THEMES:"},
	{sectionPros, "PROS:"},
	{sectionCons, "CONS:"},
}

// ParseAnalysis converts a raw model reply into a ReviewAnalysis. It never
// fails: unparseable input yields SentimentUnknown, an empty summary, and
// empty lists. Sections may arrive in any order; when the model repeats a
// label, the later occurrence replaces the earlier one.
func ParseAnalysis(raw string) models.ReviewAnalysis {
	analysis := models.ReviewAnalysis{
		Sentiment: models.SentimentUnknown,
		Themes:    []string{},
		Pros:      []string{},
		Cons:      []string{},
	}

	current := sectionNone
	var summary []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if next, rest, ok := splitSectionLabel(line); ok {
			current = next
			switch current {
			case sectionSentiment:
				analysis.Sentiment = models.SentimentUnknown
			case sectionSummary:
				summary = summary[:0]
			case sectionThemes:
				analysis.Themes = analysis.Themes[:0]
			case sectionPros:
				analysis.Pros = analysis.Pros[:0]
			case sectionCons:
				analysis.Cons = analysis.Cons[:0]
			}
			if rest == "" {
				continue
			}
			line = rest
		}

		switch current {
		case sectionSentiment:
			if analysis.Sentiment == models.SentimentUnknown {
				analysis.Sentiment = models.ParseSentiment(line)
			}
		case sectionSummary:
			summary = append(summary, line)
		case sectionThemes:
			if item := stripBullet(line); item != "" {
				analysis.Themes = append(analysis.Themes, item)
			}
		case sectionPros:
			if item := stripBullet(line); item != "" {
				analysis.Pros = append(analysis.Pros, item)
			}
		case sectionCons:
			if item := stripBullet(line); item != "" {
				analysis.Cons = append(analysis.Cons, item)
			}
		}
	}

	analysis.Summary = strings.Join(summary, " ")
	return analysis
}

// splitSectionLabel reports whether the line opens one of the known
// sections. Label matching is case-insensitive; any text after the colon is
// returned as inline content.
func splitSectionLabel(line string) (section, string, bool) {
	for _, m := range sectionMarkers {
		if len(line) >= len(m.label) && strings.EqualFold(line[:len(m.label)], m.label) {
			return m.section, strings.TrimSpace(line[len(m.label):]), true
		}
	}
	return sectionNone, "", false
}

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-*•"))
}
