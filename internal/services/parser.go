package services

import (
	"regexp"
	"strconv"

	"gapscan/resume-gap-analyzer/internal/models"
)

const defaultMatchPercentage = 50

var matchScorePattern = regexp.MustCompile(`(?i)MATCH SCORE:\s*(\d{1,3})%`)

// ParseAnalysis turns a raw model completion into an AnalysisResult.
// The completion is kept verbatim as the narrative.
func ParseAnalysis(text string) *models.AnalysisResult {
	percentage := ExtractMatchPercentage(text)

	return &models.AnalysisResult{
		MatchPercentage:   percentage,
		OverallAssessment: AssessmentFor(percentage),
		AIFullAnalysis:    text,
	}
}

// ExtractMatchPercentage returns the first "MATCH SCORE: N%" value in text,
// capped at 100, or 50 when none is present.
func ExtractMatchPercentage(text string) int {
	m := matchScorePattern.FindStringSubmatch(text)
	if m == nil {
		return defaultMatchPercentage
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultMatchPercentage
	}
	if n > 100 {
		n = 100
	}
	return n
}

func AssessmentFor(percentage int) string {
	switch {
	case percentage >= 80:
		return models.AssessmentExcellent
	case percentage >= 65:
		return models.AssessmentStrong
	case percentage >= 50:
		return models.AssessmentModerate
	default:
		return models.AssessmentSignificant
	}
}
