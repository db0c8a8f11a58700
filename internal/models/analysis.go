package models

const (
	AssessmentExcellent   = "Excellent match - likely to pass initial screening"
	AssessmentStrong      = "Strong candidate with minor gaps to address"
	AssessmentModerate    = "Moderate fit - several improvements needed"
	AssessmentSignificant = "Significant gaps - major revisions recommended"
)

// AnalysisResult is the structured outcome of one resume analysis.
type AnalysisResult struct {
	MatchPercentage   int    `json:"match_percentage"`
	OverallAssessment string `json:"overall_assessment"`
	AIFullAnalysis    string `json:"ai_full_analysis"`
	Error             string `json:"error,omitempty"`
}

type TextStats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Lines      int `json:"lines"`
}

type ExtractTextResponse struct {
	Text    string    `json:"text"`
	Preview string    `json:"preview"`
	Stats   TextStats `json:"stats"`
}

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
