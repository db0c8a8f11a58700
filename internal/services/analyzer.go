package services

import (
	"context"

	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/models"
)

type AnalyzerService interface {
	CheckCredential() error
	Analyze(ctx context.Context, resumeText, jobDescription string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	llm LLMClient
	log *zap.Logger
}

func NewAnalyzerService(llm LLMClient, log *zap.Logger) AnalyzerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &analyzerService{
		llm: llm,
		log: log,
	}
}

func (a *analyzerService) CheckCredential() error {
	return a.llm.CheckCredential()
}

// Analyze runs the model fallback and parses the winning completion.
func (a *analyzerService) Analyze(ctx context.Context, resumeText, jobDescription string) (*models.AnalysisResult, error) {
	a.log.Info("🔄 Starting resume analysis",
		zap.Int("resume_chars", len([]rune(resumeText))),
		zap.Int("job_description_chars", len([]rune(jobDescription))))

	completion, err := a.llm.Complete(ctx, resumeText, jobDescription)
	if err != nil {
		a.log.Error("❌ Resume analysis failed", zap.Error(err))
		return nil, err
	}

	result := ParseAnalysis(completion)
	resumeAnalysesTotal.WithLabelValues(result.OverallAssessment).Inc()

	a.log.Info("✅ Resume analysis completed",
		zap.Int("match_percentage", result.MatchPercentage),
		zap.String("assessment", result.OverallAssessment))

	return result, nil
}
