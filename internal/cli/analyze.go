package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/config"
	"gapscan/resume-gap-analyzer/internal/handlers"
	"gapscan/resume-gap-analyzer/internal/models"
	"gapscan/resume-gap-analyzer/internal/services"
)

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeJobText    string
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a PDF resume against a job description",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		zl := newLogger()
		defer zl.Sync()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		jobDescription, err := jobDescriptionInput()
		if err != nil {
			return err
		}

		llm, err := services.NewLLMClientFromConfig(ctx, cfg, zl)
		if err != nil {
			return err
		}
		analyzer := services.NewAnalyzerService(llm, zl)
		if err := analyzer.CheckCredential(); err != nil {
			return err
		}

		data, err := readInput(analyzeResumePath)
		if err != nil {
			return fmt.Errorf("reading resume: %w", err)
		}

		content, err := services.NewPDFParserService().ExtractTextWithMetaData(bytes.NewReader(data))
		if err != nil {
			return err
		}
		if strings.TrimSpace(content.Text) == "" {
			return models.ErrNoExtractableText
		}
		zl.Debug("📄 Resume extracted", zap.Int("pages", content.PageCount), zap.Int("text_pages", content.TextPages))

		input := handlers.AnalysisInput{ResumeText: content.Text, JobDescription: jobDescription}
		if err := handlers.ValidateAnalysisInput(validator.New(), input); err != nil {
			return err
		}

		result, err := analyzer.Analyze(ctx, input.ResumeText, input.JobDescription)
		if err != nil {
			return fmt.Errorf("Analysis failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if analyzeJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Fprintf(out, "Match: %d%%\nAssessment: %s\n\n%s\n", result.MatchPercentage, result.OverallAssessment, result.AIFullAnalysis)
		return nil
	},
}

func jobDescriptionInput() (string, error) {
	switch {
	case analyzeJobText != "" && analyzeJobPath != "":
		return "", errors.New("use either --job or --job-text, not both")
	case analyzeJobText != "":
		return analyzeJobText, nil
	case analyzeJobPath != "":
		data, err := readInput(analyzeJobPath)
		if err != nil {
			return "", fmt.Errorf("reading job description: %w", err)
		}
		return string(data), nil
	default:
		return "", errors.New("a job description is required (--job or --job-text)")
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "path to the PDF resume ('-' for stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "path to a text file with the job description")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "job description text")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the result as JSON")
	_ = analyzeCmd.MarkFlagRequired("resume")
}
