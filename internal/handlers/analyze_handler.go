package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/models"
	"gapscan/resume-gap-analyzer/internal/services"
)

// AnalysisInput carries the texts checked before any model call.
type AnalysisInput struct {
	ResumeText     string `validate:"min=50"`
	JobDescription string `validate:"min=50"`
}

var inputLabels = map[string]string{
	"ResumeText":     "Resume text",
	"JobDescription": "Job description",
}

// ValidateAnalysisInput returns ErrInputTooShort naming the first field under the minimum.
func ValidateAnalysisInput(v *validator.Validate, in AnalysisInput) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%s %w", inputLabels[verrs[0].StructField()], models.ErrInputTooShort)
	}
	return err
}

type AnalyzeHandler struct {
	pdfParser services.PDFParserService
	analyzer  services.AnalyzerService
	validate  *validator.Validate
	log       *zap.Logger
}

func NewAnalyzeHandler(
	pdfParser services.PDFParserService,
	analyzer services.AnalyzerService,
	log *zap.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		pdfParser: pdfParser,
		analyzer:  analyzer,
		validate:  validator.New(),
		log:       log,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := resumeUpload(c)
	if err != nil {
		return err
	}

	if err := h.analyzer.CheckCredential(); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to open uploaded file")
	}
	defer src.Close()

	resumeText, err := h.pdfParser.ExtractText(src)
	if err != nil {
		return err
	}
	if strings.TrimSpace(resumeText) == "" {
		return models.ErrNoExtractableText
	}

	input := AnalysisInput{
		ResumeText:     resumeText,
		JobDescription: c.FormValue(jobDescriptionField),
	}
	if err := ValidateAnalysisInput(h.validate, input); err != nil {
		return err
	}

	h.log.Info("📄 Resume accepted for analysis",
		zap.String("filename", file.Filename),
		zap.String("request_id", requestID(c)))

	result, err := h.analyzer.Analyze(c.UserContext(), input.ResumeText, input.JobDescription)
	if err != nil {
		return fmt.Errorf("Analysis failed: %w", err)
	}

	return c.JSON(result)
}
