package handlers

import (
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/models"
	"gapscan/resume-gap-analyzer/internal/services"
)

const previewChars = 1000

type ExtractHandler struct {
	pdfParser services.PDFParserService
	log       *zap.Logger
}

func NewExtractHandler(pdfParser services.PDFParserService, log *zap.Logger) *ExtractHandler {
	return &ExtractHandler{
		pdfParser: pdfParser,
		log:       log,
	}
}

// HandleExtractText handles POST /extract-text
func (h *ExtractHandler) HandleExtractText(c *fiber.Ctx) error {
	file, err := resumeUpload(c)
	if err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to open uploaded file")
	}
	defer src.Close()

	text, err := h.pdfParser.ExtractText(src)
	if err != nil {
		return err
	}

	h.log.Debug("📄 Extracted resume text",
		zap.String("filename", file.Filename),
		zap.Int("characters", utf8.RuneCountInString(text)))

	return c.JSON(BuildExtractTextResponse(text))
}

// BuildExtractTextResponse computes the preview and statistics for extracted text.
func BuildExtractTextResponse(text string) models.ExtractTextResponse {
	return models.ExtractTextResponse{
		Text:    text,
		Preview: Preview(text, previewChars),
		Stats: models.TextStats{
			Characters: utf8.RuneCountInString(text),
			Words:      len(strings.Fields(text)),
			Lines:      len(strings.Split(text, "\n")),
		},
	}
}

// Preview returns the first n characters of text, with "..." appended when text is longer.
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n]) + "..."
}
