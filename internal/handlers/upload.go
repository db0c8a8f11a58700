package handlers

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"gapscan/resume-gap-analyzer/internal/models"
)

const (
	resumeFileField     = "resume_file"
	jobDescriptionField = "job_description"
	pdfContentType      = "application/pdf"
)

// resumeUpload returns the uploaded resume after checking its declared content type.
// The file body is not inspected here.
func resumeUpload(c *fiber.Ctx) (*multipart.FileHeader, error) {
	file, err := c.FormFile(resumeFileField)
	if err != nil {
		return nil, fmt.Errorf("%s %w", resumeFileField, models.ErrMissingField)
	}

	if file.Header.Get(fiber.HeaderContentType) != pdfContentType {
		return nil, models.ErrInvalidFileType
	}

	return file, nil
}
