package models

import "errors"

// Error kinds surfaced to API callers. Messages double as response details.
var (
	ErrMissingField         = errors.New("is required")
	ErrInvalidFileType      = errors.New("Only PDF files are supported")
	ErrMissingCredential    = errors.New("API key not configured")
	ErrExtractionFailure    = errors.New("Error extracting PDF")
	ErrNoExtractableText    = errors.New("No text could be extracted from PDF")
	ErrInputTooShort        = errors.New("too short")
	ErrLLMInvalidCredential = errors.New("Invalid API token")
	ErrLLMAllModelsFailed   = errors.New("All models failed")
	ErrLLMUnexpectedFailure = errors.New("unexpected LLM failure")
)

// IsClientError reports whether err should be answered with a 400.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidFileType) ||
		errors.Is(err, ErrExtractionFailure) ||
		errors.Is(err, ErrNoExtractableText) ||
		errors.Is(err, ErrInputTooShort)
}
