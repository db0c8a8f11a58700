package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"gapscan/resume-gap-analyzer/internal/models"
)

type geminiService struct {
	client  *genai.Client
	timeout time.Duration
}

// NewGeminiService builds a ChatCompleter on the Gemini API. An empty key yields a
// completer without credential so the API layer can report it.
func NewGeminiService(ctx context.Context, apiKey string, timeout time.Duration) (ChatCompleter, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return &geminiService{timeout: timeout}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:  client,
		timeout: timeout,
	}, nil
}

func (g *geminiService) Provider() string {
	return "Gemini"
}

func (g *geminiService) HasCredential() bool {
	return g.client != nil
}

// Complete implements ChatCompleter.
func (g *geminiService) Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("Gemini %w", models.ErrMissingCredential)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	temperature := float32(samplingTemperature)
	topP := float32(samplingTopP)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temperature,
		TopP:              &topP,
		MaxOutputTokens:   samplingMaxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(userPrompt), config)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if resp == nil {
		return "", errors.New("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("no text content in response")
	}

	return text, nil
}

// classifyGeminiError marks credential rejections so the fallback loop stops on them.
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return fmt.Errorf("failed to generate text: %w", err)
	}

	if apiErr.Code == http.StatusUnauthorized ||
		strings.Contains(strings.ToLower(apiErr.Message), "api key not valid") {
		return fmt.Errorf("%w: %s", models.ErrLLMInvalidCredential, apiErr.Message)
	}

	return fmt.Errorf("failed to generate text: %w", err)
}
