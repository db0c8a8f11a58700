package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/logger"
	"gapscan/resume-gap-analyzer/internal/models"
)

// minCompletionChars is the length a completion must exceed to count as an answer.
const minCompletionChars = 100

// Sampling parameters shared by every provider and attempt.
const (
	samplingTemperature = 0.2
	samplingTopP        = 0.9
	samplingMaxTokens   = 1500
)

// ChatCompleter sends one system/user prompt pair to a single model.
// Implementations wrap models.ErrLLMInvalidCredential when the provider rejects the credential.
type ChatCompleter interface {
	Provider() string
	HasCredential() bool
	Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}

type LLMClient interface {
	CheckCredential() error
	Complete(ctx context.Context, resumeText, jobDescription string) (string, error)
}

type attemptOutcome int

const (
	outcomeSuccess attemptOutcome = iota
	outcomeSoftFailure
	outcomeFatal
)

func (o attemptOutcome) String() string {
	switch o {
	case outcomeSuccess:
		return "success"
	case outcomeFatal:
		return "fatal"
	default:
		return "soft_failure"
	}
}

// classifyAttempt decides what a single model attempt means for the fallback loop.
func classifyAttempt(completion string, err error) attemptOutcome {
	if err != nil {
		if errors.Is(err, models.ErrLLMInvalidCredential) {
			return outcomeFatal
		}
		return outcomeSoftFailure
	}
	if utf8.RuneCountInString(completion) > minCompletionChars {
		return outcomeSuccess
	}
	return outcomeSoftFailure
}

type llmClient struct {
	completer     ChatCompleter
	models        []string
	promptBuilder *PromptBuilder
	log           *zap.Logger
}

func NewLLMClient(completer ChatCompleter, modelNames []string, log *zap.Logger) LLMClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &llmClient{
		completer:     completer,
		models:        modelNames,
		promptBuilder: NewPromptBuilder(),
		log:           log,
	}
}

func (c *llmClient) CheckCredential() error {
	if c.completer == nil || !c.completer.HasCredential() {
		provider := "LLM"
		if c.completer != nil {
			provider = c.completer.Provider()
		}
		return fmt.Errorf("%s %w", provider, models.ErrMissingCredential)
	}
	return nil
}

// Complete tries each model in order until one produces a usable completion.
// A rejected credential stops the loop; every other failure moves to the next model.
func (c *llmClient) Complete(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if err := c.CheckCredential(); err != nil {
		return "", err
	}

	systemPrompt, userPrompt := c.promptBuilder.BuildAnalysisPrompt(resumeText, jobDescription)
	provider := c.completer.Provider()

	for i, model := range c.models {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", models.ErrLLMUnexpectedFailure, err)
		}

		c.log.Info("🤖 Trying model",
			zap.String("provider", provider),
			zap.String("model", model),
			zap.Int("attempt", i+1),
			zap.Int("total_models", len(c.models)))

		completion, err := c.completer.Complete(ctx, model, systemPrompt, userPrompt)
		outcome := classifyAttempt(completion, err)
		llmAttemptsTotal.WithLabelValues(provider, model, outcome.String()).Inc()

		switch outcome {
		case outcomeSuccess:
			c.log.Info("✅ Model produced analysis",
				zap.String("model", model),
				zap.Int("characters", utf8.RuneCountInString(completion)))
			return completion, nil
		case outcomeFatal:
			c.log.Error("❌ Credential rejected, stopping", zap.String("model", model), zap.Error(err))
			return "", models.ErrLLMInvalidCredential
		default:
			c.log.Warn("⚠️  Model attempt failed, trying next",
				zap.String("model", model),
				zap.Error(err),
				zap.String("completion", logger.Truncate(completion, 120)))
		}
	}

	return "", models.ErrLLMAllModelsFailed
}
