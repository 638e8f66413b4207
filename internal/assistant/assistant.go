// Package assistant forwards visitor questions, together with a fixed context
// block per page, to a hosted language model. No history is kept between
// requests and answers are never cached.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var (
	// ErrEmptyQuestion is returned before any model call is made.
	ErrEmptyQuestion = errors.New("assistant: empty question")
	// ErrUnknownTopic is returned for topics without a context block.
	ErrUnknownTopic = errors.New("assistant: unknown topic")
)

// Completer produces one answer for one prompt. Implemented by the Gemini
// client; tests substitute a fake.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// GeminiCompleter calls the Gemini API through the official SDK.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter creates the API client. The key is read from
// configuration, never hard-coded.
func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	if apiKey == "" {
		return nil, errors.New("assistant: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("assistant: create client: %w", err)
	}
	return &GeminiCompleter{client: client, model: model}, nil
}

func (c *GeminiCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("assistant: generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("assistant: empty response")
	}
	return text, nil
}

// Assistant validates questions locally and delegates the rest to a Completer.
type Assistant struct {
	completer Completer
	timeout   time.Duration
	logger    *zap.Logger
}

func New(completer Completer, timeout time.Duration, logger *zap.Logger) *Assistant {
	return &Assistant{completer: completer, timeout: timeout, logger: logger}
}

// Ask answers one question about the given topic. Empty questions and unknown
// topics are rejected without contacting the model. Upstream failures are
// returned to the caller; there is no retry.
func (a *Assistant) Ask(ctx context.Context, topic, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}
	block, ok := contextFor(topic)
	if !ok {
		return "", ErrUnknownTopic
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", block, question)

	start := time.Now()
	answer, err := a.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		a.logger.Warn("assistant request failed",
			zap.String("topic", topic), zap.Error(err))
		return "", err
	}
	a.logger.Info("assistant answered",
		zap.String("topic", topic),
		zap.Duration("took", time.Since(start)))
	return answer, nil
}
