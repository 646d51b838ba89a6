// Package llm adapts a hosted OpenAI-compatible chat-completion endpoint
// (the Hugging Face router) for insight generation.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrUnavailable indicates no API token is configured.
	ErrUnavailable = errors.New("chat model unavailable")
	// ErrRequest indicates the completion request failed.
	ErrRequest = errors.New("chat completion request failed")
	// ErrEmptyResponse indicates the endpoint replied without any choices.
	ErrEmptyResponse = errors.New("chat completion returned no choices")
)

// requestTimeout bounds a single completion call. There are no retries;
// a call is attempted at most once.
const requestTimeout = 30 * time.Second

// ChatModel sends a single user prompt to a chat-completion endpoint and
// returns the reply text.
type ChatModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RouterClient implements ChatModel against the Hugging Face router.
type RouterClient struct {
	client openai.Client
	model  string
}

// NewRouterClient creates a client for the given router base URL.
// Returns nil if token is empty.
func NewRouterClient(token, model, baseURL string) *RouterClient {
	if token == "" {
		return nil
	}

	client := openai.NewClient(
		option.WithAPIKey(token),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(requestTimeout),
		option.WithMaxRetries(0),
	)

	return &RouterClient{
		client: client,
		model:  model,
	}
}

// Complete sends one user message and returns the first choice's content.
// All failure paths log a diagnostic and return a wrapped sentinel; the
// caller never sees the underlying transport error directly.
func (c *RouterClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		log.Println("[llm] missing API token (HF_API_TOKEN or HF_TOKEN)")
		return "", ErrUnavailable
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			log.Printf("[llm] router error (status %d): %s", apierr.StatusCode, apierr.Message)
		} else {
			log.Printf("[llm] error calling chat endpoint: %v", err)
		}
		return "", fmt.Errorf("%w: %v", ErrRequest, err)
	}

	if len(resp.Choices) == 0 {
		log.Printf("[llm] empty choices from model %s", c.model)
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
