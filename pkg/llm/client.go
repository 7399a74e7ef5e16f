// Package llm wraps the Anthropic API behind the narrow completion surface
// the extraction and synthesis steps consume.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cenkalti/backoff/v4"

	"github.com/kurt-labs/kurt/pkg/config"
)

// errAPIKeyRequired is returned when an API key is needed but not provided.
var errAPIKeyRequired = errors.New("API key required")

// Client is the completion facade. Model selection happens per call so steps
// can carry their own overrides.
type Client struct {
	client       anthropic.Client
	defaultModel string
	maxTokens    int
	timeout      time.Duration
	maxRetries   uint64
}

// New creates a client from config. Env var ANTHROPIC_API_KEY takes
// precedence over the configured key.
func New(cfg config.LLMConfig) (*Client, error) {
	apiKey := cfg.APIKey
	if envKey := os.Getenv("ANTHROPIC_API_KEY"); envKey != "" {
		apiKey = envKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY or llm.api_key in kurt.toml", errAPIKeyRequired)
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 8192
	}

	return &Client{
		client:       anthropic.NewClient(option.WithAPIKey(apiKey)),
		defaultModel: cfg.DefaultModel,
		maxTokens:    maxTokens,
		timeout:      cfg.TimeoutDuration(),
		maxRetries:   3,
	}, nil
}

// DefaultModel returns the configured default model identifier.
func (c *Client) DefaultModel() string { return c.defaultModel }

// Complete sends one user prompt and returns the text of the response.
// Transient API failures are retried with exponential backoff.
func (c *Client) Complete(ctx context.Context, model, system, prompt string) (string, error) {
	if model == "" {
		model = c.defaultModel
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	var out string
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		message, err := c.client.Messages.New(callCtx, params)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		if len(message.Content) == 0 {
			return backoff.Permanent(fmt.Errorf("model %s returned empty response", model))
		}
		out = message.Content[0].Text
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("llm completion (%s): %w", model, err)
	}
	return out, nil
}

// StripFences removes a surrounding markdown code fence from a model reply,
// tolerating a language tag on the opening fence.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop a language tag like "json".
		first := strings.TrimSpace(s[:idx])
		if len(first) <= 10 && !strings.ContainsAny(first, "{[") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
