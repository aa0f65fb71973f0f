// Package openrouter implements the upstream chat-completion client used for
// grammatical analysis. The upstream model is treated as an untyped oracle:
// given a prompt it returns free-form text, which callers parse themselves.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/dutchhelper-backend/internal/config"
	"github.com/heartmarshall/dutchhelper-backend/internal/domain"
)

var upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dutchhelper_upstream_requests_total",
	Help: "Chat-completion requests by outcome (ok, http_error, transport_error).",
}, []string{"outcome"})

// Client calls the OpenRouter chat-completion API.
type Client struct {
	cfg        config.LLMConfig
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from LLM configuration. The HTTP client carries
// an explicit timeout so a stuck upstream cannot hold a request forever.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "openrouter"),
	}
}

// Complete sends one prompt as a single user message and returns the raw
// reply text (choices[0].message.content).
//
// A missing API key fails immediately with domain.ErrConfiguration; no
// request is made. Transport errors and non-200 statuses fail with
// domain.ErrProcessing. There are no retries: each sentence gets exactly
// one upstream call.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("openrouter: %w: OPENROUTER_API_KEY is not set", domain.ErrConfiguration)
	}

	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("openrouter: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openrouter: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	// OpenRouter app attribution headers.
	req.Header.Set("HTTP-Referer", c.cfg.HTTPReferer)
	req.Header.Set("X-Title", c.cfg.AppTitle)

	c.log.DebugContext(ctx, "chat completion request", slog.String("model", c.cfg.Model))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues("transport_error").Inc()
		c.log.ErrorContext(ctx, "chat completion request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("openrouter: %w: request failed: %v", domain.ErrProcessing, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		upstreamRequests.WithLabelValues("http_error").Inc()
		c.log.ErrorContext(ctx, "chat completion api error", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("openrouter: %w: api status %d", domain.ErrProcessing, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamRequests.WithLabelValues("transport_error").Inc()
		return "", fmt.Errorf("openrouter: %w: read body: %v", domain.ErrProcessing, err)
	}

	var envelope chatResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		upstreamRequests.WithLabelValues("transport_error").Inc()
		return "", fmt.Errorf("openrouter: %w: decode envelope: %v", domain.ErrProcessing, err)
	}
	if len(envelope.Choices) == 0 {
		upstreamRequests.WithLabelValues("transport_error").Inc()
		return "", fmt.Errorf("openrouter: %w: response has no choices", domain.ErrProcessing)
	}

	upstreamRequests.WithLabelValues("ok").Inc()
	content := envelope.Choices[0].Message.Content
	c.log.DebugContext(ctx, "chat completion response",
		slog.Int("status", resp.StatusCode),
		slog.Int("content_len", len(content)),
	)

	return content, nil
}
