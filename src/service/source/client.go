package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
	"quality-metrics/src/util"
)

// Client fetches structural models from a front-end service
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryConf  config.RetryConfig
}

// NewClient creates a new front-end client
func NewClient(cfg config.SourceConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryConf: cfg.Retry,
	}
}

// FetchModel retrieves the structural model of a project
func (c *Client) FetchModel(ctx context.Context, project string, includeSynthetic bool) (*model.Project, error) {
	util.Debug("Fetching structural model for project: %s", project)

	req := ModelRequest{
		Project:          project,
		IncludeBodies:    true,
		IncludeSynthetic: includeSynthetic,
	}

	var resp ModelResponse
	if err := c.post(ctx, "/api/v1/model", req, &resp); err != nil {
		util.Error("Model fetch failed: %v", err)
		return nil, err
	}

	for _, w := range resp.Warnings {
		util.Warn("Front-end warning: %s", w)
	}
	if resp.Project.Name == "" {
		resp.Project.Name = project
	}

	util.Debug("Fetched %d classes for %s", len(resp.Project.Classes), project)
	return &resp.Project, nil
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	var lastErr error

	for attempt := 0; attempt <= c.retryConf.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.calculateBackoff(attempt)
			util.Warn("Retrying request to %s (attempt %d/%d) after %v", path, attempt+1, c.retryConf.MaxAttempts+1, delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := c.doPost(ctx, path, body, result)
		if err == nil {
			return nil
		}

		lastErr = err
		if !c.shouldRetry(err) {
			break
		}
	}

	return lastErr
}

func (c *Client) doPost(ctx context.Context, path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	delay := float64(c.retryConf.InitialDelay)
	for i := 0; i < attempt; i++ {
		delay *= c.retryConf.BackoffFactor
	}
	if delay > float64(c.retryConf.MaxDelay) {
		delay = float64(c.retryConf.MaxDelay)
	}
	return time.Duration(delay)
}

func (c *Client) shouldRetry(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return slices.Contains(c.retryConf.RetryOnStatus, apiErr.StatusCode)
	}
	return false
}

// APIError represents an error response from the front-end
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("front-end error (status %d): %s", e.StatusCode, e.Body)
}
