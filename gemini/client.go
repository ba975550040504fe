package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// APIKeyEnvVar is the environment variable NewClientFromEnv reads.
	APIKeyEnvVar = "GEMINI_API_KEY"
)

// Client issues requests against the Gemini API. It holds no per-call state
// beyond the API key and base URL, so a single Client may be used from
// multiple goroutines.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	// Observability components, all optional
	logger  Logger
	metrics Metrics
	pricing Pricing
}

// NewClient creates a client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

// NewClientFromEnv creates a client from the GEMINI_API_KEY environment
// variable.
func NewClientFromEnv() (*Client, error) {
	apiKey := os.Getenv(APIKeyEnvVar)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %s is not set", APIKeyEnvVar)
	}
	return NewClient(apiKey), nil
}

// SetBaseURL sets a custom base URL (for testing).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SetHTTPClient replaces the underlying HTTP client. Use this to configure
// transport-level concerns such as timeouts or proxies; the per-call context
// remains the cancellation envelope.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetLogger sets the logger for this client.
func (c *Client) SetLogger(logger Logger) {
	c.logger = logger
}

// SetMetrics sets the metrics tracker for this client.
func (c *Client) SetMetrics(metrics Metrics) {
	c.metrics = metrics
}

// SetPricing sets the pricing calculator for this client.
func (c *Client) SetPricing(pricing Pricing) {
	c.pricing = pricing
}

// GenerateContent sends one generation request and returns the typed
// response. It makes exactly one HTTP attempt: transport failures, non-2xx
// statuses and unparseable bodies are returned as *Error values of the
// corresponding kind.
func (c *Client) GenerateContent(ctx context.Context, model string, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	start := time.Now()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: encode request: %w", err)
	}

	if c.logger != nil {
		c.logger.LogRequest(ctx, RequestLog{
			Model:        model,
			Timestamp:    start,
			Turns:        len(req.Contents),
			RequestBytes: len(body),
			APIKey:       c.apiKey,
		})
	}
	if c.metrics != nil {
		c.metrics.RecordRequest(model)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	raw, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		c.observeError(ctx, model, time.Since(start), err)
		return nil, err
	}

	var resp GenerateContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		decodeErr := NewDecodeError(raw, err)
		c.observeError(ctx, model, time.Since(start), decodeErr)
		return nil, decodeErr
	}

	c.observeResponse(ctx, model, time.Since(start), &resp)
	return &resp, nil
}

// do performs a single HTTP exchange and returns the response body. Non-2xx
// statuses become API errors, connection failures transport errors.
func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, NewTransportError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

func (c *Client) observeResponse(ctx context.Context, model string, duration time.Duration, resp *GenerateContentResponse) {
	var tokensIn, tokensOut int
	if resp.UsageMetadata != nil {
		tokensIn = resp.UsageMetadata.PromptTokenCount
		tokensOut = resp.UsageMetadata.CandidatesTokenCount
	}
	var finishReason string
	if len(resp.Candidates) > 0 {
		finishReason = resp.Candidates[0].FinishReason
	}

	var cost float64
	if c.pricing != nil {
		cost = c.pricing.GetCost(model, tokensIn, tokensOut)
	}

	if c.logger != nil {
		c.logger.LogResponse(ctx, ResponseLog{
			Model:        model,
			Timestamp:    time.Now(),
			Duration:     duration,
			TokensIn:     tokensIn,
			TokensOut:    tokensOut,
			Cost:         cost,
			StatusCode:   http.StatusOK,
			FinishReason: finishReason,
		})
	}
	if c.metrics != nil {
		c.metrics.RecordDuration(model, duration)
		c.metrics.RecordTokens(model, tokensIn, tokensOut)
		c.metrics.RecordCost(model, cost)
	}
}

func (c *Client) observeError(ctx context.Context, model string, duration time.Duration, err error) {
	var clientErr *Error
	if !errors.As(err, &clientErr) {
		return
	}
	if c.logger != nil {
		c.logger.LogError(ctx, ErrorLog{
			Model:      model,
			Timestamp:  time.Now(),
			Duration:   duration,
			Error:      err,
			Kind:       clientErr.Kind,
			StatusCode: clientErr.StatusCode,
			Retryable:  clientErr.Retryable(),
		})
	}
	if c.metrics != nil {
		c.metrics.RecordError(model, clientErr.Kind)
	}
}
