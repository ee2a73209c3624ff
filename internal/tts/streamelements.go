package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

const streamElementsAPIURL = "https://api.streamelements.com/kappa/v2/speech"

// StreamElementsClient implements the Client interface using the free,
// unauthenticated StreamElements speech API.
type StreamElementsClient struct {
	voice      string
	baseURL    string
	limiter    *rate.Limiter
	httpClient *http.Client
}

// StreamElementsConfig holds configuration for the StreamElements client.
type StreamElementsConfig struct {
	Voice      string // e.g., "Brian"
	BaseURL    string // Override for tests; empty means the real API
	HTTPClient *http.Client
}

// NewStreamElementsClient creates a new StreamElements client.
func NewStreamElementsClient(cfg StreamElementsConfig) *StreamElementsClient {
	voice := cfg.Voice
	if voice == "" {
		voice = "Brian" // Natural sounding default voice
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = streamElementsAPIURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &StreamElementsClient{
		voice:   voice,
		baseURL: baseURL,
		// The endpoint is a shared public service; keep request rate modest.
		limiter:    rate.NewLimiter(rate.Limit(5), 10),
		httpClient: httpClient,
	}
}

// Synthesize converts text to speech via the free API and returns audio data.
func (c *StreamElementsClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("voice", c.voice)
	params.Set("text", text)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("StreamElements API error: %s - %s", resp.Status, string(respBody))
	}

	return io.ReadAll(resp.Body)
}
