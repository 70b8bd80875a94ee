package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	datamuseAPIURL  = "https://api.datamuse.com/words"
	datamuseTimeout = 30 * time.Second
)

// Client queries the Datamuse API. Datamuse is unauthenticated, so the client
// carries its own rate limiter and a circuit breaker that trips after
// consecutive failures instead of hammering the service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	rateLimit  *rateLimiter
	breaker    *gobreaker.CircuitBreaker
}

// SearchOptions configures a synonym lookup
type SearchOptions struct {
	MinScore   int // Keep candidates scoring strictly above this
	MaxResults int // Cap on returned candidates (0 means no cap)
}

// DefaultSearchOptions returns the thresholds used for chatbot vocabulary
// curation.
func DefaultSearchOptions() *SearchOptions {
	return &SearchOptions{
		MinScore:   500,
		MaxResults: 10,
	}
}

// datamuseWord represents a single entry in the API response
type datamuseWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// APIError represents a non-2xx response from the Datamuse API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("datamuse: %s (status %d)", e.Message, e.StatusCode)
}

// NewClient creates a new Datamuse API client
func NewClient() *Client {
	return &Client{
		baseURL: datamuseAPIURL,
		httpClient: &http.Client{
			Timeout: datamuseTimeout,
		},
		rateLimit: newRateLimiter(100), // 100 requests per minute
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "datamuse",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
// Tests use it to point the client at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Synonyms fetches synonym candidates for word, keeping entries that score
// above opts.MinScore and at most opts.MaxResults of them, in API order.
func (c *Client) Synonyms(ctx context.Context, word string, opts *SearchOptions) ([]string, error) {
	if opts == nil {
		opts = DefaultSearchOptions()
	}

	// Apply rate limiting
	c.rateLimit.wait()

	params := url.Values{}
	params.Set("rel_syn", word)
	reqURL := c.baseURL + "?" + params.Encode()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		entries, err := c.fetch(ctx, reqURL)
		if err != nil {
			return nil, err
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	var synonyms []string
	for _, entry := range result.([]datamuseWord) {
		if entry.Score <= opts.MinScore {
			continue
		}
		synonyms = append(synonyms, entry.Word)
		if opts.MaxResults > 0 && len(synonyms) == opts.MaxResults {
			break
		}
	}
	return synonyms, nil
}

func (c *Client) fetch(ctx context.Context, reqURL string) ([]datamuseWord, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var entries []datamuseWord
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return entries, nil
}

// rateLimiter implements simple per-minute rate limiting
type rateLimiter struct {
	requestsPerMinute int
	requests          []time.Time
}

func newRateLimiter(rpm int) *rateLimiter {
	return &rateLimiter{
		requestsPerMinute: rpm,
		requests:          make([]time.Time, 0, rpm),
	}
}

func (rl *rateLimiter) wait() {
	now := time.Now()

	// Drop requests older than one minute
	cutoff := now.Add(-1 * time.Minute)
	i := 0
	for i < len(rl.requests) && rl.requests[i].Before(cutoff) {
		i++
	}
	rl.requests = rl.requests[i:]

	// If we're at the limit, wait until the oldest request ages out
	if len(rl.requests) >= rl.requestsPerMinute {
		oldest := rl.requests[0]
		waitDuration := oldest.Add(1 * time.Minute).Sub(now)
		if waitDuration > 0 {
			time.Sleep(waitDuration)
		}
	}

	rl.requests = append(rl.requests, now)
}
