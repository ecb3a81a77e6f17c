// Package classify wraps the external emotion-classification call. It sends
// the diary text to an OpenAI-compatible chat completions endpoint and
// parses the free-form reply into an emotion label and an advisory message.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mongle/monglectl/internal/entry"
)

const defaultBaseURL = "https://api.openai.com/v1"

// systemPrompt constrains the reply to name one of the five emotions and
// follow it with a supportive message in Korean.
const systemPrompt = "Analyze the emotion of the following diary entry and respond with the emotion in English (fear, anger, joy, sadness, disgust). Then provide a supportive message based on the diary entry in Korean."

// ErrClassification marks any terminal failure of a model call, whether for
// classification or chat: transport errors, non-retryable API errors,
// malformed responses, or an exhausted retry budget. Callers show a fallback
// message and must not retry further.
var ErrClassification = errors.New("classification failed")

// errRateLimited distinguishes a 429 reply, the only error class that
// triggers a retry.
var errRateLimited = errors.New("rate limited")

var (
	emotionToken = regexp.MustCompile(`(?i)(fear|anger|joy|sadness|disgust)`)
	labelPrefix  = regexp.MustCompile(`(?i).*?(fear|anger|joy|sadness|disgust):?\s*`)
	messageLabel = regexp.MustCompile(`Supportive message:\s*`)
)

// Result is a parsed classification outcome.
type Result struct {
	Emotion entry.Emotion
	Message string
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	Model      string
	MaxRetries int           // retries after the first attempt; default 3
	RetryDelay time.Duration // delay between attempts; default 1s
	HTTPClient *http.Client
}

// Client calls the emotion-classification service.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
}

// New creates a classification client. The API key must come from the
// environment or a secret store; it is never read from files in this package.
func New(apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("classification API key not set")
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		model:      opts.Model,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		httpClient: opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = "gpt-3.5-turbo"
	}
	if c.maxRetries == 0 {
		c.maxRetries = 3
	}
	if c.retryDelay == 0 {
		c.retryDelay = time.Second
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return c, nil
}

// Classify sends the diary text for classification. Rate-limited replies are
// retried up to the configured budget with a fixed delay; any other failure
// is terminal. The returned label is always one of the five emotions or the
// unknown sentinel.
func (c *Client) Classify(ctx context.Context, text string) (Result, error) {
	if err := entry.ValidateText(text); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrClassification, err)
	}

	raw, err := c.complete(ctx, []apiMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: text},
	})
	if err != nil {
		return Result{}, err
	}
	return Parse(raw), nil
}

// Chat sends a free-form message without the classification system prompt
// and returns the model reply verbatim. Each call is a single stateless
// request; the same rate-limit retry policy as Classify applies.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	if err := entry.ValidateText(message); err != nil {
		return "", fmt.Errorf("%w: %v", ErrClassification, err)
	}
	return c.complete(ctx, []apiMessage{
		{Role: "user", Content: message},
	})
}

// complete runs one chat-completions exchange, retrying rate-limited
// replies up to the configured budget with a fixed delay.
func (c *Client) complete(ctx context.Context, messages []apiMessage) (string, error) {
	for attempt := 0; ; attempt++ {
		raw, err := c.callAPI(ctx, messages)
		if err == nil {
			return raw, nil
		}
		if !errors.Is(err, errRateLimited) || attempt >= c.maxRetries {
			return "", fmt.Errorf("%w: %v", ErrClassification, err)
		}
		select {
		case <-time.After(c.retryDelay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", ErrClassification, ctx.Err())
		}
	}
}

type apiRequest struct {
	Model    string       `json:"model"`
	Messages []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) callAPI(ctx context.Context, messages []apiMessage) (string, error) {
	reqBody := apiRequest{
		Model:    c.model,
		Messages: messages,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", errRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if apiResp.Error != nil {
		return "", fmt.Errorf("api error: %s", apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return apiResp.Choices[0].Message.Content, nil
}

// Parse scans the raw model reply for one of the five emotion tokens,
// case-insensitively. When none is found the label is the unknown sentinel.
// The advisory message is the reply with the leading label text stripped.
func Parse(raw string) Result {
	emotion := entry.Unknown
	if m := emotionToken.FindString(raw); m != "" {
		emotion = entry.Emotion(strings.ToLower(m))
	}

	message := replaceFirst(labelPrefix, raw)
	message = replaceFirst(messageLabel, message)
	message = strings.TrimSpace(message)

	return Result{Emotion: emotion, Message: message}
}

// replaceFirst removes only the first match of re, leaving later
// occurrences of the emotion words inside the message intact.
func replaceFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
