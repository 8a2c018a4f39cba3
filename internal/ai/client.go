package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	model          = "gpt-3.5-turbo"
	maxTokens      = 300
	temperature    = 0.7

	systemPrompt = "You are the user's private diary companion. Respond gently and honestly, in a calm and supportive tone."
)

// ErrorKind classifies a failed completion call. The set is closed so callers
// can branch exhaustively instead of matching message substrings.
type ErrorKind int

const (
	// KindInvalidKey means the upstream rejected the supplied API key.
	KindInvalidKey ErrorKind = iota
	// KindQuotaExceeded means the upstream reported rate or billing exhaustion.
	KindQuotaExceeded
	// KindUpstreamUnavailable means the upstream returned a 5xx-class failure.
	KindUpstreamUnavailable
	// KindNetwork means the upstream could not be reached at all.
	KindNetwork
	// KindEmptyResponse means the call succeeded but produced no usable text.
	KindEmptyResponse
	// KindUnknownUpstream is the catch-all for anything else.
	KindUnknownUpstream
)

// String names the kind for log diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidKey:
		return "invalid_key"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindNetwork:
		return "network"
	case KindEmptyResponse:
		return "empty_response"
	default:
		return "unknown_upstream"
	}
}

// Error is a classified completion failure. Message is safe to show to the
// end user; raw upstream bodies are never carried through.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Client calls the OpenAI chat-completions endpoint with a fixed diary
// companion persona. The API key is supplied by the caller per request and is
// never stored on the client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a completion client. An empty baseURL selects the public
// OpenAI endpoint; tests point it at a local server.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateReply requests one supportive reply for the given entry content.
// No retries are performed; every failure is returned as a classified *Error.
func (c *Client) GenerateReply(ctx context.Context, content, apiKey string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", newError(KindInvalidKey, "Invalid OpenAI API key. Please check your API key and try again.")
	}

	payload, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: content},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// DNS, connect and timeout failures all land here.
		return "", newError(KindNetwork, "Network error. Please check your internet connection.")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", newError(KindInvalidKey, "Invalid OpenAI API key. Please check your API key and try again.")
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", newError(KindQuotaExceeded, "OpenAI API quota exceeded. Please check your billing details and try again.")
	case resp.StatusCode >= 500:
		return "", newError(KindUpstreamUnavailable, "OpenAI service temporarily unavailable. Please try again later.")
	case resp.StatusCode != http.StatusOK:
		return "", newError(KindUnknownUpstream, "Unable to generate AI response. Please try again.")
	}

	var body chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", newError(KindUnknownUpstream, "Unable to generate AI response. Please try again.")
	}

	if len(body.Choices) == 0 {
		return "", newError(KindEmptyResponse, "No response generated from OpenAI.")
	}
	reply := strings.TrimSpace(body.Choices[0].Message.Content)
	if reply == "" {
		return "", newError(KindEmptyResponse, "No response generated from OpenAI.")
	}
	return reply, nil
}
