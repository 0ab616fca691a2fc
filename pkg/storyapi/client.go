package storyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/killallgit/storychat/pkg/chat"
	"github.com/killallgit/storychat/pkg/logger"
)

// ErrRequestFailed covers every way an outbound call can fail: transport
// errors, non-2xx statuses and bodies that do not decode into a reply.
var ErrRequestFailed = errors.New("chat request failed")

// Sender sends one user message and returns the backend's reply.
type Sender interface {
	Send(ctx context.Context, message string) (chat.Reply, error)
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client posting to endpoint. A zero timeout leaves
// calls unbounded.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithHTTP lets callers supply their own http.Client
func NewClientWithHTTP(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Send(ctx context.Context, message string) (chat.Reply, error) {
	log := logger.WithComponent("storyapi")

	reqBody, err := json.Marshal(ChatRequest{Message: message})
	if err != nil {
		return chat.Reply{}, fmt.Errorf("%w: failed to marshal request: %v", ErrRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return chat.Reply{}, fmt.Errorf("%w: failed to create request: %v", ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return chat.Reply{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return chat.Reply{}, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, bytes.TrimSpace(body))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return chat.Reply{}, fmt.Errorf("%w: failed to decode response: %v", ErrRequestFailed, err)
	}
	if chatResp.Message == nil {
		return chat.Reply{}, fmt.Errorf("%w: response has no message field", ErrRequestFailed)
	}

	if chatResp.Relevant != nil {
		log.Debug("reply relevant=%t", *chatResp.Relevant)
	}
	log.Debug("reply received in %s (image=%t)", time.Since(start).Round(time.Millisecond), chatResp.ImageURL != "")

	return chat.Reply{
		Text:     *chatResp.Message,
		ImageURL: chatResp.ImageURL,
	}, nil
}
