package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SendResult reports the outcome of a sendMessage call: the platform's HTTP
// status code verbatim and the "ok" flag from its response body.
type SendResult struct {
	Status int
	Ok     bool
}

// Sender delivers a composed reply to the chat platform.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyTo int64) (*SendResult, error)
}

// Client is a minimal Telegram Bot API client. It only ever POSTs
// sendMessage; delivery failures are reported, never retried.
type Client struct {
	apiURL string
	token  string
	http   *http.Client
}

// NewClient builds a Client against apiURL (e.g., https://api.telegram.org)
// with a 10 second request timeout.
func NewClient(apiURL, token string) *Client {
	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID           int64  `json:"chat_id"`
	Text             string `json:"text"`
	ReplyToMessageID int64  `json:"reply_to_message_id,omitempty"`
}

type sendMessageResponse struct {
	Ok bool `json:"ok"`
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, replyTo int64) (*SendResult, error) {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:           chatID,
		Text:             text,
		ReplyToMessageID: replyTo,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal sendMessage: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// A malformed body still leaves the status code usable.
	var body sendMessageResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return &SendResult{Status: resp.StatusCode, Ok: body.Ok}, nil
}
