package wecom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single webhook call when none is configured.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a webhook reply is read.
const maxBodyBytes = 1 << 20

// Client posts JSON payloads to a group-bot webhook URL.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// NewClient creates a webhook client. A non-positive timeout uses DefaultTimeout.
func NewClient(webhookURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send marshals payload and POSTs it to the webhook. The returned error covers
// transport faults only: request build, network, timeout and replies that are
// not a JSON object. A decoded object is returned as-is; one without errcode
// comes back with MissingErrCode set and is not OK.
func (c *Client) Send(ctx context.Context, payload any) (APIResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return APIResponse{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return APIResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return APIResponse{}, fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return APIResponse{}, fmt.Errorf("failed to read webhook response: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return APIResponse{}, fmt.Errorf("failed to decode webhook response (status %d): %w", resp.StatusCode, ErrNotObject)
	}

	var reply struct {
		ErrCode *int   `json:"errcode"`
		ErrMsg  string `json:"errmsg"`
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return APIResponse{}, fmt.Errorf("failed to decode webhook response (status %d): %w", resp.StatusCode, err)
	}
	if reply.ErrCode == nil {
		return APIResponse{
			ErrMsg:         fmt.Sprintf("webhook response has no errcode (status %d)", resp.StatusCode),
			MissingErrCode: true,
		}, nil
	}
	return APIResponse{ErrCode: *reply.ErrCode, ErrMsg: reply.ErrMsg}, nil
}
