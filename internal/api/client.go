package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client issues the four session operations against the inference
// service. It is stateless: every call is a single atomic exchange and
// results are handed back to the caller untouched. Calls are never
// retried; the session store decides what a failure means.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the service at baseURL. A nil
// httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

// CreateSession starts a new assessment session and returns the
// server-assigned session id.
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	body, err := c.exchange(ctx, "create", http.MethodPost, c.baseURL+"/sessions", []byte("{}"))
	if err != nil {
		return "", err
	}

	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &InvalidResponseError{Content: body, Err: err}
	}
	if resp.SessionID == "" {
		return "", &InvalidResponseError{Content: body, Err: fmt.Errorf("missing session_id")}
	}
	return resp.SessionID, nil
}

// FetchStatus returns the current question or diagnosis for the
// session. The payload is validated against the status schema before
// decoding so a malformed service response never reaches the store.
func (c *Client) FetchStatus(ctx context.Context, sessionID string) (*Status, error) {
	url := fmt.Sprintf("%s/sessions/%s/status", c.baseURL, sessionID)
	body, err := c.exchange(ctx, "status", http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if err := validateStatus(body); err != nil {
		return nil, err
	}

	var status Status
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, &InvalidResponseError{Content: body, Err: err}
	}
	return &status, nil
}

// SubmitAnswer records an answer for the session's current question.
// It does not advance state; the caller must follow with FetchStatus.
func (c *Client) SubmitAnswer(ctx context.Context, sessionID string, answer AnswerPayload) error {
	payload, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("marshal answer: %w", err)
	}

	url := fmt.Sprintf("%s/sessions/%s/answer", c.baseURL, sessionID)
	_, err = c.exchange(ctx, "answer", http.MethodPost, url, payload)
	return err
}

// DeleteSession discards the session server-side. Best effort: callers
// resetting a session ignore the returned error.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	url := fmt.Sprintf("%s/sessions/%s", c.baseURL, sessionID)
	_, err := c.exchange(ctx, "delete", http.MethodDelete, url, nil)
	return err
}

// exchange performs one HTTP round trip and returns the response body.
// Any transport failure or non-2xx status becomes a *NetworkError.
func (c *Client) exchange(ctx context.Context, op, method, url string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &NetworkError{Op: op, URL: url, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: op, URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{Op: op, URL: url, StatusCode: resp.StatusCode}
	}

	return body, nil
}
