package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/milele-cleaning/milele/pkg/version"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// Client talks to the storefront backend.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a Client for baseURL. A nil httpClient gets a 15s
// timeout; a nil logger discards.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// SendQuote posts a quote request. Any 2xx is success; the body is not read.
func (c *Client) SendQuote(ctx context.Context, req QuoteRequest) error {
	resp, err := c.post(ctx, "send quote", PathSendQuote, req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return statusError("send quote", resp)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return nil
}

// Login exchanges credentials for tokens.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return c.auth(ctx, "login", PathLogin, req)
}

// Register creates an account and returns its tokens.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return c.auth(ctx, "register", PathRegister, req)
}

func (c *Client) auth(ctx context.Context, op, path string, body any) (*AuthResponse, error) {
	resp, err := c.post(ctx, op, path, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, statusError(op, resp)
	}

	var out AuthResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %s: decode body: %v", ErrInvalidResponse, op, err)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		return nil, fmt.Errorf("%w: %s: missing tokens", ErrInvalidResponse, op)
	}
	if len(out.User) == 0 {
		out.User = json.RawMessage("null")
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, op, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("api: %s: marshal body: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("api: %s: create request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", "op", op, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
	}
	c.logger.Debug("api request",
		"op", op,
		"request_id", requestID,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)
	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// statusError builds a StatusError, pulling the message out of a JSON
// failure body when one is present.
func statusError(op string, resp *http.Response) error {
	se := &StatusError{Op: op, Status: resp.StatusCode}
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err == nil {
		se.Message = body.Message
		if se.Message == "" {
			se.Message = body.Error
		}
	}
	return se
}
