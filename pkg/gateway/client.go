package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// Client issues single authenticated requests against the Razorpay API.
// No retries and no pagination traversal happen here; one call in, one
// decoded object or typed error out.
type Client struct {
	baseURL string
	creds   *models.Credentials
	doer    protocol.Doer
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the gateway host, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithDoer injects the host's HTTP transport.
func WithDoer(doer protocol.Doer) Option {
	return func(c *Client) {
		if doer != nil {
			c.doer = doer
		}
	}
}

// WithLogger attaches a logger for request-level debug lines.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a client bound to one credential pair.
func NewClient(creds *models.Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		creds:   creds,
		doer:    &http.Client{},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get issues one GET request. pathAndQuery already carries the assembled
// query string.
func (c *Client) Get(ctx context.Context, pathAndQuery string) (map[string]any, error) {
	return c.roundTrip(ctx, http.MethodGet, pathAndQuery, nil)
}

// Post issues one POST request with a JSON body. A nil body sends an
// empty request with the JSON content type still set.
func (c *Client) Post(ctx context.Context, pathAndQuery string, body map[string]any) (map[string]any, error) {
	return c.roundTrip(ctx, http.MethodPost, pathAndQuery, body)
}

func (c *Client) roundTrip(ctx context.Context, method, pathAndQuery string, body map[string]any) (map[string]any, error) {
	if c.creds == nil || c.creds.KeyID == "" || c.creds.KeySecret == "" {
		return nil, errors.New("missing credentials: key id and key secret are required")
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+pathAndQuery, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.SetBasicAuth(c.creds.KeyID, c.creds.KeySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent())

	c.logger.Debug("Calling Razorpay API", "method", method, "path", pathAndQuery)

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, respBody)
	}

	result := make(map[string]any)
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &result); err != nil {
			return nil, fmt.Errorf("error decoding json response: %w", err)
		}
	}

	return result, nil
}

func decodeError(statusCode int, body []byte) *GatewayError {
	var envelope errorResponse

	if err := json.Unmarshal(body, &envelope); err != nil {
		return &GatewayError{StatusCode: statusCode, Description: string(body)}
	}

	return &GatewayError{
		StatusCode:  statusCode,
		Code:        envelope.Error.Code,
		Description: envelope.Error.Description,
	}
}
