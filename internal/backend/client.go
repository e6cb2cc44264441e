package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nfrund/lateslip-portal/internal/domain"
)

const (
	loginPath    = "/admin/login"
	registerPath = "/admin/register"

	// maxErrorBody caps how much of a failure body is read for its message.
	maxErrorBody = 64 << 10
)

// Client talks to the Late Slip backend. All calls go to a single origin and
// carry no authentication header.
type Client struct {
	origin *url.URL
	http   *http.Client
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client bound to origin (scheme and host, e.g. http://localhost:8000).
func New(origin string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(origin, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend origin: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend origin %q must include scheme and host", origin)
	}

	c := &Client{
		origin: u,
		http:   &http.Client{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SubmitLogin posts the login credentials and returns the issued token.
func (c *Client) SubmitLogin(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	body := domain.LoginCredentials{Email: email, Password: password}
	if err := c.post(ctx, "submit login", loginPath, body, &resp, true); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("submit login: %w", ErrMissingToken)
	}
	return &resp, nil
}

// SubmitRegistration posts a new admin account. The username travels as "fullname".
// Any 2xx counts as success; the body is decoded only when it is a JSON object.
func (c *Client) SubmitRegistration(ctx context.Context, username, email, password string) (*RegistrationResponse, error) {
	var resp RegistrationResponse
	body := domain.RegistrationCredentials{Username: username, Email: email, Password: password}
	if err := c.post(ctx, "submit registration", registerPath, body, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post sends payload as JSON and decodes a 2xx response into out. When strict
// is false an undecodable 2xx body is logged and ignored.
func (c *Client) post(ctx context.Context, op, path string, payload, out any, strict bool) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", op, err)
	}

	endpoint := c.origin.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Backend responded", "op", op, "url", endpoint, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp)
	}

	// Some 2xx responses (e.g. 204) carry no body.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		if strict {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
		c.logger.DebugContext(ctx, "Ignoring undecodable success body", "op", op, "error", err)
	}
	return nil
}

func statusError(op string, resp *http.Response) error {
	se := &StatusError{Op: op, StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return se
	}
	var env errorEnvelope
	if json.Unmarshal(raw, &env) == nil {
		se.Message = env.Error
	}
	return se
}
