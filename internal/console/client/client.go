// Package client is the console's only way to reach the backend. Every call
// returns a Result; failures are classified by Kind and never panic or escape
// as plain errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// CredentialSource supplies the bearer token for protected calls.
type CredentialSource interface {
	Credential() (string, bool)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient defaults to a client without its own timeout; the per-call
	// context deadline applies instead.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client is bound to one credential source. It is cheap to create and safe
// for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	creds   CredentialSource
	log     zerolog.Logger

	Auth       AuthClient
	Categories CategoryClient
	Posts      PostClient
	Users      UserClient
	Audit      AuditClient
}

func New(cfg Config, creds CredentialSource) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    cfg.HTTPClient,
		creds:   creds,
		log:     cfg.Logger,
	}
	c.Auth = AuthClient{c: c}
	c.Categories = CategoryClient{c: c}
	c.Posts = PostClient{c: c}
	c.Users = UserClient{c: c}
	c.Audit = AuditClient{c: c}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// call performs one request. When authRequired is set and no credential is
// available it fails with KindUnauthenticated without touching the network.
// out may be nil when the response data is not needed.
func (c *Client) call(ctx context.Context, resource, method, path string, body, out any, authRequired bool) *Error {
	e := c.roundTrip(ctx, resource, method, path, body, out, authRequired)

	outcome := "ok"
	if e != nil {
		outcome = e.Kind.String()
		c.log.Warn().
			Str("resource", resource).
			Str("method", method).
			Str("path", path).
			Str("kind", outcome).
			Int("status", e.Status).
			Str("message", e.Message).
			Err(e.Err).
			Msg("backend call failed")
	}
	BackendRequestsTotal.WithLabelValues(resource, outcome).Inc()
	return e
}

func (c *Client) roundTrip(ctx context.Context, resource, method, path string, body, out any, authRequired bool) *Error {
	var token string
	if authRequired {
		t, ok := c.creds.Credential()
		if !ok {
			return &Error{Kind: KindUnauthenticated}
		}
		token = t
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindNetwork, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	BackendRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Error{Kind: KindNetwork, Err: fmt.Errorf("read response: %w", err)}
	}

	c.log.Debug().
		Str("resource", resource).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend call")

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &Error{Kind: KindHTTP, Status: resp.StatusCode}
		if decodeErr == nil {
			e.Message = env.Message
		}
		return e
	}
	if decodeErr != nil {
		return &Error{Kind: KindNetwork, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if !env.Success {
		return &Error{Kind: KindBusiness, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Kind: KindNetwork, Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return nil
}

func do[T any](ctx context.Context, c *Client, resource, method, path string, body any, authRequired bool) Result[T] {
	var v T
	if err := c.call(ctx, resource, method, path, body, &v, authRequired); err != nil {
		return Result[T]{Err: err}
	}
	return Result[T]{Value: v}
}

// IsKind reports whether err is a *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
