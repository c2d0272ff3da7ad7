// Package upstream implements the typed client for the tracker REST API.
// It provides the repository implementations the service layer depends on;
// all persistence lives behind this API.
package upstream

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

	"golang.org/x/oauth2"

	"github.com/offertrack/track-ui-api/internal/domain/auth"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

const (
	defaultTimeout = 10 * time.Second

	// actingUserHeader carries the end user the request is made on behalf of.
	// The tracker API trusts this header only for requests authenticated with
	// the service credential.
	actingUserHeader = "X-Acting-User"
)

// Options bundles dependencies for NewClient.
type Options struct {
	// BaseURL is the tracker API root, e.g. "https://tracker.internal/api".
	BaseURL string
	// Tokens supplies the service bearer credential for every request.
	Tokens oauth2.TokenSource
	// HTTPClient overrides the default client. Optional.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client is the shared HTTP core used by the per-resource clients.
type Client struct {
	baseURL string
	tokens  oauth2.TokenSource
	hc      *http.Client
	logger  *slog.Logger
}

// NewClient creates the shared tracker API client.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("upstream base URL is required")
	}
	if opts.Tokens == nil {
		return nil, fmt.Errorf("upstream token source is required")
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{baseURL: base, tokens: opts.Tokens, hc: hc, logger: logger}, nil
}

// errorEnvelope is the upstream error body shape.
type errorEnvelope struct {
	Detail string `json:"detail"`
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil. Non-2xx responses are mapped into
// the application error taxonomy.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token()
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "obtain upstream token")
	}
	token.SetAuthHeader(req)

	if userID := auth.UserIDFromContext(ctx); userID != "" {
		req.Header.Set(actingUserHeader, userID)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return apperrors.FromTransportError(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.logger.Debug("upstream request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode upstream response for %s %s", method, path)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apperrors.FromUpstreamStatus(resp.StatusCode, "")
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Detail == "" {
		return apperrors.FromUpstreamStatus(resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return apperrors.FromUpstreamStatus(resp.StatusCode, envelope.Detail)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) patch(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, in, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out)
}

// Health probes the upstream root endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/", nil)
}
