package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/net/publicsuffix"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// WebhookSink is one outbound notification target. PayloadExpr is an
// optional JMESPath expression applied to the notification JSON; empty
// sends the whole notification.
type WebhookSink struct {
	Name        string
	URL         string
	PayloadExpr string
	Headers     map[string]string
	// OkStatus is the expected response status. Zero accepts any 2xx.
	OkStatus int
}

// WebhookDispatcherOptions groups dependencies for WebhookDispatcher.
type WebhookDispatcherOptions struct {
	Sinks []WebhookSink
	// AllowedDomains restricts sink URLs by registered domain (eTLD+1).
	// Empty allows any host.
	AllowedDomains []string
	HTTPClient     *http.Client
	Evaluator      JMESPathEvaluator
	Logger         *slog.Logger
}

// WebhookDispatcher POSTs notification events to configured webhook sinks.
// It implements core.NotificationDispatcher.
type WebhookDispatcher struct {
	sinks   []WebhookSink
	client  *http.Client
	jems    JMESPathEvaluator
	logger  *slog.Logger
	allowed map[string]struct{}
}

var _ core.NotificationDispatcher = (*WebhookDispatcher)(nil)

// NewWebhookDispatcher validates sink configuration up front: URLs must be
// http(s) with a host inside the allowlist, and payload expressions must
// compile.
func NewWebhookDispatcher(opts WebhookDispatcherOptions) (*WebhookDispatcher, error) {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	allowed := make(map[string]struct{}, len(opts.AllowedDomains))
	for _, d := range opts.AllowedDomains {
		d = strings.TrimSpace(strings.ToLower(d))
		if d == "" {
			continue
		}
		allowed[d] = struct{}{}
	}

	d := &WebhookDispatcher{client: client, jems: jems, logger: logger, allowed: allowed}
	for _, sink := range opts.Sinks {
		if err := d.validateSink(sink); err != nil {
			return nil, fmt.Errorf("webhook sink %q: %w", sink.Name, err)
		}
		d.sinks = append(d.sinks, sink)
	}
	return d, nil
}

func (d *WebhookDispatcher) validateSink(sink WebhookSink) error {
	u, err := url.Parse(sink.URL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %s", u.Scheme)
	}
	if strings.TrimSpace(u.Host) == "" {
		return errors.New("invalid URL: missing host")
	}
	if err := d.checkOrigin(u.Hostname()); err != nil {
		return err
	}
	if err := d.jems.Validate(sink.PayloadExpr); err != nil {
		return fmt.Errorf("invalid payload expression: %w", err)
	}
	return nil
}

// checkOrigin reduces the host to its registered domain and requires it to
// be allowlisted.
func (d *WebhookDispatcher) checkOrigin(host string) error {
	if len(d.allowed) == 0 {
		return nil
	}
	host = strings.TrimSpace(strings.ToLower(host))
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return fmt.Errorf("resolve registered domain for %q: %w", host, err)
	}
	if _, ok := d.allowed[etld1]; !ok {
		return fmt.Errorf("domain %q is not allowlisted", etld1)
	}
	return nil
}

// Dispatch sends the notification to every sink. Sink failures are logged;
// an error is returned only when every sink fails.
func (d *WebhookDispatcher) Dispatch(ctx context.Context, notification *model.Notification) error {
	if len(d.sinks) == 0 || notification == nil {
		return nil
	}

	raw, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	var delivered int
	var firstErr error
	for _, sink := range d.sinks {
		if err := d.send(ctx, sink, raw); err != nil {
			d.logger.WarnContext(ctx, "webhook delivery failed",
				"sink", sink.Name, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("sink %q: %w", sink.Name, err)
			}
			continue
		}
		delivered++
	}
	if delivered == 0 {
		return firstErr
	}
	return nil
}

func (d *WebhookDispatcher) send(ctx context.Context, sink WebhookSink, raw json.RawMessage) error {
	body, err := d.deriveBody(sink.PayloadExpr, raw)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sink.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range sink.Headers {
		req.Header.Set(k, v)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer func() {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck
		resp.Body.Close()
	}()

	if sink.OkStatus != 0 {
		if resp.StatusCode != sink.OkStatus {
			return fmt.Errorf("unexpected status %d, want %d", resp.StatusCode, sink.OkStatus)
		}
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (d *WebhookDispatcher) deriveBody(expr string, raw json.RawMessage) ([]byte, error) {
	if strings.TrimSpace(expr) == "" {
		return raw, nil
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode notification payload: %w", err)
	}
	res, err := d.jems.Evaluate(expr, data)
	if err != nil {
		return nil, fmt.Errorf("evaluate payload expression: %w", err)
	}
	b, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshal derived payload: %w", err)
	}
	return b, nil
}
