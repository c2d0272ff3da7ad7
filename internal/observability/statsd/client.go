package statsd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Sink is what metric emitters depend on. The service only emits counters
// (requests, upstream calls, cache lookups) and timings.
type Sink interface {
	Count(name string, value int64, tags map[string]string)
	Timing(name string, value time.Duration, tags map[string]string)
}

// Config describes how to connect to a StatsD-compatible sink.
type Config struct {
	Enabled    bool
	Address    string
	Prefix     string
	Logger     *slog.Logger
	GlobalTags map[string]string
}

// Client emits metrics over UDP using the StatsD line protocol with
// DataDog-style tags. It is safe for concurrent use.
type Client struct {
	enabled bool
	address string
	prefix  string

	// globalPairs holds the configured global tags pre-rendered as sorted
	// "key:value" pairs so per-emit work only merges the local tags in.
	globalPairs []string

	logger *slog.Logger
	conn   net.Conn
	mu     sync.Mutex
}

var _ Sink = (*Client)(nil)

// NewClient dials the configured StatsD endpoint unless disabled.
func NewClient(cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	address := strings.TrimSpace(cfg.Address)
	enabled := cfg.Enabled && address != ""

	client := &Client{
		enabled:     enabled,
		address:     address,
		prefix:      strings.Trim(strings.TrimSpace(cfg.Prefix), "."),
		globalPairs: renderTagPairs(cfg.GlobalTags),
		logger:      logger,
	}

	if !enabled {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := (&net.Dialer{}).DialContext(ctx, "udp", address)
	if err != nil {
		return nil, fmt.Errorf("statsd dial %s: %w", address, err)
	}
	client.conn = conn

	return client, nil
}

// Enabled reports whether the client actively emits metrics.
func (c *Client) Enabled() bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled && c.conn != nil
}

// Count increments a counter metric.
func (c *Client) Count(name string, value int64, tags map[string]string) {
	if c == nil {
		return
	}
	c.write(name, strconv.FormatInt(value, 10)+"|c", tags)
}

// Timing records a timing metric using milliseconds.
func (c *Client) Timing(name string, value time.Duration, tags map[string]string) {
	if c == nil {
		return
	}
	ms := float64(value) / float64(time.Millisecond)
	c.write(name, strconv.FormatFloat(ms, 'f', -1, 64)+"|ms", tags)
}

// Close releases the underlying UDP connection if one was established.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		c.enabled = false
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	c.enabled = false
	return err
}

func (c *Client) write(name, payload string, tags map[string]string) {
	metric := c.metricName(name)
	if metric == "" {
		return
	}

	var b strings.Builder
	b.WriteString(metric)
	b.WriteByte(':')
	b.WriteString(payload)
	writeTags(&b, c.globalPairs, tags)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled || c.conn == nil {
		return
	}

	if _, err := c.conn.Write([]byte(b.String())); err != nil {
		c.logger.Debug("statsd write failed", "error", err)
	}
}

func (c *Client) metricName(name string) string {
	normalized := sanitizeName(name)
	if normalized == "" {
		return ""
	}
	if c.prefix == "" {
		return normalized
	}
	return c.prefix + "." + normalized
}

// writeTags appends "|#k:v,..." with local tags overriding global ones.
// Pairs come out sorted by key so emitted lines are stable.
func writeTags(b *strings.Builder, globalPairs []string, local map[string]string) {
	localPairs := renderTagPairs(local)
	if len(globalPairs) == 0 && len(localPairs) == 0 {
		return
	}

	overridden := make(map[string]bool, len(localPairs))
	for _, p := range localPairs {
		overridden[p[:strings.IndexByte(p, ':')]] = true
	}

	merged := make([]string, 0, len(globalPairs)+len(localPairs))
	for _, p := range globalPairs {
		if !overridden[p[:strings.IndexByte(p, ':')]] {
			merged = append(merged, p)
		}
	}
	merged = append(merged, localPairs...)
	sort.Strings(merged)

	b.WriteString("|#")
	b.WriteString(strings.Join(merged, ","))
}

func renderTagPairs(tags map[string]string) []string {
	if len(tags) == 0 {
		return nil
	}
	pairs := make([]string, 0, len(tags))
	for k, v := range tags {
		key := sanitizeName(k)
		if key == "" {
			continue
		}
		pairs = append(pairs, key+":"+sanitizeTagValue(v))
	}
	sort.Strings(pairs)
	return pairs
}

// sanitizeName makes a metric or tag name line-protocol safe.
func sanitizeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', ':', '|', ',':
			return '_'
		}
		return r
	}, s)
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", ".")
	}
	return strings.Trim(s, ".")
}

// sanitizeTagValue keeps tag values intact apart from the protocol
// delimiters. Route patterns like "GET /api/processes/{id}" are common
// values here, so slashes and braces pass through untouched.
func sanitizeTagValue(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '|', ',', '\n':
			return '_'
		}
		return r
	}, s)
}
