package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/offertrack/track-ui-api/internal/observability/errors"
	"github.com/offertrack/track-ui-api/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// RequestMetric captures one handled HTTP request for metric emission.
type RequestMetric struct {
	Route    string
	Method   string
	Status   int
	Duration time.Duration
}

// EmitRequest emits standardised HTTP request metrics.
func EmitRequest(sink statsd.Sink, in RequestMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"route":  in.Route,
		"method": in.Method,
		"status": strconv.Itoa(in.Status),
	}

	sink.Count("http.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("http.request.duration", in.Duration, CloneTags(tags))
	}
}

// UpstreamMetric captures one tracker API call for metric emission.
type UpstreamMetric struct {
	Operation string
	Result    string
	Duration  time.Duration
	Err       error
}

// EmitUpstreamCall emits standardised upstream client metrics.
func EmitUpstreamCall(sink statsd.Sink, in UpstreamMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"operation": in.Operation,
		"result":    in.Result,
	}

	if in.Err != nil && in.Result == ResultError {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("upstream.call", 1, tags)
	if in.Duration > 0 {
		sink.Timing("upstream.call.duration", in.Duration, CloneTags(tags))
	}
}

// CacheMetric captures one cache lookup for metric emission.
type CacheMetric struct {
	Resource string
	Hit      bool
}

// EmitCacheLookup counts cache hits and misses per resource kind.
func EmitCacheLookup(sink statsd.Sink, in CacheMetric) {
	if sink == nil {
		return
	}

	outcome := "miss"
	if in.Hit {
		outcome = "hit"
	}
	sink.Count("cache.lookup", 1, map[string]string{
		"resource": in.Resource,
		"outcome":  outcome,
	})
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
