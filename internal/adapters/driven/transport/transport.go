// Package transport builds the HTTP clients used for upstream calls.
//
// Every upstream gets its own *http.Client with a per-call timeout and a
// RoundTripper that reports call outcome and latency to a Recorder.
package transport

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Upstream names used as metric labels.
const (
	UpstreamNotion    = "notion"
	UpstreamSlack     = "slack"
	UpstreamDrive     = "drive"
	UpstreamAnthropic = "anthropic"
)

// OutcomeError labels a call that failed before a response arrived.
const OutcomeError = "error"

// Recorder receives one observation per upstream call.
type Recorder interface {
	ObserveUpstream(upstream, outcome string, d time.Duration)
}

// NewClient creates an instrumented client for the named upstream.
// The recorder may be nil.
func NewClient(upstream string, timeout time.Duration, rec Recorder) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: Instrument(upstream, http.DefaultTransport, rec),
	}
}

// Instrument wraps next so each round trip is reported to rec.
func Instrument(upstream string, next http.RoundTripper, rec Recorder) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &instrumentedTransport{upstream: upstream, next: next, rec: rec}
}

type instrumentedTransport struct {
	upstream string
	next     http.RoundTripper
	rec      Recorder
}

// RoundTrip implements http.RoundTripper.
func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if t.rec != nil {
		t.rec.ObserveUpstream(t.upstream, outcome(resp, err), time.Since(start))
	}
	return resp, err
}

// outcome reduces a round trip to a status class label.
func outcome(resp *http.Response, err error) string {
	if err != nil || resp == nil {
		return OutcomeError
	}
	return fmt.Sprintf("%dxx", resp.StatusCode/100)
}

// RedirectTo rewrites the scheme and host of every request to target,
// keeping the path. It lets SDKs with a fixed base URL talk to a proxy or
// a local fake.
func RedirectTo(target *url.URL, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &redirectTransport{target: target, next: next}
}

type redirectTransport struct {
	target *url.URL
	next   http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *redirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.URL.Scheme = t.target.Scheme
	clone.URL.Host = t.target.Host
	clone.Host = t.target.Host
	return t.next.RoundTrip(clone)
}
