package postcodesio

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.baseURL != DefaultBaseURL {
		t.Fatalf("base URL = %q", c.baseURL)
	}
	if c.http.Timeout != 30*time.Second {
		t.Fatalf("default timeout = %v", c.http.Timeout)
	}
	if _, ok := c.http.Transport.(*userAgentTransport); !ok {
		t.Fatalf("user-agent transport not installed")
	}
}

func TestNew_BaseURLTrailingSlash(t *testing.T) {
	c, err := New(WithBaseURL("http://localhost:8000/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.baseURL != "http://localhost:8000" {
		t.Fatalf("trailing slash not trimmed: %q", c.baseURL)
	}
}

func TestNew_OptionError(t *testing.T) {
	if _, err := New(WithBaseURL("")); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
	if _, err := New(WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
	if _, err := New(WithUserAgent("")); err == nil {
		t.Fatalf("expected error for empty user agent")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrNotFound) {
		t.Fatalf("expected not-found")
	}
	if IsNotFound(errors.New("other")) {
		t.Fatalf("unexpected not-found detection")
	}
}

func TestUserAgentTransport(t *testing.T) {
	var seen string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get("User-Agent")
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New(WithHTTPClient(&http.Client{Transport: rt}), WithUserAgent("custom/1.2"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if seen != "custom/1.2" {
		t.Fatalf("user agent not applied: %q", seen)
	}
}
