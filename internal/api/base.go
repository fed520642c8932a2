package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	errs "github.com/postcodesio/postcodesio-go/internal/errors"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// envelope is the wire wrapper shared by every endpoint: a status code
// mirroring the HTTP status plus the endpoint-specific result payload.
type envelope[T any] struct {
	Status int    `json:"status"`
	Result T      `json:"result"`
	Error  string `json:"error"`
}

func get[T any](ctx context.Context, hc HTTPClient, baseURL, path string, query url.Values, op string) (T, error) {
	return do[T](ctx, hc, http.MethodGet, baseURL, path, query, nil, op)
}

func post[T any](ctx context.Context, hc HTTPClient, baseURL, path string, query url.Values, body any, op string) (T, error) {
	return do[T](ctx, hc, http.MethodPost, baseURL, path, query, body, op)
}

// do issues one request and unwraps the envelope. Query parameters and the
// JSON body are kept separate on the wire; the service never merges them.
func do[T any](ctx context.Context, hc HTTPClient, method, baseURL, path string, query url.Values, body any, op string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	u := baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return zero, fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		observe(op, outcomeError, time.Since(start))
		return zero, errs.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(op, outcomeError, time.Since(start))
		return zero, errs.NewNetworkError(op, err)
	}

	if resp.StatusCode != http.StatusOK {
		var fail struct {
			Status int    `json:"status"`
			Error  string `json:"error"`
		}
		_ = json.Unmarshal(raw, &fail)
		outcome := outcomeError
		if resp.StatusCode == http.StatusNotFound {
			outcome = outcomeNotFound
		}
		observe(op, outcome, time.Since(start))
		return zero, errs.NewHTTPError(op, resp.StatusCode, fail.Error, string(raw), resp.Header)
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		observe(op, outcomeError, time.Since(start))
		return zero, fmt.Errorf("%s: decode response: %w", op, err)
	}
	observe(op, outcomeSuccess, time.Since(start))
	return env.Result, nil
}
