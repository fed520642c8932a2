package postcodesio_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	postcodesio "github.com/postcodesio/postcodesio-go"
)

func envelope(result any) map[string]any {
	return map[string]any{"status": 200, "result": result}
}

func TestClient_LookupPostcode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/postcodes/SW1A 2AA" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(envelope(postcodesio.Postcode{Postcode: "SW1A 2AA", Country: "England"}))
	}))
	defer srv.Close()

	c, err := postcodesio.New(postcodesio.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.LookupPostcode(context.Background(), "SW1A 2AA")
	if err != nil || got.Postcode != "SW1A 2AA" {
		t.Fatalf("LookupPostcode unexpected: got=%+v err=%v", got, err)
	}
}

func TestClient_LookupPostcode_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": 404, "error": "Postcode not found"})
	}))
	defer srv.Close()

	c, _ := postcodesio.New(postcodesio.WithBaseURL(srv.URL))
	_, err := c.LookupPostcode(context.Background(), "ZZ1 2XY")
	if !postcodesio.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	ae, ok := postcodesio.AsAPIError(err)
	if !ok || ae.StatusCode != http.StatusNotFound || ae.Message != "Postcode not found" {
		t.Fatalf("raw failure detail not retained: %+v ok=%v", ae, ok)
	}
}

func TestClient_ValidatePostcode_Idempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		valid := r.URL.Path == "/postcodes/SW1A 2AA/validate"
		_ = json.NewEncoder(w).Encode(envelope(valid))
	}))
	defer srv.Close()

	c, _ := postcodesio.New(postcodesio.WithBaseURL(srv.URL))
	for i := 0; i < 3; i++ {
		ok, err := c.ValidatePostcode(context.Background(), "SW1A 2AA")
		if err != nil || !ok {
			t.Fatalf("call %d: ok=%v err=%v", i, ok, err)
		}
	}
	ok, err := c.ValidatePostcode(context.Background(), "ZZ1 2XY")
	if err != nil || ok {
		t.Fatalf("invalid code reported valid: ok=%v err=%v", ok, err)
	}
}

func TestClient_RandomPostcodeInOutcode_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope(nil))
	}))
	defer srv.Close()

	c, _ := postcodesio.New(postcodesio.WithBaseURL(srv.URL))
	got, err := c.RandomPostcodeInOutcode(context.Background(), "ZZ9")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) for empty filter: got=%+v err=%v", got, err)
	}
}

func TestClient_BulkLookupPreservesOrder(t *testing.T) {
	codes := []string{"EC1A 1BB", "SW1A 2AA", "N1 9GU"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Postcodes []string `json:"postcodes"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		results := make([]postcodesio.BulkLookupResult, len(body.Postcodes))
		for i, code := range body.Postcodes {
			results[i] = postcodesio.BulkLookupResult{Query: code, Result: &postcodesio.Postcode{Postcode: code}}
		}
		_ = json.NewEncoder(w).Encode(envelope(results))
	}))
	defer srv.Close()

	c, _ := postcodesio.New(postcodesio.WithBaseURL(srv.URL))
	got, err := c.BulkLookupPostcodes(context.Background(), codes)
	if err != nil || len(got) != len(codes) {
		t.Fatalf("bulk lookup unexpected: n=%d err=%v", len(got), err)
	}
	for i := range codes {
		if got[i].Query != codes[i] {
			t.Fatalf("order not preserved at %d: %q", i, got[i].Query)
		}
	}
}

func TestClient_RangeErrorBeforeNetwork(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(envelope(nil))
	}))
	defer srv.Close()

	c, _ := postcodesio.New(postcodesio.WithBaseURL(srv.URL))
	_, err := c.NearestPostcodes(context.Background(), "SW1A 2AA", 101, 0)
	re, ok := postcodesio.AsRangeError(err)
	if !ok || re.Param != "limit" {
		t.Fatalf("expected limit range error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("network call made despite invalid argument")
	}
}
