package htmlfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got == "" {
			t.Error("expected a User-Agent header to be set")
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><p>hello</p></body></html>"))
	}))
	defer server.Close()

	f := NewFetcher()
	body, ok := f.Fetch(context.Background(), server.URL)
	if !ok {
		t.Fatal("expected fetch to succeed")
	}
	if body == "" {
		t.Error("expected a non-empty body")
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher()
	if _, ok := f.Fetch(context.Background(), server.URL); ok {
		t.Error("expected a 404 response to be rejected")
	}
}

func TestFetchInvalidURL(t *testing.T) {
	f := NewFetcher()
	if _, ok := f.Fetch(context.Background(), "://not a url"); ok {
		t.Error("expected an invalid URL to be rejected")
	}
}
