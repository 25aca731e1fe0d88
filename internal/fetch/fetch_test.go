package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("unexpected User-Agent: %q", ua)
		}
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	c := New(5 * time.Second)
	body, ok := c.Fetch(context.Background(), srv.URL)
	if !ok {
		t.Fatal("expected fetch to succeed")
	}
	if body != "<html>ok</html>" {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(5 * time.Second)
	body, ok := c.Fetch(context.Background(), srv.URL)
	if ok {
		t.Error("expected fetch to report no content on 404")
	}
	if body != "" {
		t.Errorf("expected empty body, got %q", body)
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("late"))
	}))
	defer srv.Close()

	c := New(20 * time.Millisecond)
	if _, ok := c.Fetch(context.Background(), srv.URL); ok {
		t.Error("expected fetch to report no content on timeout")
	}
}

func TestFetchNetworkError(t *testing.T) {
	c := New(time.Second)
	if _, ok := c.Fetch(context.Background(), "http://127.0.0.1:1/nope"); ok {
		t.Error("expected fetch to report no content on connection error")
	}
}

func TestFetchContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(time.Second)
	if _, ok := c.Fetch(ctx, srv.URL); ok {
		t.Error("expected fetch to report no content on cancelled context")
	}
}

func TestFetchBadURL(t *testing.T) {
	c := New(time.Second)
	if _, ok := c.Fetch(context.Background(), "://not-a-url"); ok {
		t.Error("expected fetch to report no content on malformed URL")
	}
}
