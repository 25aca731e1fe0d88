package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/logger"
)

var testBatch = []competition.Record{
	{
		Title:    "Natječaj za plakat",
		Link:     "https://dizajn.hr/natjecaj-plakat/",
		Org:      "HDD / dizajn.hr",
		Category: "Grafički dizajn",
		Status:   competition.StatusActive,
		Deadline: "2026-03-01",
		Prize:    "Nije navedeno",
	},
	{
		Title:    "Illustration Award",
		Link:     "https://example.com/award",
		Org:      "Example",
		Category: "Ilustracija",
		Status:   competition.StatusActive,
		Prize:    "Vidi detalje",
	},
}

func TestSupabaseReplace(t *testing.T) {
	var deleteReq, insertReq *http.Request
	var insertBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			deleteReq = r.Clone(context.Background())
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPost:
			insertReq = r.Clone(context.Background())
			insertBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			w.Write(insertBody) // echo back as representation
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL, "secret-key", logger.NewNop())
	if err := s.Replace(context.Background(), testBatch); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if deleteReq == nil {
		t.Fatal("expected a DELETE before the insert")
	}
	if got := deleteReq.URL.Path; got != "/rest/v1/natjecaji" {
		t.Errorf("delete path = %q", got)
	}
	if got := deleteReq.URL.RawQuery; got != "title=neq.___KEEP___" {
		t.Errorf("delete filter = %q, want the always-true filter", got)
	}
	if got := deleteReq.Header.Get("apikey"); got != "secret-key" {
		t.Errorf("missing apikey header, got %q", got)
	}

	if insertReq == nil {
		t.Fatal("expected a POST insert")
	}
	if got := insertReq.Header.Get("Prefer"); got != "return=representation" {
		t.Errorf("Prefer header = %q", got)
	}
	if got := insertReq.Header.Get("Authorization"); got != "Bearer secret-key" {
		t.Errorf("Authorization header = %q", got)
	}

	var sent []map[string]any
	if err := json.Unmarshal(insertBody, &sent); err != nil {
		t.Fatalf("insert body is not a JSON array: %v", err)
	}
	if len(sent) != 2 {
		t.Fatalf("expected 2 records in insert body, got %d", len(sent))
	}
	if _, ok := sent[1]["deadline"]; ok {
		t.Error("absent deadline should be omitted from JSON")
	}
}

func TestSupabaseInsertFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL, "bad-key", logger.NewNop())
	err := s.Replace(context.Background(), testBatch)
	if err == nil {
		t.Fatal("expected insert failure")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error should carry status and body, got: %v", err)
	}
}

func TestSupabaseDeleteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL, "key", logger.NewNop())
	err := s.Replace(context.Background(), testBatch)
	if err == nil {
		t.Fatal("expected delete failure")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error should carry the HTTP status, got: %v", err)
	}
}

func TestPreviewReplace(t *testing.T) {
	var buf bytes.Buffer
	p := NewPreview(&buf)
	if err := p.Replace(context.Background(), testBatch); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Natječaj za plakat") {
		t.Errorf("preview missing record title:\n%s", out)
	}
	if !strings.Contains(out, "2026-03-01") {
		t.Errorf("preview missing deadline:\n%s", out)
	}
	if !strings.Contains(out, "—") {
		t.Errorf("preview should show a dash for a missing deadline:\n%s", out)
	}
}

func TestPreviewClipsLongValues(t *testing.T) {
	long := competition.Record{
		Title:  strings.Repeat("x", 80),
		Link:   "https://example.com/" + strings.Repeat("y", 80),
		Status: competition.StatusActive,
	}

	var buf bytes.Buffer
	if err := NewPreview(&buf).Replace(context.Background(), []competition.Record{long}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if strings.Contains(buf.String(), strings.Repeat("x", 46)) {
		t.Error("title should be clipped to 45 characters")
	}
}
