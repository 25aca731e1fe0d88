package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/logger"
)

const supabaseTable = "natjecaji"

// Supabase writes the batch through the Supabase REST interface: a
// delete-all (always-true filter) followed by a bulk insert that returns the
// inserted rows so the count can be verified.
type Supabase struct {
	BaseURL string
	Key     string

	client *http.Client
	log    logger.Logger
}

func NewSupabase(baseURL, key string, log logger.Logger) *Supabase {
	return &Supabase{
		BaseURL: baseURL,
		Key:     key,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

func (s *Supabase) Replace(ctx context.Context, records []competition.Record) error {
	// Clear all rows: no row is ever titled ___KEEP___, so the filter
	// matches everything.
	clearURL := fmt.Sprintf("%s/rest/v1/%s?title=neq.___KEEP___", s.BaseURL, supabaseTable)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, clearURL, nil)
	if err != nil {
		return fmt.Errorf("building delete request: %w", err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("clearing table: %w", err)
	}
	if err := drainCheck(resp, "delete"); err != nil {
		return err
	}

	body, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	insertURL := fmt.Sprintf("%s/rest/v1/%s", s.BaseURL, supabaseTable)
	req, err = http.NewRequestWithContext(ctx, http.MethodPost, insertURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building insert request: %w", err)
	}
	s.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err = s.client.Do(req)
	if err != nil {
		return fmt.Errorf("inserting records: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("insert failed: status %d: %s", resp.StatusCode, respBody)
	}

	var inserted []competition.Record
	if err := json.Unmarshal(respBody, &inserted); err != nil {
		return fmt.Errorf("parsing insert response: %w", err)
	}
	s.log.Info("records written to store",
		logger.Int("sent", len(records)),
		logger.Int("inserted", len(inserted)))
	return nil
}

func (s *Supabase) authorize(req *http.Request) {
	req.Header.Set("apikey", s.Key)
	req.Header.Set("Authorization", "Bearer "+s.Key)
}

func drainCheck(resp *http.Response, op string) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s failed: status %d: %s", op, resp.StatusCode, body)
	}
	return nil
}
