package storage

import (
	"os"
	"testing"
	"time"

	"github.com/mslovenc/DizajnRadar/internal/classify"
	"github.com/mslovenc/DizajnRadar/internal/competition"
)

func testRecords() []competition.Record {
	return []competition.Record{
		{
			Title:    "Natječaj za plakat",
			Category: classify.CategoryGraphicDesign,
			Status:   competition.StatusActive,
			Deadline: "2026-04-01",
			Prize:    "Nije navedeno",
			Org:      "ULUPUH",
			Link:     "https://ulupuh.hr/natjecaj",
		},
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "archive-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	archive, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create archive: %v", err)
	}

	at := time.Date(2026, 2, 1, 6, 0, 0, 0, time.UTC)
	if err := archive.SaveRun(testRecords(), at); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	run, err := archive.LoadLatest()
	if err != nil {
		t.Fatalf("LoadLatest failed: %v", err)
	}
	if run == nil {
		t.Fatal("expected a run, got nil")
	}
	if run.ArchivedAt != "2026-02-01T06:00:00Z" {
		t.Errorf("ArchivedAt = %q, want 2026-02-01T06:00:00Z", run.ArchivedAt)
	}
	if len(run.Records) != 1 || run.Records[0].Title != "Natječaj za plakat" {
		t.Errorf("unexpected records: %+v", run.Records)
	}
}

func TestLoadLatest_Empty(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "archive-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	archive, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create archive: %v", err)
	}

	run, err := archive.LoadLatest()
	if err != nil {
		t.Fatalf("LoadLatest failed: %v", err)
	}
	if run != nil {
		t.Errorf("expected nil run for empty archive, got %+v", run)
	}
}

func TestRuns_NewestFirst(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "archive-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	archive, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create archive: %v", err)
	}

	times := []time.Time{
		time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 6, 0, 0, 0, time.UTC),
	}
	for _, at := range times {
		if err := archive.SaveRun(testRecords(), at); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	names, err := archive.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	want := []string{"run_20260201T060000Z.json", "run_20260101T060000Z.json"}
	if len(names) != len(want) {
		t.Fatalf("Runs returned %d names, want %d: %v", len(names), len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Runs[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
