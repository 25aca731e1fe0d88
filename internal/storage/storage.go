// Package storage archives the final record set of each run to disk as
// timestamped JSON, so past runs can be inspected after the remote table
// has been replaced.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mslovenc/DizajnRadar/internal/competition"
)

const latestName = "latest.json"

// Archive writes run snapshots into a data directory.
type Archive struct {
	dataDir string
}

// Run is one archived scrape.
type Run struct {
	ArchivedAt string               `json:"archived_at"`
	Records    []competition.Record `json:"records"`
}

// New creates an Archive rooted at dataDir, creating it if needed.
func New(dataDir string) (*Archive, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Archive{dataDir: dataDir}, nil
}

// SaveRun writes the records under a timestamped file name and refreshes
// latest.json to point at the same content.
func (a *Archive) SaveRun(records []competition.Record, at time.Time) error {
	run := Run{
		ArchivedAt: at.UTC().Format(time.RFC3339),
		Records:    records,
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run: %w", err)
	}

	name := fmt.Sprintf("run_%s.json", at.UTC().Format("20060102T150405Z"))
	if err := os.WriteFile(filepath.Join(a.dataDir, name), data, 0644); err != nil {
		return fmt.Errorf("writing run: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.dataDir, latestName), data, 0644); err != nil {
		return fmt.Errorf("writing latest run: %w", err)
	}

	return nil
}

// LoadLatest returns the most recently archived run, or nil when the
// archive is empty.
func (a *Archive) LoadLatest() (*Run, error) {
	data, err := os.ReadFile(filepath.Join(a.dataDir, latestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading latest run: %w", err)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parsing latest run: %w", err)
	}
	return &run, nil
}

// Runs lists archived run file names, newest first.
func (a *Archive) Runs() ([]string, error) {
	entries, err := os.ReadDir(a.dataDir)
	if err != nil {
		return nil, fmt.Errorf("listing archive: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "run_") && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
