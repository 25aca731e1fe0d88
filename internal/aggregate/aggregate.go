// Package aggregate runs every source adapter concurrently and collects
// their output into one record list.
//
// Adapters are independent units of work: each one's failure, panic included,
// is isolated and logged, and the survivors' output is concatenated in
// registry order so the combined list is deterministic for a fixed registry.
// An empty combined result is treated as systemic breakage, not an empty day.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/logger"
	"github.com/mslovenc/DizajnRadar/internal/metrics"
	"github.com/mslovenc/DizajnRadar/internal/sources"
)

// ErrNoRecords signals that every source came back empty, which in practice
// means the network or every site is broken at once.
var ErrNoRecords = errors.New("no competitions found across any source")

type result struct {
	records []competition.Record
	err     error
}

// Run scrapes all sources concurrently and returns their concatenated
// records. Individual source failures are logged and contribute nothing;
// only a fully empty aggregate is an error.
func Run(ctx context.Context, f sources.Fetcher, srcs []sources.Source, log logger.Logger) ([]competition.Record, error) {
	results := make([]result, len(srcs))

	var wg sync.WaitGroup
	for i, src := range srcs {
		wg.Add(1)
		go func(i int, src sources.Source) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = result{err: fmt.Errorf("panic: %v", r)}
				}
			}()
			records, err := src.Scrape(ctx, f)
			results[i] = result{records: records, err: err}
		}(i, src)
	}
	wg.Wait()

	var all []competition.Record
	for i, src := range srcs {
		if results[i].err != nil {
			metrics.SourceFailures.WithLabelValues(src.Name()).Inc()
			log.Error("source failed",
				logger.String("source", src.Name()),
				logger.Error(results[i].err))
			continue
		}
		metrics.RecordsScraped.WithLabelValues(src.Name()).Add(float64(len(results[i].records)))
		log.Info("source scraped",
			logger.String("source", src.Name()),
			logger.Int("records", len(results[i].records)))
		all = append(all, results[i].records...)
	}

	if len(all) == 0 {
		return nil, ErrNoRecords
	}
	return all, nil
}
