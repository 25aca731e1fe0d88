// Package pipeline post-processes the aggregated record list: it drops stale
// and non-competition records, then collapses cross-source duplicates.
//
// Both passes build new slices; incoming records are never mutated.
package pipeline

import (
	"time"

	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/logger"
)

// Options are the tunable post-processing constants. Observed deployments
// disagree on the staleness window (60 vs 180 days), so it is a parameter
// rather than a baked-in value, as is the dedup key prefix length.
type Options struct {
	StaleAfter   time.Duration
	KeyPrefixLen int
}

// FilterFresh drops records that are stale by deadline, old by a year token
// in the title, or classified as plain news. Every drop is logged.
func FilterFresh(records []competition.Record, now time.Time, opts Options, log logger.Logger) []competition.Record {
	kept := make([]competition.Record, 0, len(records))
	for _, r := range records {
		switch {
		case competition.IsStale(r.Deadline, now, opts.StaleAfter):
			log.Debug("dropping stale record",
				logger.String("title", r.Title),
				logger.String("deadline", r.Deadline))
		case competition.IsOldByTitle(r.Title, now):
			log.Debug("dropping record with old year in title",
				logger.String("title", r.Title))
		case r.Status == competition.StatusNews:
			log.Debug("dropping news record",
				logger.String("title", r.Title))
		default:
			kept = append(kept, r)
		}
	}
	log.Info("freshness filter applied",
		logger.Int("before", len(records)),
		logger.Int("after", len(kept)))
	return kept
}

// Dedupe collapses records sharing a normalization key. Within a group the
// record carrying a deadline beats one without; otherwise the first seen
// wins. Output preserves first-occurrence order, so the result is
// deterministic for a fixed input order, and the pass is idempotent.
func Dedupe(records []competition.Record, opts Options) []competition.Record {
	byKey := make(map[string]int, len(records))
	out := make([]competition.Record, 0, len(records))
	for _, r := range records {
		key := competition.NormalizationKey(r.Title, opts.KeyPrefixLen)
		if i, ok := byKey[key]; ok {
			if r.Deadline != "" && out[i].Deadline == "" {
				out[i] = r
			}
			continue
		}
		byKey[key] = len(out)
		out = append(out, r)
	}
	return out
}

// Run applies both passes in order.
func Run(records []competition.Record, now time.Time, opts Options, log logger.Logger) []competition.Record {
	return Dedupe(FilterFresh(records, now, opts, log), opts)
}
