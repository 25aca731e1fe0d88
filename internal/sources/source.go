// Package sources contains one adapter per scraped site.
//
// Every adapter turns one external site's markup into candidate competition
// records: fetch the listing, extract entries through a site-specific
// structural pattern, optionally fetch detail pages, apply the classifiers
// and emit records. Extraction is best-effort; when a site redesigns, the
// adapter degrades to an empty result rather than failing the run. Adapters
// never panic past their boundary and never retry a failed fetch.
package sources

import (
	"context"
	"time"

	"github.com/mslovenc/DizajnRadar/internal/competition"
)

// Fetcher is the page-fetch capability consumed by adapters. A fetch either
// yields the page body or ("", false); it never fails with an error.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, bool)
}

// Source is one site adapter. Scrape returns the candidate records for that
// site; a returned error means the whole adapter failed and contributes
// nothing, which the aggregator isolates from sibling sources.
type Source interface {
	Name() string
	Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error)
}

// Options carries the cross-adapter tunables. Now is injectable so tests can
// pin the clock.
type Options struct {
	Now         func() time.Time
	StaleAfter  time.Duration
	ClosedAfter time.Duration
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.StaleAfter == 0 {
		o.StaleAfter = 180 * 24 * time.Hour
	}
	if o.ClosedAfter == 0 {
		o.ClosedAfter = 14 * 24 * time.Hour
	}
	return o
}

// All returns the full adapter registry in its fixed order. The aggregator
// consumes this list; order determines which duplicate survives when no
// deadline distinguishes them.
func All(opts Options) []Source {
	opts = opts.withDefaults()
	return []Source{
		NewDizajnHr(opts),
		NewContestWatchers(opts),
		NewBigSee(opts),
		NewEuropeanDesign(opts),
		NewGraphicCompetitions(opts),
		NewADesignAward(opts),
		NewDezeen(opts),
		NewUlupuh(opts),
		NewZagreb(opts),
		NewKGZ(opts),
		NewPogon(opts),
		NewHDLU(opts),
	}
}
