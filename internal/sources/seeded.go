package sources

import (
	"context"

	"github.com/mslovenc/DizajnRadar/internal/classify"
	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/dateparse"
	"github.com/mslovenc/DizajnRadar/internal/htmltext"
)

// EuropeanDesign and ADesignAward are seeded adapters: their sites offer no
// reliable structural extraction point, so each contributes one hand-curated
// record and uses a live fetch only to refine the deadline and status. Their
// output still flows through the same downstream filtering as everything
// else.

type EuropeanDesign struct {
	URL  string
	opts Options
}

func NewEuropeanDesign(opts Options) *EuropeanDesign {
	return &EuropeanDesign{URL: "https://europeandesign.org/", opts: opts.withDefaults()}
}

func (s *EuropeanDesign) Name() string { return "europeandesign.org" }

func (s *EuropeanDesign) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
	html, ok := f.Fetch(ctx, s.URL)
	if !ok {
		return nil, nil
	}
	text := htmltext.StripTags(html)
	deadline := dateparse.FindDate(text)
	return []competition.Record{{
		Title:    "European Design Awards 2026",
		Link:     s.URL,
		Org:      "European Design Awards",
		Category: classify.CategoryGraphicDesign,
		Status:   classify.Status(text, deadline, s.opts.Now(), s.opts.ClosedAfter),
		Deadline: deadline,
		Prize:    "Europska nagrada za dizajn",
	}}, nil
}

type ADesignAward struct {
	URL  string
	opts Options
}

func NewADesignAward(opts Options) *ADesignAward {
	return &ADesignAward{URL: "https://competition.adesignaward.com/registration.html", opts: opts.withDefaults()}
}

func (s *ADesignAward) Name() string { return "adesignaward.com" }

func (s *ADesignAward) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
	html, ok := f.Fetch(ctx, s.URL)
	if !ok {
		return nil, nil
	}
	deadline := dateparse.FindDate(htmltext.StripTags(html))
	return []competition.Record{{
		Title:    "A' Design Award & Competition 2026",
		Link:     s.URL,
		Org:      "A' Design Award",
		Category: classify.CategoryGraphicDesign,
		Status:   competition.StatusActive,
		Deadline: deadline,
		Prize:    "Međunarodna nagrada + promocija",
	}}, nil
}
