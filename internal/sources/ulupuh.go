package sources

import (
	"context"
	"regexp"
	"strings"

	"github.com/mslovenc/DizajnRadar/internal/classify"
	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/htmltext"
)

// Ulupuh scrapes the Croatian Association of Applied Arts. The competitions
// page occasionally disappears, so the homepage is the fallback listing.
// Anchors are kept only when their text looks like a call or exhibition
// announcement.
type Ulupuh struct {
	URL         string
	FallbackURL string
	opts        Options
}

const ulupuhCap = 5

var (
	ulupuhLinkRe  = regexp.MustCompile(`(?i)<a[^>]*href="(https?://[^"]*ulupuh[^"]*)"[^>]*>([^<]{10,100})</a>`)
	ulupuhSkipRe  = regexp.MustCompile(`(?i)kontakt|about|impresum`)
	ulupuhTitleRe = regexp.MustCompile(`(?i)natječaj|izložb|zgraf|poziv|award`)
)

func NewUlupuh(opts Options) *Ulupuh {
	return &Ulupuh{
		URL:         "https://ulupuh.hr/natjecaji-i-izlozbe/",
		FallbackURL: "https://ulupuh.hr/",
		opts:        opts.withDefaults(),
	}
}

func (s *Ulupuh) Name() string { return "ulupuh.hr" }

func (s *Ulupuh) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
	html, ok := f.Fetch(ctx, s.URL)
	if !ok {
		html, ok = f.Fetch(ctx, s.FallbackURL)
		if !ok {
			return nil, nil
		}
	}

	seen := make(map[string]bool)
	var records []competition.Record
	for _, m := range ulupuhLinkRe.FindAllStringSubmatch(html, -1) {
		link := m[1]
		title := htmltext.DecodeEntities(strings.TrimSpace(m[2]))
		if seen[link] || ulupuhSkipRe.MatchString(link) {
			continue
		}
		if !ulupuhTitleRe.MatchString(title) {
			continue
		}
		seen[link] = true
		records = append(records, competition.Record{
			Title:    title,
			Link:     link,
			Org:      "ULUPUH",
			Category: classify.Category(title),
			Status:   competition.StatusActive,
			Prize:    "Vidi detalje",
		})
		if len(records) >= ulupuhCap {
			break
		}
	}
	return records, nil
}
