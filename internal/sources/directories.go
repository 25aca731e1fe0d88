package sources

import (
	"context"
	"regexp"
	"strings"

	"github.com/mslovenc/DizajnRadar/internal/classify"
	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/htmltext"
)

// GraphicCompetitions scrapes the graphiccompetitions.com front page. Entries
// are recognized purely by URL shape and anchor-text length; navigation and
// taxonomy links are filtered out. The listing carries no deadlines.
type GraphicCompetitions struct {
	URL  string
	opts Options
}

const graphicCompetitionsCap = 10

var (
	gcEntryRe = regexp.MustCompile(`(?is)<a[^>]*href="(https://graphiccompetitions\.com/[^"]*/[^"]+)"[^>]*>\s*([^<]{10,100})\s*</a>`)
	gcSkipRe  = regexp.MustCompile(`(?i)privacy|terms|about|contact|type/|category/`)
)

func NewGraphicCompetitions(opts Options) *GraphicCompetitions {
	return &GraphicCompetitions{URL: "https://graphiccompetitions.com/", opts: opts.withDefaults()}
}

func (s *GraphicCompetitions) Name() string { return "graphiccompetitions.com" }

func (s *GraphicCompetitions) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
	html, ok := f.Fetch(ctx, s.URL)
	if !ok {
		return nil, nil
	}

	seen := make(map[string]bool)
	var records []competition.Record
	for _, m := range gcEntryRe.FindAllStringSubmatch(html, -1) {
		link := m[1]
		title := htmltext.DecodeEntities(strings.TrimSpace(m[2]))
		if seen[link] || gcSkipRe.MatchString(link) {
			continue
		}
		if len(title) < 10 || len(title) > 100 {
			continue
		}
		seen[link] = true
		records = append(records, competition.Record{
			Title:    title,
			Link:     link,
			Org:      excerpt(orgTrailYearRe.ReplaceAllString(title, ""), 50),
			Category: classify.Category(title),
			Status:   competition.StatusActive,
			Prize:    "Vidi detalje",
		})
		if len(records) >= graphicCompetitionsCap {
			break
		}
	}
	return records, nil
}

// Dezeen scrapes the Dezeen competitions hub. Article links carry their
// publication date in the URL path, which is the structural filter.
type Dezeen struct {
	URL  string
	opts Options
}

const dezeenCap = 8

var dezeenEntryRe = regexp.MustCompile(`(?i)<a[^>]*href="(https://www\.dezeen\.com/\d{4}/\d{2}/\d{2}/[^"]+)"[^>]*>([^<]{15,120})</a>`)

func NewDezeen(opts Options) *Dezeen {
	return &Dezeen{URL: "https://www.dezeen.com/competitions/", opts: opts.withDefaults()}
}

func (s *Dezeen) Name() string { return "dezeen.com" }

func (s *Dezeen) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
	html, ok := f.Fetch(ctx, s.URL)
	if !ok {
		return nil, nil
	}

	seen := make(map[string]bool)
	var records []competition.Record
	for _, m := range dezeenEntryRe.FindAllStringSubmatch(html, -1) {
		link := m[1]
		if seen[link] {
			continue
		}
		seen[link] = true
		title := htmltext.DecodeEntities(strings.TrimSpace(m[2]))
		records = append(records, competition.Record{
			Title:    title,
			Link:     link,
			Org:      "Dezeen",
			Category: classify.Category(title),
			Status:   competition.StatusActive,
			Prize:    "Vidi detalje",
		})
		if len(records) >= dezeenCap {
			break
		}
	}
	return records, nil
}
