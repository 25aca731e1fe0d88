package sources

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/mslovenc/DizajnRadar/internal/classify"
	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/dateparse"
	"github.com/mslovenc/DizajnRadar/internal/htmltext"
)

const (
	contestWatchersURL        = "https://www.contestwatchers.com/category/visual-arts/graphic-design/"
	contestWatchersDefaultOrg = "Međunarodni natječaj"
	contestWatchersNearWindow = 600
)

var (
	cwEntryRe     = regexp.MustCompile(`(?i)<h[23][^>]*>\s*<a[^>]*href="(https://www\.contestwatchers\.com/(?:[^"]+))"[^>]*>([^<]+)</a>`)
	cwSkipLinkRe  = regexp.MustCompile(`contestwatchers\.com/(category|page|feed)`)
	cwRemainingRe = regexp.MustCompile(`(?i)(\d+\+?\s*(?:days?|weeks?|months?)\s*remaining)`)
	cwExpiringRe  = regexp.MustCompile(`(?i)(?:expiring|closing|expires?|closes?)\s+(?:on\s+)?(\d{1,2}\s+\w+\s+\d{4})`)
	cwDeadlineRe  = regexp.MustCompile(`(?i)deadline[:\s]*([^.!?\n]{5,60})`)
	cwVisitRe     = regexp.MustCompile(`(?i)<a[^>]*href="(https?://[^"]+)"[^>]*>\s*Visit\s+Official\s+Website`)
	cwExternalRe  = regexp.MustCompile(`(?i)<a[^>]*href="(https?://[^"]+)"[^>]*>[^<]*(?:enter|submit|visit|official|website|apply)[^<]*`)
	cwOwnHostRe   = regexp.MustCompile(`^https?://www\.contestwatchers\.com`)

	orgTrailYearRe  = regexp.MustCompile(`\s*\d{4}.*$`)
	orgTrailPunctRe = regexp.MustCompile(`\s*[-–:].*$`)
)

// ContestWatchers scrapes the graphic-design category of an international
// contest directory. The listing shows only relative time ("21 days
// remaining"), so every entry's detail page is fetched for the exact closing
// date and for the official external application link, which replaces the
// directory URL when found.
type ContestWatchers struct {
	URL  string
	opts Options
}

func NewContestWatchers(opts Options) *ContestWatchers {
	return &ContestWatchers{URL: contestWatchersURL, opts: opts.withDefaults()}
}

func (s *ContestWatchers) Name() string { return "contestwatchers.com" }

type cwEntry struct {
	link      string
	title     string
	remaining string
	free      bool
}

func (s *ContestWatchers) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
	html, ok := f.Fetch(ctx, s.URL)
	if !ok {
		return nil, nil
	}

	var entries []cwEntry
	for _, m := range cwEntryRe.FindAllStringSubmatchIndex(html, -1) {
		link := html[m[2]:m[3]]
		if cwSkipLinkRe.MatchString(link) {
			continue
		}
		// Listing decorations (time remaining, free-entry badge) sit close
		// after the heading.
		end := m[0] + contestWatchersNearWindow
		if end > len(html) {
			end = len(html)
		}
		near := html[m[0]:end]
		var remaining string
		if rm := cwRemainingRe.FindStringSubmatch(near); rm != nil {
			remaining = rm[1]
		}
		entries = append(entries, cwEntry{
			link:      link,
			title:     htmltext.DecodeEntities(strings.TrimSpace(html[m[4]:m[5]])),
			remaining: remaining,
			free:      strings.Contains(near, "Free"),
		})
	}

	pages := make([]string, len(entries))
	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Add(1)
		go func(i int, link string) {
			defer wg.Done()
			if body, ok := f.Fetch(ctx, link); ok {
				pages[i] = body
			}
		}(i, e.link)
	}
	wg.Wait()

	now := s.opts.Now()
	var records []competition.Record
	for i, e := range entries {
		deadline := ""
		link := e.link
		if pages[i] != "" {
			page := scriptBlockRe.ReplaceAllString(pages[i], "")
			text := htmltext.StripTags(page)
			if m := cwExpiringRe.FindStringSubmatch(text); m != nil {
				deadline = dateparse.FindDate(m[1])
			}
			if deadline == "" {
				if m := cwDeadlineRe.FindStringSubmatch(text); m != nil {
					deadline = dateparse.FindDate(m[1])
				} else {
					deadline = dateparse.FindDate(excerpt(text, 3000))
				}
			}
			if ext := s.externalLink(page); ext != "" {
				link = ext
			}
		}
		if deadline == "" {
			deadline = dateparse.FromRemaining(e.remaining, now)
		}

		org := orgTrailYearRe.ReplaceAllString(e.title, "")
		org = orgTrailPunctRe.ReplaceAllString(org, "")
		org = excerpt(org, 50)
		if org == "" {
			org = contestWatchersDefaultOrg
		}

		prize := "Vidi detalje"
		if e.free {
			prize = "Besplatna prijava"
		}

		records = append(records, competition.Record{
			Title:    e.title,
			Link:     link,
			Org:      org,
			Category: classify.Category(e.title),
			Status:   competition.StatusActive,
			Deadline: deadline,
			Prize:    prize,
		})
	}
	return records, nil
}

// externalLink finds the official application URL on a detail page,
// preferring the explicit "Visit Official Website" anchor over any other
// outbound enter/submit/apply link.
func (s *ContestWatchers) externalLink(page string) string {
	for _, m := range cwVisitRe.FindAllStringSubmatch(page, -1) {
		if !cwOwnHostRe.MatchString(m[1]) {
			return m[1]
		}
	}
	for _, m := range cwExternalRe.FindAllStringSubmatch(page, -1) {
		if !cwOwnHostRe.MatchString(m[1]) {
			return m[1]
		}
	}
	return ""
}
