package sources

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mslovenc/DizajnRadar/internal/classify"
	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/dateparse"
	"github.com/mslovenc/DizajnRadar/internal/htmltext"
)

// HDLU scrapes the Croatian Association of Fine Artists open-call listing.
type HDLU struct {
	URL  string
	opts Options
}

const hdluCap = 6

var hdluCallRe = regexp.MustCompile(`(?i)natječaj|poziv|open call|izložb`)

func NewHDLU(opts Options) *HDLU {
	return &HDLU{URL: "https://www.hdlu.hr/natjecaji/", opts: opts.withDefaults()}
}

func (s *HDLU) Name() string { return "hdlu.hr" }

func (s *HDLU) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
	html, ok := f.Fetch(ctx, s.URL)
	if !ok {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	now := s.opts.Now()
	seen := make(map[string]bool)
	var records []competition.Record
	doc.Find("h2 a, h3 a, .entry-title a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title := htmltext.DecodeEntities(strings.TrimSpace(a.Text()))
		href, _ := a.Attr("href")
		if len(title) < 10 || href == "" || seen[href] || !hdluCallRe.MatchString(title) {
			return true
		}
		seen[href] = true

		link := href
		if strings.HasPrefix(link, "/") {
			link = "https://www.hdlu.hr" + link
		}

		rowText := strings.TrimSpace(a.Closest("article, li, div").Text())
		deadline := dateparse.FindDate(rowText)

		org := classify.Organizer(rowText)
		if org == "" {
			org = "HDLU"
		}

		records = append(records, competition.Record{
			Title:    title,
			Link:     link,
			Org:      org,
			Category: classify.Category(title),
			Status:   classify.Status(title+" "+rowText, deadline, now, s.opts.ClosedAfter),
			Deadline: deadline,
			Prize:    classify.Prize(rowText),
		})
		return len(records) < hdluCap
	})
	return records, nil
}
