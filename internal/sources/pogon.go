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

// Pogon scrapes the open calls of POGON, Zagreb's center for independent
// culture. Calls are short-lived and mostly for visual and performing arts.
type Pogon struct {
	URL  string
	opts Options
}

const pogonCap = 5

var pogonCallRe = regexp.MustCompile(`(?i)natječaj|poziv|open call`)

func NewPogon(opts Options) *Pogon {
	return &Pogon{URL: "https://www.pogon.hr/program/", opts: opts.withDefaults()}
}

func (s *Pogon) Name() string { return "pogon.hr" }

func (s *Pogon) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
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
	doc.Find("article a, h2 a, h3 a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title := htmltext.DecodeEntities(strings.TrimSpace(a.Text()))
		href, _ := a.Attr("href")
		if len(title) < 10 || href == "" || seen[href] || !pogonCallRe.MatchString(title) {
			return true
		}
		seen[href] = true

		link := href
		if strings.HasPrefix(link, "/") {
			link = "https://www.pogon.hr" + link
		}

		rowText := strings.TrimSpace(a.Closest("article, li, div").Text())
		deadline := dateparse.FindDate(rowText)

		records = append(records, competition.Record{
			Title:    title,
			Link:     link,
			Org:      "POGON",
			Category: classify.Category(title),
			Status:   classify.Status(title+" "+rowText, deadline, now, s.opts.ClosedAfter),
			Deadline: deadline,
			Prize:    classify.Prize(rowText),
		})
		return len(records) < pogonCap
	})
	return records, nil
}
