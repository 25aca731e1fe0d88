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

// KGZ scrapes the Zagreb City Libraries news listing, which periodically
// announces literary and design calls (ex libris, poster and book design).
type KGZ struct {
	URL  string
	opts Options
}

const kgzCap = 5

var kgzCallRe = regexp.MustCompile(`(?i)natječaj|poziv`)

func NewKGZ(opts Options) *KGZ {
	return &KGZ{URL: "https://www.kgz.hr/hr/novosti/", opts: opts.withDefaults()}
}

func (s *KGZ) Name() string { return "kgz.hr" }

func (s *KGZ) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
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
	doc.Find("h2 a, h3 a, .news-item a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title := htmltext.DecodeEntities(strings.TrimSpace(a.Text()))
		href, _ := a.Attr("href")
		if len(title) < 10 || href == "" || seen[href] || !kgzCallRe.MatchString(title) {
			return true
		}
		seen[href] = true

		link := href
		if strings.HasPrefix(link, "/") {
			link = "https://www.kgz.hr" + link
		}

		rowText := strings.TrimSpace(a.Closest("li, article, div").Text())
		deadline := dateparse.FindDate(rowText)

		records = append(records, competition.Record{
			Title:    title,
			Link:     link,
			Org:      "Knjižnice grada Zagreba",
			Category: classify.Category(title),
			Status:   classify.Status(title+" "+rowText, deadline, now, s.opts.ClosedAfter),
			Deadline: deadline,
			Prize:    classify.Prize(rowText),
		})
		return len(records) < kgzCap
	})
	return records, nil
}
