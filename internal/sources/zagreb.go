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

// Zagreb scrapes the City of Zagreb public-call portal. Municipal tenders
// cover far more than design, so anchors are kept only when they read like a
// design-adjacent call. Deadlines are frequently printed right in the anchor
// row, so the surrounding list item text is scanned too.
type Zagreb struct {
	URL  string
	opts Options
}

const zagrebCap = 6

var zagrebCallRe = regexp.MustCompile(`(?i)natječaj|javni poziv|poziv za`)
var zagrebDesignRe = regexp.MustCompile(`(?i)dizajn|vizualn|likovn|umjetni|plakat|spomenik|urbanistič|arhitektonsk`)

func NewZagreb(opts Options) *Zagreb {
	return &Zagreb{URL: "https://www.zagreb.hr/natjecaji/", opts: opts.withDefaults()}
}

func (s *Zagreb) Name() string { return "zagreb.hr" }

func (s *Zagreb) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
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
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title := htmltext.DecodeEntities(strings.TrimSpace(a.Text()))
		href, _ := a.Attr("href")
		if len(title) < 10 || href == "" || seen[href] {
			return true
		}
		if !zagrebCallRe.MatchString(title) || !zagrebDesignRe.MatchString(title) {
			return true
		}
		seen[href] = true

		link := href
		if strings.HasPrefix(link, "/") {
			link = "https://www.zagreb.hr" + link
		}

		// The enclosing row often carries the submission deadline.
		rowText := strings.TrimSpace(a.Closest("li, tr, article, div").Text())
		deadline := dateparse.FindDate(rowText)

		records = append(records, competition.Record{
			Title:    title,
			Link:     link,
			Org:      "Grad Zagreb",
			Category: classify.Category(title),
			Status:   classify.Status(title+" "+rowText, deadline, now, s.opts.ClosedAfter),
			Deadline: deadline,
			Prize:    classify.Prize(rowText),
		})
		return len(records) < zagrebCap
	})
	return records, nil
}
