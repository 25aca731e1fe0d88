package sources

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/mslovenc/DizajnRadar/internal/classify"
	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/dateparse"
	"github.com/mslovenc/DizajnRadar/internal/htmltext"
)

const bigSeeOrg = "BIG SEE / Zavod Big"

// trailing "- subtitle", "| site name" cruft on page titles
var titleCruftRe = regexp.MustCompile(`\s*[-–|].*$`)

type bigSeePage struct {
	url      string
	category string
}

// BigSee scrapes the fixed set of BIG SEE award pages, one record per award
// program. The category is known per page; only the title, deadline and
// status come from the markup.
type BigSee struct {
	Pages []bigSeePage
	opts  Options
}

func NewBigSee(opts Options) *BigSee {
	return &BigSee{
		Pages: []bigSeePage{
			{"https://bigsee.eu/big-see-architecture-award/", classify.CategoryArchitecture},
			{"https://bigsee.eu/big-see-product-design-award/", classify.CategoryIndustrial},
			{"https://bigsee.eu/big-see-visionaries/", classify.CategoryGraphicDesign},
			{"https://bigsee.eu/big-see-interior-design-award/", classify.CategoryArchitecture},
			{"https://bigsee.eu/big-see-fashion-design-award/", classify.CategoryFashion},
			{"https://bigsee.eu/big-see-wood-design-award/", classify.CategoryIndustrial},
		},
		opts: opts.withDefaults(),
	}
}

func (s *BigSee) Name() string { return "bigsee.eu" }

func (s *BigSee) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
	pages := make([]string, len(s.Pages))
	var wg sync.WaitGroup
	for i, p := range s.Pages {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			if body, ok := f.Fetch(ctx, url); ok {
				pages[i] = body
			}
		}(i, p.url)
	}
	wg.Wait()

	now := s.opts.Now()
	var records []competition.Record
	for i, p := range s.Pages {
		if pages[i] == "" {
			continue
		}

		title := "BIG SEE Award"
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(pages[i])); err == nil {
			heading := strings.TrimSpace(doc.Find("h1").First().Text())
			if heading == "" {
				heading = strings.TrimSpace(doc.Find("title").First().Text())
			}
			if heading != "" {
				title = htmltext.DecodeEntities(titleCruftRe.ReplaceAllString(heading, ""))
			}
		}

		text := htmltext.StripTags(excerpt(pages[i], 5000))
		deadline := dateparse.FindDate(text)

		records = append(records, competition.Record{
			Title:    title,
			Link:     p.url,
			Org:      bigSeeOrg,
			Category: p.category,
			Status:   classify.Status(text, deadline, now, s.opts.ClosedAfter),
			Deadline: deadline,
			Prize:    "Međunarodna nagrada",
		})
	}
	return records, nil
}
