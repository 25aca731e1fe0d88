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
	dizajnHrURL            = "https://dizajn.hr/natjecaji/"
	dizajnHrDefaultOrg     = "HDD / dizajn.hr"
	dizajnHrEntryCap       = 15
	dizajnHrPageExcerpt    = 2000
	dizajnHrSnippetExcerpt = 500
)

var (
	dizajnHrEntryRe = regexp.MustCompile(`(?i)<h2[^>]*>\s*<a[^>]*href="([^"]+)"[^>]*>([^<]+)</a>\s*</h2>`)
	ogDescriptionRe = regexp.MustCompile(`(?i)<meta[^>]*property="og:description"[^>]*content="([^"]+)"`)
	scriptBlockRe   = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleBlockRe    = regexp.MustCompile(`(?is)<style.*?</style>`)
	h2BlockRe       = regexp.MustCompile(`(?is)<h2.*?</h2>`)
)

// DizajnHr scrapes the Croatian Designers Association competition listing.
// The listing page carries titles and links only, so each entry's detail page
// is fetched for the og:description and body text where deadlines live. A
// failed detail fetch falls back to the listing snippet between entries.
type DizajnHr struct {
	URL  string
	opts Options
}

func NewDizajnHr(opts Options) *DizajnHr {
	return &DizajnHr{URL: dizajnHrURL, opts: opts.withDefaults()}
}

func (s *DizajnHr) Name() string { return "dizajn.hr" }

type dizajnHrEntry struct {
	link  string
	title string
	idx   int // byte offset of the entry heading in the listing page
}

func (s *DizajnHr) Scrape(ctx context.Context, f Fetcher) ([]competition.Record, error) {
	html, ok := f.Fetch(ctx, s.URL)
	if !ok {
		return nil, nil
	}

	var entries []dizajnHrEntry
	for _, m := range dizajnHrEntryRe.FindAllStringSubmatchIndex(html, -1) {
		entries = append(entries, dizajnHrEntry{
			link:  html[m[2]:m[3]],
			title: htmltext.DecodeEntities(strings.TrimSpace(html[m[4]:m[5]])),
			idx:   m[0],
		})
	}
	if len(entries) > dizajnHrEntryCap {
		entries = entries[:dizajnHrEntryCap]
	}

	// One detail fetch per entry, all in flight together. Failures leave the
	// slot empty and the listing snippet takes over.
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
		var fullText string
		if pages[i] != "" {
			page := scriptBlockRe.ReplaceAllString(pages[i], "")
			page = styleBlockRe.ReplaceAllString(page, "")
			var og string
			if m := ogDescriptionRe.FindStringSubmatch(page); m != nil {
				og = htmltext.DecodeEntities(m[1])
			}
			fullText = og + " " + excerpt(htmltext.StripTags(page), dizajnHrPageExcerpt)
		} else {
			end := len(html)
			if i+1 < len(entries) {
				end = entries[i+1].idx
			}
			snippet := h2BlockRe.ReplaceAllString(html[e.idx:end], "")
			fullText = excerpt(htmltext.StripTags(snippet), dizajnHrSnippetExcerpt)
		}

		deadline := dateparse.FindDate(fullText)
		if competition.IsStale(deadline, now, s.opts.StaleAfter) {
			continue
		}

		org := classify.Organizer(fullText)
		if org == "" {
			org = dizajnHrDefaultOrg
		}

		records = append(records, competition.Record{
			Title:    e.title,
			Link:     e.link,
			Org:      org,
			Category: classify.Category(e.title + " " + fullText),
			Status:   classify.Status(e.title+" "+fullText, deadline, now, s.opts.ClosedAfter),
			Deadline: deadline,
			Prize:    classify.Prize(fullText),
		})
	}
	return records, nil
}

// excerpt truncates s to at most n bytes without splitting a UTF-8 sequence.
func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
