// Package classify infers competition fields from free text.
//
// Every classifier is an ordered list of (pattern, result) rules evaluated in
// sequence over lower-cased text; the first matching rule wins and a fallback
// guarantees a total function. Rules stay data so new ones can be inserted or
// reordered without touching control flow.
package classify

import (
	"regexp"
	"strings"
	"time"

	"github.com/mslovenc/DizajnRadar/internal/competition"
)

// Category taxonomy. Labels are localized, matching the natjecaji table.
const (
	CategoryVisualIdentity = "Vizualni identitet"
	CategoryIllustration   = "Ilustracija"
	CategoryBookDesign     = "Dizajn knjige"
	CategoryUXUI           = "UX/UI dizajn"
	CategoryGraphicDesign  = "Grafički dizajn"
	CategoryFashion        = "Modni dizajn"
	CategoryIndustrial     = "Industrijski dizajn"
	CategoryArchitecture   = "Arhitektura"
	CategoryTypography     = "Tipografija"
	CategoryPackaging      = "Dizajn ambalaže"
	CategoryCommunication  = "Komunikacijski dizajn"
)

// Prize fallbacks.
const (
	PrizeUnspecified = "Nije navedeno"
	PrizeSeeDetails  = "Da (vidi detalje)"
)

type rule struct {
	pattern *regexp.Regexp
	result  string
}

// categoryRules is evaluated top to bottom; keyword groups are bilingual.
var categoryRules = []rule{
	{regexp.MustCompile(`vizualni identitet|visual identity|logotip|brand`), CategoryVisualIdentity},
	{regexp.MustCompile(`ilustraci|illustrat`), CategoryIllustration},
	{regexp.MustCompile(`knjig|book`), CategoryBookDesign},
	{regexp.MustCompile(`\bux\b|\bui\b|web|digital|interaction`), CategoryUXUI},
	{regexp.MustCompile(`plakat|poster`), CategoryGraphicDesign},
	{regexp.MustCompile(`modn|fashion`), CategoryFashion},
	{regexp.MustCompile(`produkt|product|industrijski|industrial`), CategoryIndustrial},
	{regexp.MustCompile(`architectur|arhitektur|interior`), CategoryArchitecture},
	{regexp.MustCompile(`typograph|tipografi|type design|font`), CategoryTypography},
	{regexp.MustCompile(`packaging|package|ambalaž`), CategoryPackaging},
	{regexp.MustCompile(`communicat|komunikaci`), CategoryCommunication},
}

// Category maps free text to exactly one taxonomy label.
func Category(text string) string {
	t := strings.ToLower(text)
	for _, r := range categoryRules {
		if r.pattern.MatchString(t) {
			return r.result
		}
	}
	return CategoryGraphicDesign
}

var (
	closedRe = regexp.MustCompile(`rezultat|odabran|proglašen|završen|winner|result|selected|awarded`)
	noiseRe  = regexp.MustCompile(`izložb|exhibition|radionic|workshop|webinar|predavanj|lecture|zapošljav|posao|job opening|hiring`)
	callRe   = regexp.MustCompile(`natječaj|poziv|prijav|rok za|call for|open call|submit|apply|entries`)
)

// Status derives the lifecycle label from text and deadline. Result and award
// announcements are closed regardless of deadline. Exhibition, job, workshop
// and lecture notices without any call-for-entry keyword are news, not live
// competitions. Everything else is closed once the deadline is more than
// closedAfter in the past, otherwise active.
func Status(text, deadline string, now time.Time, closedAfter time.Duration) string {
	t := strings.ToLower(text)
	if closedRe.MatchString(t) {
		return competition.StatusClosed
	}
	if noiseRe.MatchString(t) && !callRe.MatchString(t) {
		return competition.StatusNews
	}
	if competition.IsStale(deadline, now, closedAfter) {
		return competition.StatusClosed
	}
	return competition.StatusActive
}

var (
	prizeAmountRe  = regexp.MustCompile(`(?i)([\d.,]+)\s*(EUR|€|eura)`)
	prizeKeywordRe = regexp.MustCompile(`(?i)nagrada|naknada|award|prize`)
)

// Prize extracts a compensation description: an explicit EUR amount when one
// is stated, a see-details placeholder when award keywords appear, otherwise
// the not-specified fallback.
func Prize(text string) string {
	if m := prizeAmountRe.FindStringSubmatch(text); m != nil {
		return m[1] + " EUR"
	}
	if prizeKeywordRe.MatchString(text) {
		return PrizeSeeDetails
	}
	return PrizeUnspecified
}

// organizerRules: explicit labels first, then known organization tokens, then
// common Croatian institution name shapes. First capture wins.
var organizerRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:organizator|raspisivač|provoditelj)[:\s]+([A-ZČĆŽŠĐ][^.,;]{3,40})`),
	regexp.MustCompile(`(POGON|Školska knjiga|ULUPUH|NSK|HDD|HDLU|HAC|HAKOM|KGZ)`),
	regexp.MustCompile(`(?i)(Grad\s+\p{L}+)`),
	regexp.MustCompile(`(?i)(Hrvatsko\s+\p{L}+\s+\p{L}+)`),
	regexp.MustCompile(`(?i)(Knjižnice\s+grada\s+\p{L}+)`),
}

// Organizer extracts the organizing body from text, or "" when no pattern
// matches; the calling adapter supplies its own default.
func Organizer(text string) string {
	for _, re := range organizerRules {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
