// Package htmltext provides minimal HTML text cleanup for scraped markup.
//
// Source pages mix named and numeric character references and the scrapers
// frequently need the visible text of a fragment rather than its markup.
// DecodeEntities covers only the references that actually occur on the
// scraped sites; unknown references pass through untouched so the function
// is safe to apply repeatedly.
package htmltext

import (
	"regexp"
	"strings"
)

// entities maps the character references seen across the scraped sites.
// Deliberately not a full entity table.
var entities = map[string]string{
	"&amp;":   "&",
	"&lt;":    "<",
	"&gt;":    ">",
	"&quot;":  `"`,
	"&#039;":  "'",
	"&#8211;": "–",
	"&#8212;": "—",
	"&#8217;": "’",
	"&#8220;": "“",
	"&#8221;": "”",
	"&ndash;": "–",
	"&mdash;": "—",
	"&#038;":  "&",
	"&nbsp;":  " ",
	"&apos;":  "'",
}

var (
	entityRe = regexp.MustCompile(`&#?\w+;`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// DecodeEntities replaces known HTML character references with their literal
// characters. Unrecognized references are preserved verbatim.
func DecodeEntities(s string) string {
	return entityRe.ReplaceAllStringFunc(s, func(m string) string {
		if r, ok := entities[m]; ok {
			return r
		}
		return m
	})
}

// StripTags removes all <...> markup, collapses runs of whitespace to single
// spaces and trims the result. It does not decode entities; compose with
// DecodeEntities when both are needed.
func StripTags(html string) string {
	s := tagRe.ReplaceAllString(html, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
