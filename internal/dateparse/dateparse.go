// Package dateparse extracts submission deadlines from free-form Croatian and
// English text.
//
// Competition pages spell out deadlines in several shapes: the Croatian
// genitive long form ("26. siječnja 2026"), dotted numerals ("5.12.2025"),
// English long forms ("February 20, 2026", "20 February 2026") and plain ISO
// dates. FindDate tries these families in a fixed priority order so that
// locale-specific patterns are never misread as ambiguous numeric ones.
package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// croMonths maps Croatian genitive month names to zero-padded month numbers.
// November has two accepted spellings.
var croMonths = map[string]string{
	"siječnja":  "01",
	"veljače":   "02",
	"ožujka":    "03",
	"travnja":   "04",
	"svibnja":   "05",
	"lipnja":    "06",
	"srpnja":    "07",
	"kolovoza":  "08",
	"rujna":     "09",
	"listopada": "10",
	"studenoga": "11",
	"studenog":  "11",
	"prosinca":  "12",
}

var engMonths = map[string]string{
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"jun": "06", "jul": "07", "aug": "08", "sep": "09",
	"oct": "10", "nov": "11", "dec": "12",
}

var (
	croLongRe = regexp.MustCompile(`(?i)(\d{1,2})\.\s*(siječnja|veljače|ožujka|travnja|svibnja|lipnja|srpnja|kolovoza|rujna|listopada|studenoga|studenog|prosinca)\s*(\d{4})`)
	dottedRe  = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	engMDYRe  = regexp.MustCompile(`(?i)([a-zA-Z]+)\s+(\d{1,2}),?\s*(\d{4})`)
	engDMYRe  = regexp.MustCompile(`(?i)(\d{1,2})\s+([a-zA-Z]+)\s+(\d{4})`)
	isoRe     = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)

	remainingRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(day|week|month)`)
)

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// FindDate scans text for the first recognizable date and returns it as an
// ISO YYYY-MM-DD string, or "" when no pattern matches. Croatian forms are
// tried before numeric and English ones.
func FindDate(text string) string {
	if text == "" {
		return ""
	}

	if m := croLongRe.FindStringSubmatch(text); m != nil {
		if month, ok := croMonths[strings.ToLower(m[2])]; ok {
			return fmt.Sprintf("%s-%s-%s", m[3], month, pad2(m[1]))
		}
	}

	if m := dottedRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1]))
	}

	// "February 20, 2026"
	if m := engMDYRe.FindStringSubmatch(text); m != nil {
		if month, ok := engMonths[strings.ToLower(m[1])]; ok {
			return fmt.Sprintf("%s-%s-%s", m[3], month, pad2(m[2]))
		}
	}

	// "20 February 2026"
	if m := engDMYRe.FindStringSubmatch(text); m != nil {
		if month, ok := engMonths[strings.ToLower(m[2])]; ok {
			return fmt.Sprintf("%s-%s-%s", m[3], month, pad2(m[1]))
		}
	}

	if m := isoRe.FindString(text); m != "" {
		return m
	}

	return ""
}

// FromRemaining resolves relative-time phrases like "21 days remaining" or
// "3+ weeks" into an absolute ISO date projected forward from now.
// Returns "" when no such phrase is present.
func FromRemaining(text string, now time.Time) string {
	if text == "" {
		return ""
	}
	m := remainingRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}

	var d time.Time
	switch strings.ToLower(m[2]) {
	case "day":
		d = now.AddDate(0, 0, n)
	case "week":
		d = now.AddDate(0, 0, n*7)
	default: // month
		d = now.AddDate(0, n, 0)
	}
	return d.Format("2006-01-02")
}
