// Package competition defines the normalized competition record produced by
// every source adapter, plus the staleness predicates and the title
// normalization key used for cross-source deduplication.
package competition

import (
	"regexp"
	"strings"
	"time"
)

// Status values as stored in the natjecaji table. Labels are localized.
const (
	StatusActive = "Aktivno"
	StatusClosed = "Završeno"
	StatusNews   = "Novost"
)

// Record is one normalized competition listing. Title and Link are always
// present and non-empty; every other field may be defaulted or absent.
// Records are created fresh each run and never mutated after emission.
type Record struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Org      string `json:"org"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Deadline string `json:"deadline,omitempty"` // ISO YYYY-MM-DD, "" when unknown
	Prize    string `json:"prize"`
}

var titleYearRe = regexp.MustCompile(`\b(20\d{2})\b`)

// parseISO parses an ISO YYYY-MM-DD deadline. Zero time on failure.
func parseISO(deadline string) time.Time {
	t, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsStale reports whether a deadline exists and lies more than after in the
// past. Records without a deadline are never stale by this rule.
func IsStale(deadline string, now time.Time, after time.Duration) bool {
	if deadline == "" {
		return false
	}
	d := parseISO(deadline)
	if d.IsZero() {
		return false
	}
	return now.Sub(d) > after
}

// IsOldByTitle reports whether the first 4-digit year token in the title is
// more than one year older than now's year. Titles without a year token are
// never flagged.
func IsOldByTitle(title string, now time.Time) bool {
	m := titleYearRe.FindStringSubmatch(title)
	if m == nil {
		return false
	}
	year, _ := time.Parse("2006", m[1])
	return now.Year()-year.Year() > 1
}

// NormalizationKey canonicalizes a title for duplicate detection across
// sources: lower-cased, reduced to ASCII letters, Croatian diacritic letters
// and digits, and truncated to prefixLen runes.
func NormalizationKey(title string, prefixLen int) string {
	lower := strings.ToLower(title)
	var b strings.Builder
	n := 0
	for _, r := range lower {
		if n >= prefixLen {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == 'č', r == 'ć', r == 'ž', r == 'š', r == 'đ':
		default:
			continue
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
