// Package calendar renders competition deadlines as an iCalendar feed so
// they can be imported into a personal calendar.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/mslovenc/DizajnRadar/internal/competition"
)

// GenerateICS generates an iCalendar (.ics) document with one all-day
// VEVENT per record that carries a deadline. Records without a parseable
// deadline are skipped.
func GenerateICS(records []competition.Record, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//DizajnRadar//dizajnradar//HR\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	stamp := formatICSTime(now.UTC())
	for _, rec := range records {
		deadline, err := time.Parse("2006-01-02", rec.Deadline)
		if err != nil {
			continue
		}

		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s@dizajnradar\r\n", competition.NormalizationKey(rec.Title, 40)))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))

		// All-day event on the deadline date.
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", deadline.Format("20060102")))
		ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", deadline.AddDate(0, 0, 1).Format("20060102")))

		summary := fmt.Sprintf("Rok: %s", rec.Title)
		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

		description := fmt.Sprintf("Kategorija: %s\nOrganizator: %s\nNagrada: %s",
			rec.Category, rec.Org, rec.Prize)
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

		if rec.Link != "" {
			ics.WriteString(fmt.Sprintf("URL:%s\r\n", rec.Link))
		}

		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("SEQUENCE:0\r\n")
		ics.WriteString("TRANSP:TRANSPARENT\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
