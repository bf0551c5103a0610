package task

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	directiveRe = regexp.MustCompile(`\s*\[d:(.+?)\]`)
	dayMonthRe  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?$`)
)

// ParseDue extracts the first parseable "[d:...]" directive from text. It
// returns the due date as an ISO string and the text with the directive
// removed. When no directive parses, the text comes back untouched and
// the due date is the NoDate sentinel. Later directives in the same text
// are always left verbatim.
func ParseDue(text string) (due string, remainder string, ok bool) {
	for _, loc := range directiveRe.FindAllStringSubmatchIndex(text, -1) {
		date, err := parseDate(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		return date, text[:loc[0]] + text[loc[1]:], true
	}
	return NoDate, text, false
}

// parseDate accepts ISO dates and day/month forms, defaulting the year to
// the current one.
func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{"2006-01-02", "2006-1-2"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}

	m := dayMonthRe.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("task: not a date: %q", s)
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := time.Now().Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("task: not a date: %q", s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return "", fmt.Errorf("task: not a date: %q", s)
	}
	return t.Format("2006-01-02"), nil
}
