package notebook

import (
	"regexp"
	"strings"
	"time"
)

var (
	dayPageRe   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	monthPageRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	yearPageRe  = regexp.MustCompile(`^\d{4}$`)
	numericRe   = regexp.MustCompile(`^\d{1,4}$`)
)

const layoutISO = "2006-01-02"

// DefaultDate derives the implicit due date for calendar-style page
// names: day pages due that day, month and year pages due at the end of
// their range. Non-calendar names yield "".
//
// Both flat names ("Journal/2024-03-01") and nested ones
// ("Journal/2024/03/01") are recognized.
func DefaultDate(name string) string {
	parts := strings.Split(name, "/")
	if len(parts) == 0 {
		return ""
	}

	// Nested numeric segments: yyyy/mm/dd or yyyy/mm.
	if joined := joinNumericTail(parts); joined != "" {
		if d := calendarDeadline(joined); d != "" {
			return d
		}
	}

	return calendarDeadline(parts[len(parts)-1])
}

func joinNumericTail(parts []string) string {
	var tail []string
	for i := len(parts) - 1; i >= 0 && len(tail) < 3; i-- {
		if !numericRe.MatchString(parts[i]) {
			break
		}
		tail = append([]string{parts[i]}, tail...)
	}
	if len(tail) < 2 {
		return ""
	}
	for i, s := range tail {
		if i > 0 && len(s) == 1 {
			tail[i] = "0" + s
		}
	}
	return strings.Join(tail, "-")
}

func calendarDeadline(name string) string {
	if m := dayPageRe.FindStringSubmatch(name); m != nil {
		if t, err := time.Parse(layoutISO, name); err == nil {
			return t.Format(layoutISO)
		}
		return ""
	}
	if m := monthPageRe.FindStringSubmatch(name); m != nil {
		if t, err := time.Parse("2006-01", name); err == nil {
			// Last day of the month.
			return t.AddDate(0, 1, -1).Format(layoutISO)
		}
		return ""
	}
	if yearPageRe.MatchString(name) {
		if t, err := time.Parse("2006", name); err == nil {
			return t.AddDate(1, 0, -1).Format(layoutISO)
		}
	}
	return ""
}
