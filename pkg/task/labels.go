package task

import (
	"regexp"
	"strings"
)

// DefaultLabels is the out of the box label set, kept in sync with the
// config default.
const (
	DefaultLabels    = "FIXME, TODO"
	DefaultNextLabel = "Next:"
)

// Labels is the configured set of marker words recognized at the start of
// a line, plus the designated next-item label.
type Labels struct {
	All  []string // ordered, includes the next label when set
	Next string

	labelRe *regexp.Regexp
	nextRe  *regexp.Regexp
}

// NewLabels builds a label matcher from a comma separated label list and
// the next-item label. An empty next label disables the actionable rule.
func NewLabels(labels, next string) *Labels {
	l := &Labels{}

	if s := strings.Trim(labels, " ,"); s != "" {
		for _, part := range strings.Split(s, ",") {
			l.All = append(l.All, strings.TrimSpace(part))
		}
	}

	if next != "" {
		l.Next = next
		// Accepting an optional extra colon avoids the need for
		// things like "TODO: Next: do this next".
		l.nextRe = regexp.MustCompile(`^` + regexp.QuoteMeta(next) + `:?\s+`)
		l.All = append(l.All, next)
	}

	if len(l.All) > 0 {
		alts := make([]string, len(l.All))
		for i, label := range l.All {
			alts[i] = regexp.QuoteMeta(label) + wordBoundary(label)
		}
		l.labelRe = regexp.MustCompile(`^(` + strings.Join(alts, "|") + `)`)
	}

	return l
}

// wordBoundary keeps "TODO" from matching "TODOS". Labels ending in
// punctuation ("Next:") need no boundary.
func wordBoundary(label string) string {
	if label == "" {
		return ""
	}
	c := label[len(label)-1]
	if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return `\b`
	}
	return ""
}

// MatchLabel returns the label found at the start of text, if any.
func (l *Labels) MatchLabel(text string) (string, bool) {
	if l == nil || l.labelRe == nil {
		return "", false
	}
	m := l.labelRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MatchesNext reports whether text starts with the next-item label.
func (l *Labels) MatchesNext(text string) bool {
	return l != nil && l.nextRe != nil && l.nextRe.MatchString(text)
}

// StripNext removes a leading next-item label from text.
func (l *Labels) StripNext(text string) string {
	if l == nil || l.nextRe == nil {
		return text
	}
	return l.nextRe.ReplaceAllString(text, "")
}
