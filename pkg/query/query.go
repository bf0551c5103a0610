// Package query answers filter questions over the stored task rows. It is
// a pure read: filtering never mutates the store and is cheap enough to
// re-run in full on every criteria change.
package query

import (
	"strings"

	"github.com/guildner/tasklist/pkg/task"
)

// TextFilter is a case-insensitive substring predicate over a task's
// description or its source document name. Negated inverts the match.
type TextFilter struct {
	Negated bool
	Needle  string
}

// ParseTextFilter turns user input into a TextFilter, supporting the
// "not ..." prefix for negation. Empty input means no text filtering.
func ParseTextFilter(s string) *TextFilter {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f := &TextFilter{}
	if strings.HasPrefix(strings.ToLower(s), "not ") {
		f.Negated = true
		s = s[4:]
	}
	f.Needle = strings.ToLower(strings.TrimSpace(s))
	return f
}

// Criteria is one filter request. Nil/empty dimensions are inactive;
// active dimensions combine with AND.
type Criteria struct {
	ActionableOnly bool
	Tags           []string // may include task.NoTags
	Labels         []string
	Text           *TextFilter
}

// Engine evaluates criteria against task rows.
type Engine struct {
	Labels *task.Labels

	// TagByPage treats the source document name segments as extra tags
	// on every row.
	TagByPage bool
}

// rowTags collects the effective tags of a row, lower cased.
func (e *Engine) rowTags(t task.Task, docName string) []string {
	var tags []string
	for _, tag := range t.Tags() {
		tags = append(tags, strings.ToLower(tag))
	}
	if e.TagByPage && docName != "" {
		for _, part := range strings.Split(docName, "/") {
			if part != "" {
				tags = append(tags, strings.ToLower(part))
			}
		}
	}
	return tags
}

// Visible computes the set of visible row ids for the criteria. A row is
// visible when it matches all active dimensions, or when any of its
// descendants does: visibility propagates to every ancestor so a match
// keeps its containing structure on screen.
func (e *Engine) Visible(rows []task.Task, docNames map[int64]string, c Criteria) map[int64]bool {
	byID := make(map[int64]task.Task, len(rows))
	for _, t := range rows {
		byID[t.ID] = t
	}

	visible := make(map[int64]bool, len(rows))
	for _, t := range rows {
		if !e.matches(t, docNames[t.Source], c) {
			continue
		}
		visible[t.ID] = true
		for parent := t.Parent; parent != 0; {
			p, ok := byID[parent]
			if !ok {
				break
			}
			visible[p.ID] = true
			parent = p.Parent
		}
	}
	return visible
}

func (e *Engine) matches(t task.Task, docName string, c Criteria) bool {
	if !t.Open {
		return false
	}
	if c.ActionableOnly && !t.Actionable {
		return false
	}

	description := strings.ToLower(t.Description)

	if len(c.Labels) > 0 {
		found := false
		for _, label := range c.Labels {
			if strings.Contains(description, strings.ToLower(label)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(c.Tags) > 0 {
		tags := e.rowTags(t, docName)
		found := false
		for _, want := range c.Tags {
			want = strings.ToLower(want)
			if want == task.NoTags && len(tags) == 0 {
				found = true
				break
			}
			for _, have := range tags {
				if have == want {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	if c.Text != nil {
		match := strings.Contains(description, c.Text.Needle) ||
			strings.Contains(strings.ToLower(docName), c.Text.Needle)
		if match == c.Text.Negated {
			return false
		}
	}

	return true
}
