// Package task defines the task row model and per-line field parsing:
// priority marks, due date directives, tags, and the actionable rule.
package task

import "regexp"

const (
	// NoDate is the due value for tasks without one. The value sorts
	// after any real ISO date.
	NoDate = "9999"

	// NoTags is the synthetic tag bucket for tasks carrying no tags.
	// Must stay lower case, tag matching is case-insensitive.
	NoTags = "__no_tags__"
)

var tagRe = regexp.MustCompile(`(^|\s)@(\w+)\b`)

// Fields holds everything parsed out of a single task line.
type Fields struct {
	Open        bool   `json:"open"`
	Actionable  bool   `json:"actionable"`
	Priority    int    `json:"priority"`
	Due         string `json:"due"`
	Description string `json:"description"`
}

// Task is one stored row. Parent is 0 for top level tasks of a document.
type Task struct {
	ID          int64 `json:"id"`
	Source      int64 `json:"source"`
	Parent      int64 `json:"parent"`
	HasChildren bool  `json:"haschildren"`
	Fields
}

// Tags returns the @-tags found in the description, in order of
// appearance, case preserved.
func (f Fields) Tags() []string {
	var tags []string
	for _, m := range tagRe.FindAllStringSubmatch(f.Description, -1) {
		tags = append(tags, m[2])
	}
	return tags
}

// HasDue reports whether the task carries a real due date.
func (f Fields) HasDue() bool {
	return f.Due != "" && f.Due != NoDate
}
