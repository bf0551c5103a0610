package task

import "strings"

// ParseInput carries the inherited context for parsing one task line.
type ParseInput struct {
	// Open is the state derived from the bullet kind. Label-only lines
	// without a checkbox are always open.
	Open bool

	// GlobalTags from a task list header are appended to the
	// description when not already present.
	GlobalTags []string

	// DefaultDate is the due date inherited from the nearest ancestor
	// with one, or the document default.
	DefaultDate string

	// DefaultPriority is inherited from the parent task and applies
	// only when the line itself carries no priority marks.
	DefaultPriority int

	// PrevSibling is the last task already collected at the same
	// nesting level, used by the next-item actionable rule.
	PrevSibling *Fields
}

// ParseFields parses one task line into its fields.
func (l *Labels) ParseFields(text string, in ParseInput) Fields {
	prio := strings.Count(text, "!")
	if prio == 0 && in.DefaultPriority > 0 {
		prio = in.DefaultPriority
	}

	for _, tag := range in.GlobalTags {
		if !strings.Contains(text, tag) {
			text += " " + tag
		}
	}

	due, text, ok := ParseDue(text)
	if !ok && in.DefaultDate != "" {
		due = in.DefaultDate
	}

	// Only the first still-open next-item in a sequence is actionable.
	actionable := true
	if l.MatchesNext(text) && in.PrevSibling != nil && in.PrevSibling.Open {
		actionable = false
	}

	return Fields{
		Open:        in.Open,
		Actionable:  actionable,
		Priority:    prio,
		Due:         due,
		Description: text,
	}
}
