package query

import (
	"sort"
	"strings"

	"github.com/guildner/tasklist/pkg/task"
)

// TagCount is the open-task count for one tag, with the display form of
// its first appearance.
type TagCount struct {
	Display string
	Count   int
}

// TagIndex maps lower cased tags to counts. The task.NoTags key counts
// open tasks without any tags.
type TagIndex map[string]TagCount

// LabelIndex maps labels (as configured, case preserved) to open-task
// counts.
type LabelIndex map[string]int

// Sorted returns the tag keys ordered by display form, NoTags excluded.
func (idx TagIndex) Sorted() []string {
	keys := make([]string, 0, len(idx))
	for key := range idx {
		if key != task.NoTags {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return idx[keys[i]].Display < idx[keys[j]].Display
	})
	return keys
}

// Indexes rebuilds the tag and label counts over all open rows. Tags
// merge case-insensitively while keeping the first seen display form.
func (e *Engine) Indexes(rows []task.Task, docNames map[int64]string) (TagIndex, LabelIndex) {
	tags := make(TagIndex)
	labels := make(LabelIndex)

	for _, t := range rows {
		if !t.Open {
			continue
		}

		// Labels count only at the start of a task line; a mid-text
		// mention is just prose.
		if label, ok := e.Labels.MatchLabel(t.Description); ok {
			labels[label]++
		}

		rowTags := t.Tags()
		if e.TagByPage {
			for _, part := range strings.Split(docNames[t.Source], "/") {
				if part != "" {
					rowTags = append(rowTags, part)
				}
			}
		}

		if len(rowTags) == 0 {
			noTags := tags[task.NoTags]
			noTags.Count++
			tags[task.NoTags] = noTags
			continue
		}
		for _, tag := range rowTags {
			key := strings.ToLower(tag)
			count, ok := tags[key]
			if !ok {
				count.Display = tag
			}
			count.Count++
			tags[key] = count
		}
	}

	return tags, labels
}

// Statistics returns the number of open tasks and the per-priority counts
// ordered highest priority first, matching the "12 open items (3/4/5)"
// summary line.
func (e *Engine) Statistics(rows []task.Task) (int, []int) {
	byPrio := make(map[int]int)
	total := 0
	highest := 0
	for _, t := range rows {
		if !t.Open {
			continue
		}
		total++
		byPrio[t.Priority]++
		if t.Priority > highest {
			highest = t.Priority
		}
	}
	if total == 0 {
		return 0, nil
	}
	stats := make([]int, highest+1)
	for prio, n := range byPrio {
		stats[highest-prio] = n
	}
	return total, stats
}
