package query

import (
	"sort"

	"github.com/guildner/tasklist/pkg/task"
)

// ViewRow is one visible task prepared for presentation.
type ViewRow struct {
	task.Task
	Document string
	Depth    int
}

// BuildView orders the visible rows for display: top level tasks sorted
// by document name, children under their parents, depth recorded for
// indentation. Closed rows and rows with stale document references are
// excluded.
func BuildView(rows []task.Task, docNames map[int64]string, visible map[int64]bool) []ViewRow {
	children := make(map[int64][]task.Task)
	for _, t := range rows {
		children[t.Parent] = append(children[t.Parent], t)
	}

	top := children[0]
	sort.SliceStable(top, func(i, j int) bool {
		ni, nj := docNames[top[i].Source], docNames[top[j].Source]
		if ni != nj {
			return ni < nj
		}
		return top[i].ID < top[j].ID
	})

	var view []ViewRow
	var walk func(tasks []task.Task, depth int)
	walk = func(tasks []task.Task, depth int) {
		for _, t := range tasks {
			name, known := docNames[t.Source]
			if !known || !t.Open || !visible[t.ID] {
				continue
			}
			view = append(view, ViewRow{Task: t, Document: name, Depth: depth})
			walk(children[t.ID], depth+1)
		}
	}
	walk(top, 0)

	return view
}

// BuildFlatView lists only the leaves of the visible forest, without any
// nesting: rows whose visible children were all filtered out. Ordered by
// document name, then id.
func BuildFlatView(rows []task.Task, docNames map[int64]string, visible map[int64]bool) []ViewRow {
	hasVisibleChild := make(map[int64]bool)
	for _, t := range rows {
		if _, known := docNames[t.Source]; known && t.Open && visible[t.ID] {
			hasVisibleChild[t.Parent] = true
		}
	}

	var view []ViewRow
	for _, t := range rows {
		name, known := docNames[t.Source]
		if !known || !t.Open || !visible[t.ID] || hasVisibleChild[t.ID] {
			continue
		}
		view = append(view, ViewRow{Task: t, Document: name})
	}
	sort.SliceStable(view, func(i, j int) bool {
		if view[i].Document != view[j].Document {
			return view[i].Document < view[j].Document
		}
		return view[i].ID < view[j].ID
	})
	return view
}
