package extract

import (
	"strings"

	"github.com/guildner/tasklist/pkg/parsetree"
	"github.com/guildner/tasklist/pkg/task"
)

// TreeTask is one extracted task with its nested children, before any ids
// are assigned by the store.
type TreeTask struct {
	task.Fields
	Children []*TreeTask
}

// Extractor turns parsed documents into task forests.
type Extractor struct {
	Labels *task.Labels

	// AllCheckboxes treats every checkbox as a task, not only those in
	// paragraphs with a task list header.
	AllCheckboxes bool
}

// Extract walks all paragraphs of a document tree and returns the nested
// tasks found. defaultDate, when set, is the implicit due date for every
// task in the document.
func (e *Extractor) Extract(tree *parsetree.Node, defaultDate string) []*TreeTask {
	var tasks []*TreeTask

	for _, para := range tree.FindAll(parsetree.TagParagraph) {
		lines := FlattenPara(para)

		isTaskList, globalTags := e.detectHeader(lines)
		if isTaskList {
			lines = lines[1:]
		}

		// Stack of open ancestor list levels. Frames are popped as
		// soon as an entry at the same or a shallower level shows up.
		type frame struct {
			level int
			task  *TreeTask
		}
		var stack []frame

		// skip marks the level of a non-task entry whose nested
		// branch is being pruned; -1 means no pruning active.
		skip := -1

		for _, item := range lines {
			if !item.Entry {
				// Plain text breaks any open list ancestry.
				stack = stack[:0]
				skip = -1
				if _, ok := e.Labels.MatchLabel(item.Text); ok {
					fields := e.Labels.ParseFields(item.Text, task.ParseInput{
						Open:        true,
						GlobalTags:  globalTags,
						DefaultDate: defaultDate,
						PrevSibling: lastFields(tasks),
					})
					tasks = append(tasks, &TreeTask{Fields: fields})
				}
				continue
			}

			if skip >= 0 {
				if item.Level > skip {
					continue
				}
				skip = -1
			}

			for len(stack) > 0 && stack[len(stack)-1].level >= item.Level {
				stack = stack[:len(stack)-1]
			}

			if !e.isTask(item, isTaskList) {
				// Not a task; prune everything nested below it.
				skip = item.Level
				continue
			}

			in := task.ParseInput{
				Open:        item.Bullet.Open(),
				GlobalTags:  globalTags,
				DefaultDate: defaultDate,
			}
			siblings := &tasks
			if len(stack) > 0 {
				parent := stack[len(stack)-1].task
				in.DefaultDate = parent.Due
				if in.DefaultDate == task.NoDate {
					in.DefaultDate = defaultDate
				}
				in.DefaultPriority = parent.Priority
				siblings = &parent.Children
			}
			in.PrevSibling = lastFields(*siblings)

			t := &TreeTask{Fields: e.Labels.ParseFields(item.Text, in)}
			*siblings = append(*siblings, t)
			stack = append(stack, frame{level: item.Level, task: t})
		}
	}

	return tasks
}

// isTask decides whether a list entry is a task: checkboxes count when the
// paragraph is a task list (or the preference says all of them do), and
// any entry starting with a recognized label counts regardless.
func (e *Extractor) isTask(item Item, isTaskList bool) bool {
	if item.Bullet.Checkbox() && (isTaskList || e.AllCheckboxes) {
		return true
	}
	_, ok := e.Labels.MatchLabel(item.Text)
	return ok
}

// detectHeader checks whether the paragraph opens with a task list header:
// a label-prefixed first line whose remaining tokens are all @-tags. The
// scan is all or nothing; one stray token makes it an ordinary line.
func (e *Extractor) detectHeader(lines []Item) (bool, []string) {
	if len(lines) < 2 || lines[0].Entry || !lines[1].Entry {
		return false, nil
	}
	if _, ok := e.Labels.MatchLabel(lines[0].Text); !ok {
		return false, nil
	}

	words := strings.Fields(strings.TrimRight(lines[0].Text, ":"))
	var tags []string
	for _, word := range words[1:] {
		if !strings.HasPrefix(word, "@") {
			return false, nil
		}
		tags = append(tags, word)
	}
	return true, tags
}

func lastFields(tasks []*TreeTask) *task.Fields {
	if len(tasks) == 0 {
		return nil
	}
	return &tasks[len(tasks)-1].Fields
}
