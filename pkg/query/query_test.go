package query

import (
	"testing"

	"github.com/guildner/tasklist/pkg/task"
)

func newEngine() *Engine {
	return &Engine{Labels: task.NewLabels(task.DefaultLabels, task.DefaultNextLabel)}
}

func row(id, parent int64, desc string) task.Task {
	return task.Task{
		ID:     id,
		Source: 1,
		Parent: parent,
		Fields: task.Fields{Open: true, Actionable: true, Due: task.NoDate, Description: desc},
	}
}

var docNames = map[int64]string{1: "Home/Garden"}

func TestParseTextFilter(t *testing.T) {
	if got := ParseTextFilter("  "); got != nil {
		t.Fatalf("ParseTextFilter(blank) = %+v, want nil", got)
	}
	got := ParseTextFilter("Milk")
	if got.Negated || got.Needle != "milk" {
		t.Fatalf("ParseTextFilter(Milk) = %+v", got)
	}
	got = ParseTextFilter("NOT milk")
	if !got.Negated || got.Needle != "milk" {
		t.Fatalf("ParseTextFilter(NOT milk) = %+v", got)
	}
}

func TestVisiblePropagatesToAncestors(t *testing.T) {
	e := newEngine()
	rows := []task.Task{
		row(1, 0, "paint the shed"),
		row(2, 1, "prepare"),
		row(3, 2, "buy paint @errands"),
		row(4, 0, "water plants"),
	}

	visible := e.Visible(rows, docNames, Criteria{Tags: []string{"errands"}})

	for _, id := range []int64{1, 2, 3} {
		if !visible[id] {
			t.Errorf("row %d not visible, want the whole matching branch", id)
		}
	}
	if visible[4] {
		t.Error("row 4 visible without a match")
	}
}

func TestVisibleSkipsClosed(t *testing.T) {
	e := newEngine()
	closed := row(1, 0, "done @errands")
	closed.Open = false

	visible := e.Visible([]task.Task{closed}, docNames, Criteria{})
	if visible[1] {
		t.Fatal("closed row visible")
	}
}

func TestActionableOnly(t *testing.T) {
	e := newEngine()
	waiting := row(2, 0, "Next: write body")
	waiting.Actionable = false
	rows := []task.Task{row(1, 0, "Next: draft intro"), waiting}

	visible := e.Visible(rows, docNames, Criteria{ActionableOnly: true})
	if !visible[1] || visible[2] {
		t.Fatalf("visible = %v, want only the actionable row", visible)
	}
}

func TestTagFilter(t *testing.T) {
	e := newEngine()
	rows := []task.Task{
		row(1, 0, "buy milk @Errands"),
		row(2, 0, "water plants"),
	}

	// Tag matching is case-insensitive in both directions.
	visible := e.Visible(rows, docNames, Criteria{Tags: []string{"errands"}})
	if !visible[1] || visible[2] {
		t.Fatalf("visible = %v, want only the tagged row", visible)
	}

	// The no-tags bucket selects rows without any tag.
	visible = e.Visible(rows, docNames, Criteria{Tags: []string{task.NoTags}})
	if visible[1] || !visible[2] {
		t.Fatalf("visible = %v, want only the untagged row", visible)
	}
}

func TestTagByPage(t *testing.T) {
	e := newEngine()
	e.TagByPage = true
	rows := []task.Task{row(1, 0, "water plants")}

	visible := e.Visible(rows, docNames, Criteria{Tags: []string{"garden"}})
	if !visible[1] {
		t.Fatal("page name segment should count as a tag")
	}

	// With page tags, no row is truly untagged.
	visible = e.Visible(rows, docNames, Criteria{Tags: []string{task.NoTags}})
	if visible[1] {
		t.Fatal("row with page tags matched the no-tags bucket")
	}
}

func TestLabelFilter(t *testing.T) {
	e := newEngine()
	rows := []task.Task{
		row(1, 0, "FIXME leaking tap"),
		row(2, 0, "TODO buy milk"),
	}

	visible := e.Visible(rows, docNames, Criteria{Labels: []string{"FIXME"}})
	if !visible[1] || visible[2] {
		t.Fatalf("visible = %v, want only the FIXME row", visible)
	}
}

func TestTextFilter(t *testing.T) {
	e := newEngine()
	rows := []task.Task{
		row(1, 0, "buy milk"),
		row(2, 0, "water plants"),
	}

	visible := e.Visible(rows, docNames, Criteria{Text: ParseTextFilter("MILK")})
	if !visible[1] || visible[2] {
		t.Fatalf("visible = %v, want only the milk row", visible)
	}

	visible = e.Visible(rows, docNames, Criteria{Text: ParseTextFilter("not milk")})
	if visible[1] || !visible[2] {
		t.Fatalf("visible = %v, negation inverted wrong", visible)
	}

	// Document names match too.
	visible = e.Visible(rows, docNames, Criteria{Text: ParseTextFilter("garden")})
	if !visible[1] || !visible[2] {
		t.Fatalf("visible = %v, want both rows via the page name", visible)
	}
}

func TestCriteriaCombineWithAnd(t *testing.T) {
	e := newEngine()
	rows := []task.Task{
		row(1, 0, "buy milk @errands"),
		row(2, 0, "buy stamps @errands"),
	}

	visible := e.Visible(rows, docNames, Criteria{
		Tags: []string{"errands"},
		Text: ParseTextFilter("milk"),
	})
	if !visible[1] || visible[2] {
		t.Fatalf("visible = %v, want the conjunction", visible)
	}
}
