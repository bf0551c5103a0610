package task

import "testing"

func TestParseFieldsPriority(t *testing.T) {
	l := NewLabels(DefaultLabels, DefaultNextLabel)

	f := l.ParseFields("TODO !!! buy milk", ParseInput{Open: true})
	if f.Priority != 3 {
		t.Fatalf("expected priority 3, got %d", f.Priority)
	}

	f = l.ParseFields("TODO buy milk", ParseInput{Open: true, DefaultPriority: 2})
	if f.Priority != 2 {
		t.Fatalf("expected inherited priority 2, got %d", f.Priority)
	}

	f = l.ParseFields("TODO ! buy milk", ParseInput{Open: true, DefaultPriority: 2})
	if f.Priority != 1 {
		t.Fatalf("expected own priority to win, got %d", f.Priority)
	}
}

func TestParseFieldsDue(t *testing.T) {
	l := NewLabels(DefaultLabels, DefaultNextLabel)

	f := l.ParseFields("call back [d:2024-03-01]", ParseInput{Open: true})
	if f.Due != "2024-03-01" {
		t.Fatalf("expected due 2024-03-01, got %q", f.Due)
	}
	if f.Description != "call back" {
		t.Fatalf("expected directive removed, got %q", f.Description)
	}

	f = l.ParseFields("call back [d:notadate]", ParseInput{Open: true, DefaultDate: "2024-05-05"})
	if f.Due != "2024-05-05" {
		t.Fatalf("expected inherited date, got %q", f.Due)
	}
	if f.Description != "call back [d:notadate]" {
		t.Fatalf("expected description unchanged, got %q", f.Description)
	}

	f = l.ParseFields("call back", ParseInput{Open: true})
	if f.Due != NoDate {
		t.Fatalf("expected the sentinel, got %q", f.Due)
	}
}

func TestParseFieldsGlobalTags(t *testing.T) {
	l := NewLabels(DefaultLabels, DefaultNextLabel)

	f := l.ParseFields("buy milk @errands", ParseInput{Open: true, GlobalTags: []string{"@home", "@errands"}})
	if f.Description != "buy milk @errands @home" {
		t.Fatalf("expected missing tags appended, got %q", f.Description)
	}
}

func TestParseFieldsActionable(t *testing.T) {
	l := NewLabels(DefaultLabels, DefaultNextLabel)

	a := l.ParseFields("Next: task A", ParseInput{Open: true})
	if !a.Actionable {
		t.Fatalf("expected first next item actionable")
	}

	b := l.ParseFields("Next: task B", ParseInput{Open: true, PrevSibling: &a})
	if b.Actionable {
		t.Fatalf("expected second next item blocked behind open sibling")
	}

	closedA := a
	closedA.Open = false
	b = l.ParseFields("Next: task B", ParseInput{Open: true, PrevSibling: &closedA})
	if !b.Actionable {
		t.Fatalf("expected next item actionable once sibling closed")
	}

	plain := l.ParseFields("TODO task C", ParseInput{Open: true, PrevSibling: &a})
	if !plain.Actionable {
		t.Fatalf("expected non-next items always actionable")
	}
}

func TestTags(t *testing.T) {
	f := Fields{Description: "call @Home about @work stuff"}
	tags := f.Tags()
	if len(tags) != 2 || tags[0] != "Home" || tags[1] != "work" {
		t.Fatalf("expected [Home work], got %#v", tags)
	}
}
