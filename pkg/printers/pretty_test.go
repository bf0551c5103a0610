package printers

import (
	"testing"

	"github.com/guildner/tasklist/pkg/task"
)

func TestDisplayText(t *testing.T) {
	pp := &PrettyPrint{Labels: task.NewLabels(task.DefaultLabels, task.DefaultNextLabel)}

	tests := []struct {
		in   string
		want string
	}{
		{"Next: call mom !!", "call mom"},
		{"!!! buy milk", "buy milk"},
		{"fix!! the roof", "fix the roof"},
		{"TODO buy milk @errands", "TODO buy milk @errands"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := pp.displayText(tt.in); got != tt.want {
			t.Errorf("displayText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayTextWithoutLabels(t *testing.T) {
	pp := &PrettyPrint{}
	if got := pp.displayText("Next: call mom"); got != "Next: call mom" {
		t.Fatalf("displayText() = %q, want the next label kept without a matcher", got)
	}
}
