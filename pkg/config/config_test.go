package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if c.Labels != "FIXME, TODO" || c.NextLabel != "Next:" {
		t.Errorf("labels = %q / %q", c.Labels, c.NextLabel)
	}
	if !c.AllCheckboxes || !c.UseWorkweek {
		t.Errorf("checkbox/workweek defaults = %v / %v", c.AllCheckboxes, c.UseWorkweek)
	}
	if c.TagByPage || c.DeadlineByPage {
		t.Errorf("page tag defaults = %v / %v", c.TagByPage, c.DeadlineByPage)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TASKLIST_NEXT_LABEL", "Soon:")
	t.Setenv("TASKLIST_ALL_CHECKBOXES", "false")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if c.NextLabel != "Soon:" {
		t.Errorf("NextLabel = %q, want the env override", c.NextLabel)
	}
	if c.AllCheckboxes {
		t.Error("AllCheckboxes = true, want the env override")
	}
}

func TestSubtrees(t *testing.T) {
	got := Subtrees(" Projects, Home/Garden ,, ")
	want := []string{"Projects", "Home/Garden"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Subtrees() = %v, want %v", got, want)
	}
	if got := Subtrees(""); got != nil {
		t.Fatalf("Subtrees(empty) = %v, want nil", got)
	}
}
