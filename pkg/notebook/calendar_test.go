package notebook

import "testing"

func TestDefaultDate(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Journal/2024-03-01", "2024-03-01"},
		{"Journal/2024-02", "2024-02-29"},
		{"Journal/2023-02", "2023-02-28"},
		{"Journal/2024", "2024-12-31"},
		{"Journal/2024/03/01", "2024-03-01"},
		{"Journal/2024/3/1", "2024-03-01"},
		{"Journal/2024/03", "2024-03-31"},
		{"2024-03-01", "2024-03-01"},
		{"Projects/Shed", ""},
		{"Budget 2024", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DefaultDate(tt.name); got != tt.want {
			t.Errorf("DefaultDate(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
