package glyph

import "fmt"

// Glyph describes how a bullet kind appears on a notebook page and in
// CLI output.
type Glyph struct {
	Marker  string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Bullet is the kind of list bullet a line carries.
type Bullet int

const (
	PlainBullet Bullet = iota
	UncheckedBox
	CheckedBox
	CancelledBox
	NumberedBullet
)

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 5)

	g = append(g, Glyph{
		Marker:  "*",
		Symbol:  "•",
		Meaning: "plain bullet",
	}, Glyph{
		Marker:  "[ ]",
		Symbol:  "☐",
		Meaning: "open task",
	}, Glyph{
		Marker:  "[x]",
		Symbol:  "☑",
		Meaning: "task done",
	}, Glyph{
		Marker:  "[*]",
		Symbol:  "☒",
		Meaning: "task cancelled",
	}, Glyph{
		Marker:  "1.",
		Symbol:  "#",
		Meaning: "numbered bullet",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

// Checkbox reports whether the bullet is one of the checkbox kinds.
func (b Bullet) Checkbox() bool {
	switch b {
	case UncheckedBox, CheckedBox, CancelledBox:
		return true
	}
	return false
}

// Open reports the open state a task with this bullet starts in. Checked
// and cancelled boxes are closed, everything else is open.
func (b Bullet) Open() bool {
	switch b {
	case CheckedBox, CancelledBox:
		return false
	}
	return true
}

// BulletForMarker maps a source marker to a bullet kind. Unknown markers
// fall back to a plain bullet.
func BulletForMarker(marker string) Bullet {
	switch marker {
	case "[ ]", "[]":
		return UncheckedBox
	case "[x]", "[X]":
		return CheckedBox
	case "[*]":
		return CancelledBox
	case "1.", "#":
		return NumberedBullet
	}
	return PlainBullet
}
