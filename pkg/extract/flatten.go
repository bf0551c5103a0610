// Package extract flattens parsed paragraphs into line items and rebuilds
// task nesting from indentation.
package extract

import (
	"strings"

	"github.com/guildner/tasklist/pkg/glyph"
	"github.com/guildner/tasklist/pkg/parsetree"
)

// Item is one flattened line. Either a plain text line (Entry false) or a
// list entry with its bullet kind and indent level.
type Item struct {
	Entry  bool
	Bullet glyph.Bullet
	Level  int
	Text   string
}

func textItem(s string) Item {
	return Item{Text: s}
}

func entryItem(b glyph.Bullet, level int, text string) Item {
	return Item{Entry: true, Bullet: b, Level: level, Text: text}
}

// FlattenPara converts a paragraph node into an ordered mix of plain text
// lines and list entries. Struck-through content contributes no text and
// unknown node kinds flatten to whatever text they hold.
func FlattenPara(para *parsetree.Node) []Item {
	var items []Item

	text := para.Text
	for _, child := range para.Children {
		switch {
		case child.Tag == parsetree.TagStrike:
			text += child.Tail
		case child.IsList():
			items = append(items, splitLines(text)...)
			items = append(items, flattenList(child, 0)...)
			text = child.Tail
		default:
			text += flatten(child)
			text += child.Tail
		}
	}
	items = append(items, splitLines(text)...)

	return items
}

func flattenList(list *parsetree.Node, level int) []Item {
	var items []Item
	for _, node := range list.Children {
		switch {
		case node.IsList():
			items = append(items, flattenList(node, level+1)...)
		case node.Tag == parsetree.TagListItem:
			items = append(items, entryItem(node.Bullet, level, flatten(node)))
		default:
			// should not occur, skip silently
		}
	}
	return items
}

// flatten reduces a node to its text, dropping struck-through spans.
func flatten(node *parsetree.Node) string {
	text := node.Text
	for _, child := range node.Children {
		if child.Tag != parsetree.TagStrike {
			text += flatten(child)
		}
		text += child.Tail
	}
	return text
}

func splitLines(text string) []Item {
	var items []Item
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, textItem(line))
	}
	return items
}
