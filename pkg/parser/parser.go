// Package parser turns notebook page source into a parsetree. Pages are
// markdown with GFM task list checkboxes, plus the "[*]" marker for
// cancelled tasks.
package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/guildner/tasklist/pkg/glyph"
	"github.com/guildner/tasklist/pkg/parsetree"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.TaskList,
		extension.Strikethrough,
	),
)

// Parse converts page source into a document node whose children are "p"
// paragraph nodes. Blocks separated by blank lines land in separate
// paragraphs; a list directly following a text line stays in the same
// paragraph, which is what header detection needs.
func Parse(source []byte) *parsetree.Node {
	root := md.Parser().Parse(text.NewReader(source))

	doc := parsetree.NewNode("document", "")
	var para *parsetree.Node

	for block := root.FirstChild(); block != nil; block = block.NextSibling() {
		if para == nil || block.HasBlankPreviousLines() {
			para = doc.Append(parsetree.NewNode(parsetree.TagParagraph, ""))
		}
		switch b := block.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			appendInlines(para, b, source)
			appendText(para, "\n")
		case *ast.List:
			para.Append(convertList(b, source))
		default:
			// Headings, code blocks, thematic breaks and anything
			// else never contain tasks.
		}
	}

	return doc
}

// appendText adds text to the paragraph, either as leading text or as the
// tail of the last child, preserving document order around inline nodes.
func appendText(p *parsetree.Node, s string) {
	if len(p.Children) == 0 {
		p.Text += s
		return
	}
	p.Children[len(p.Children)-1].Tail += s
}

// appendInlines walks the inline children of a block, appending plain text
// and keeping struck-through spans as explicit strike nodes so the
// flattener can drop them.
func appendInlines(p *parsetree.Node, block ast.Node, source []byte) {
	for in := block.FirstChild(); in != nil; in = in.NextSibling() {
		switch n := in.(type) {
		case *east.Strikethrough:
			p.Append(parsetree.NewNode(parsetree.TagStrike, flattenInline(n, source)))
		case *east.TaskCheckBox:
			// Consumed by convertList; ignore when it leaks into
			// plain paragraphs.
		case *ast.Text:
			appendText(p, string(n.Segment.Value(source)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				appendText(p, "\n")
			}
		case *ast.String:
			appendText(p, string(n.Value))
		default:
			appendText(p, flattenInline(n, source))
		}
	}
}

// flattenInline reduces an inline subtree to its text.
func flattenInline(node ast.Node, source []byte) string {
	var sb strings.Builder
	switch n := node.(type) {
	case *ast.Text:
		sb.Write(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			sb.WriteString("\n")
		}
		return sb.String()
	case *ast.String:
		sb.Write(n.Value)
		return sb.String()
	case *ast.AutoLink:
		sb.Write(n.URL(source))
		return sb.String()
	case *east.TaskCheckBox:
		return ""
	}
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		sb.WriteString(flattenInline(c, source))
	}
	return sb.String()
}

// convertList maps a markdown list to a ul/ol node. Nested lists inside a
// list item are lifted next to their item, so a ul only ever contains li
// and nested ul children.
func convertList(list *ast.List, source []byte) *parsetree.Node {
	tag := parsetree.TagList
	if list.IsOrdered() {
		tag = parsetree.TagOrdered
	}
	ul := parsetree.NewNode(tag, "")

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		li, ok := item.(*ast.ListItem)
		if !ok {
			continue // should not occur, skip silently
		}
		node := parsetree.NewNode(parsetree.TagListItem, "")
		node.Bullet = defaultBullet(list)

		var nested []*parsetree.Node
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			switch b := c.(type) {
			case *ast.List:
				nested = append(nested, convertList(b, source))
			case *ast.Paragraph, *ast.TextBlock:
				if box := checkbox(b); box != nil {
					if box.IsChecked {
						node.Bullet = glyph.CheckedBox
					} else {
						node.Bullet = glyph.UncheckedBox
					}
				}
				appendInlines(node, b, source)
			default:
				// block kinds that cannot hold tasks
			}
		}

		trimItemText(node)
		ul.Children = append(ul.Children, node)
		ul.Children = append(ul.Children, nested...)
	}

	return ul
}

func defaultBullet(list *ast.List) glyph.Bullet {
	if list.IsOrdered() {
		return glyph.NumberedBullet
	}
	return glyph.PlainBullet
}

func checkbox(block ast.Node) *east.TaskCheckBox {
	if box, ok := block.FirstChild().(*east.TaskCheckBox); ok {
		return box
	}
	return nil
}

// trimItemText strips marker noise the markdown parser leaves behind: the
// "[*]" cancelled-box prefix is not a GFM checkbox, so it arrives as
// literal text.
func trimItemText(li *parsetree.Node) {
	li.Text = strings.TrimLeft(li.Text, " ")
	if strings.HasPrefix(li.Text, "[*] ") {
		li.Bullet = glyph.CancelledBox
		li.Text = strings.TrimPrefix(li.Text, "[*] ")
	}
}
