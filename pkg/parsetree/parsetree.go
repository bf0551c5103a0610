// Package parsetree holds the document tree model handed over by the
// notebook parser. Tasks are extracted from this tree, never from raw
// page source.
package parsetree

import "github.com/guildner/tasklist/pkg/glyph"

// Known structural tags. Anything else is treated as an inline node and
// flattened to its text.
const (
	TagParagraph = "p"
	TagList      = "ul"
	TagOrdered   = "ol"
	TagListItem  = "li"
	TagStrike    = "strike"
	TagText      = "text"
)

// Node is one node in a parsed page. Text is the content before any
// children, Tail the content following the node inside its parent, the
// same shape an element tree gives us.
type Node struct {
	Tag      string
	Text     string
	Tail     string
	Bullet   glyph.Bullet // only meaningful on li nodes
	Children []*Node
}

// NewNode returns a node with the given tag and text.
func NewNode(tag, text string) *Node {
	return &Node{Tag: tag, Text: text}
}

// Append adds a child and returns it, for fluent tree building.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// IsList reports whether the node is a bullet or numbered list.
func (n *Node) IsList() bool {
	return n.Tag == TagList || n.Tag == TagOrdered
}

// FindAll returns all descendants with the given tag, in document order,
// including the node itself when it matches.
func (n *Node) FindAll(tag string) []*Node {
	var found []*Node
	n.walk(func(node *Node) {
		if node.Tag == tag {
			found = append(found, node)
		}
	})
	return found
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}
