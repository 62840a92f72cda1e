package layout

import "github.com/go-drift/fluent-gallery/pkg/graphics"

// Node is the result of laying out a widget: its size, its offset relative
// to its parent, and the nodes of its children.
type Node struct {
	Size     graphics.Size
	Offset   graphics.Offset
	Children []*Node
}

// NewNode returns a leaf node of the given size.
func NewNode(size graphics.Size) *Node {
	return &Node{Size: size}
}

// WithChildren returns a node of the given size with children.
func WithChildren(size graphics.Size, children ...*Node) *Node {
	return &Node{Size: size, Children: children}
}

// Move sets the node's offset within its parent and returns the node.
func (n *Node) Move(to graphics.Offset) *Node {
	n.Offset = to
	return n
}

// Translate shifts the node's offset and returns the node.
func (n *Node) Translate(by graphics.Offset) *Node {
	n.Offset = n.Offset.Add(by)
	return n
}

// Align positions the node within space using alignment, keeping any
// existing offset as the origin of that space.
func (n *Node) Align(alignment Alignment, space graphics.Size) *Node {
	return n.Translate(alignment.Offset(space, n.Size))
}

// Bounds returns the node's rectangle relative to its parent.
func (n *Node) Bounds() graphics.Rect {
	return graphics.RectFromOffsetSize(n.Offset, n.Size)
}
