package layout

import "github.com/go-drift/fluent-gallery/pkg/graphics"

// Region is a laid out node placed at an absolute position. Widgets receive
// their region during event handling and painting.
type Region struct {
	node   *Node
	origin graphics.Offset
}

// NewRegion places the root node at its own offset.
func NewRegion(root *Node) Region {
	return Region{node: root, origin: root.Offset}
}

// Bounds returns the absolute rectangle of the region.
func (r Region) Bounds() graphics.Rect {
	if r.node == nil {
		return graphics.Rect{}
	}
	return graphics.RectFromOffsetSize(r.origin, r.node.Size)
}

// Node returns the underlying layout node.
func (r Region) Node() *Node {
	return r.node
}

// Children returns the placed child regions.
func (r Region) Children() []Region {
	if r.node == nil || len(r.node.Children) == 0 {
		return nil
	}
	out := make([]Region, len(r.node.Children))
	for i, child := range r.node.Children {
		out[i] = Region{node: child, origin: r.origin.Add(child.Offset)}
	}
	return out
}

// Child returns the i-th child region.
func (r Region) Child(i int) (Region, bool) {
	if r.node == nil || i < 0 || i >= len(r.node.Children) {
		return Region{}, false
	}
	child := r.node.Children[i]
	return Region{node: child, origin: r.origin.Add(child.Offset)}, true
}
