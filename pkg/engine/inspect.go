package engine

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/layout"
)

// maxTreeDepth limits recursion depth to prevent stack overflow from malformed trees.
const maxTreeDepth = 500

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SafeRect is a JSON-safe version of graphics.Rect.
type SafeRect struct {
	Left   SafeFloat `json:"left"`
	Top    SafeFloat `json:"top"`
	Right  SafeFloat `json:"right"`
	Bottom SafeFloat `json:"bottom"`
}

func safeRect(r graphics.Rect) SafeRect {
	return SafeRect{
		Left:   SafeFloat(r.Left),
		Top:    SafeFloat(r.Top),
		Right:  SafeFloat(r.Right),
		Bottom: SafeFloat(r.Bottom),
	}
}

// TreeNode is a serialized node of the laid out view: the widget type,
// its state type, and its absolute bounds.
type TreeNode struct {
	Widget   string     `json:"widget"`
	State    string     `json:"state,omitempty"`
	Key      string     `json:"key,omitempty"`
	Label    string     `json:"label,omitempty"`
	Bounds   SafeRect   `json:"bounds"`
	Focused  bool       `json:"focused,omitempty"`
	Children []TreeNode `json:"children,omitempty"`
}

// Inspect serializes the current view. It returns nil before the first
// Build.
func (e *Engine) Inspect() *TreeNode {
	node := e.Layout()
	if node == nil {
		return nil
	}
	out := inspect(e.root, e.tree, layout.NewRegion(node), 0)
	return &out
}

func inspect(w core.Widget, tree *core.Tree, region layout.Region, depth int) TreeNode {
	out := TreeNode{
		Widget: typeName(w),
		Bounds: safeRect(region.Bounds()),
	}
	if tree != nil && !tree.Tag.IsZero() {
		out.State = tree.Tag.String()
		if f, ok := tree.State.(core.Focusable); ok {
			out.Focused = f.IsFocused()
		}
	}
	if d, ok := w.(core.Described); ok {
		out.Label = d.Description()
	}
	if k, ok := w.(core.Keyed); ok && k.Key() != nil {
		out.Key = KeyString(k.Key())
	}
	if depth >= maxTreeDepth || tree == nil {
		return out
	}
	p, ok := w.(core.Parent)
	if !ok {
		return out
	}
	children := p.ChildWidgets()
	regions := region.Children()
	for i := 0; i < len(children) && i < len(regions); i++ {
		out.Children = append(out.Children, inspect(children[i], tree.Child(i), regions[i], depth+1))
	}
	return out
}

// HitTest returns the widget types whose bounds contain position, from the
// root down to the innermost widget.
func (e *Engine) HitTest(position graphics.Offset) []string {
	root := e.Inspect()
	if root == nil {
		return nil
	}
	return hitPath(root, position)
}

func hitPath(root *TreeNode, position graphics.Offset) []string {
	var path []string
	for n := root; n != nil; {
		if !contains(n.Bounds, position) {
			break
		}
		path = append(path, n.Widget)
		var next *TreeNode
		for i := range n.Children {
			if contains(n.Children[i].Bounds, position) {
				next = &n.Children[i]
				break
			}
		}
		n = next
	}
	return path
}

func contains(r SafeRect, p graphics.Offset) bool {
	return graphics.Rect{
		Left:   float64(r.Left),
		Top:    float64(r.Top),
		Right:  float64(r.Right),
		Bottom: float64(r.Bottom),
	}.Contains(p)
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// KeyString renders a widget key as it appears in TreeNode.Key.
func KeyString(key any) string {
	data, err := json.Marshal(key)
	if err != nil {
		data = []byte("?")
	}
	return typeName(key) + ":" + string(data)
}
