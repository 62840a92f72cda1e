package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/fluent-gallery/pkg/core"
	"github.com/go-drift/fluent-gallery/pkg/engine"
	"github.com/go-drift/fluent-gallery/pkg/graphics"
)

// Finder locates nodes in the inspected view.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *engine.TreeNode) []*engine.TreeNode
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*engine.TreeNode
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *engine.TreeNode {
	if len(r.nodes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no nodes: %s", desc))
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *engine.TreeNode {
	if index < 0 || index >= len(r.nodes) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), desc))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*engine.TreeNode {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Bounds returns the absolute bounds of the first match. Panics if no
// matches.
func (r FinderResult) Bounds() graphics.Rect {
	b := r.First().Bounds
	return graphics.Rect{
		Left:   float64(b.Left),
		Top:    float64(b.Top),
		Right:  float64(b.Right),
		Bottom: float64(b.Bottom),
	}
}

// --- Concrete finders ---

// typeFinder matches nodes whose widget is of the specified type.
type typeFinder struct {
	typeName string
}

func (f *typeFinder) Evaluate(root *engine.TreeNode) []*engine.TreeNode {
	return collectMatches(root, func(n *engine.TreeNode) bool {
		return n.Widget == f.typeName
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches nodes whose widget is type T or *T.
func ByType[T core.Widget]() Finder {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return &typeFinder{typeName: t.String()}
}

// keyFinder matches nodes whose widget key renders like key.
type keyFinder struct {
	key string
}

func (f *keyFinder) Evaluate(root *engine.TreeNode) []*engine.TreeNode {
	return collectMatches(root, func(n *engine.TreeNode) bool {
		return n.Key != "" && n.Key == f.key
	})
}

func (f *keyFinder) Description() string {
	return fmt.Sprintf("ByKey(%s)", f.key)
}

// ByKey returns a finder that matches nodes whose widget key equals key.
func ByKey(key any) Finder {
	return &keyFinder{key: engine.KeyString(key)}
}

// textFinder matches nodes by exact label.
type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root *engine.TreeNode) []*engine.TreeNode {
	return collectMatches(root, func(n *engine.TreeNode) bool {
		return n.Label == f.text
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches widgets whose label, such as a
// Text's content, equals text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// textContainingFinder matches nodes whose label contains a substring.
type textContainingFinder struct {
	substring string
}

func (f *textContainingFinder) Evaluate(root *engine.TreeNode) []*engine.TreeNode {
	return collectMatches(root, func(n *engine.TreeNode) bool {
		return n.Label != "" && strings.Contains(n.Label, f.substring)
	})
}

func (f *textContainingFinder) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", f.substring)
}

// ByTextContaining returns a finder that matches widgets whose label
// contains substring.
func ByTextContaining(substring string) Finder {
	return &textContainingFinder{substring: substring}
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(*engine.TreeNode) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *engine.TreeNode) []*engine.TreeNode {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(desc string, fn func(*engine.TreeNode) bool) Finder {
	return &predicateFinder{fn: fn, desc: desc}
}

func collectMatches(root *engine.TreeNode, match func(*engine.TreeNode) bool) []*engine.TreeNode {
	if root == nil {
		return nil
	}
	var out []*engine.TreeNode
	var visit func(n *engine.TreeNode)
	visit = func(n *engine.TreeNode) {
		if match(n) {
			out = append(out, n)
		}
		for i := range n.Children {
			visit(&n.Children[i])
		}
	}
	visit(root)
	return out
}
