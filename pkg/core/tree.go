package core

import "reflect"

// Tag identifies the type of state held by a tree node. Nodes of stateless
// widgets carry the zero Tag.
type Tag struct {
	typ reflect.Type
}

// TagOf returns the tag for state of type S.
func TagOf[S any]() Tag {
	return Tag{typ: reflect.TypeFor[S]()}
}

// IsZero reports whether the tag belongs to a stateless widget.
func (t Tag) IsZero() bool {
	return t.typ == nil
}

// String returns the state type name.
func (t Tag) String() string {
	if t.typ == nil {
		return "stateless"
	}
	return t.typ.String()
}

// Tree is the persistent node mirroring one widget across rebuilds.
type Tree struct {
	Tag      Tag
	State    any
	Children []*Tree
	key      any
}

// NewTree builds the state tree for w and its descendants.
func NewTree(w Widget) *Tree {
	t := &Tree{}
	if s, ok := w.(Stateful); ok {
		t.Tag = s.Tag()
		t.State = s.State()
	}
	t.key = keyOf(w)
	if p, ok := w.(Parent); ok {
		for _, child := range p.ChildWidgets() {
			t.Children = append(t.Children, NewTree(child))
		}
	}
	return t
}

// Diff reconciles the node with w. Matching tags keep the state; a mismatch
// rebuilds the node from scratch.
func (t *Tree) Diff(w Widget) {
	if tagOf(w) != t.Tag {
		*t = *NewTree(w)
		return
	}
	t.key = keyOf(w)
	if d, ok := w.(Differ); ok {
		d.Diff(t)
		return
	}
	if p, ok := w.(Parent); ok {
		t.DiffChildren(p.ChildWidgets())
		return
	}
	t.Children = nil
}

// DiffChildren reconciles the children with widgets. Keyed widgets reclaim
// the node that carried the same key; the rest are matched by position.
func (t *Tree) DiffChildren(widgets []Widget) {
	old := t.Children
	byKey := make(map[any]*Tree)
	for _, child := range old {
		if child.key != nil {
			byKey[child.key] = child
		}
	}
	next := make([]*Tree, len(widgets))
	for i, w := range widgets {
		var reuse *Tree
		if key := keyOf(w); key != nil {
			reuse = byKey[key]
			delete(byKey, key)
		} else if i < len(old) && old[i].key == nil {
			reuse = old[i]
		}
		if reuse == nil {
			next[i] = NewTree(w)
			continue
		}
		reuse.Diff(w)
		next[i] = reuse
	}
	t.Children = next
}

// keyOf returns the key of w, or nil when w has none that can be compared.
func keyOf(w Widget) any {
	k, ok := w.(Keyed)
	if !ok {
		return nil
	}
	key := k.Key()
	if !comparableKey(key) {
		return nil
	}
	return key
}

// comparableKey reports whether key is non-nil and safe to compare with ==.
func comparableKey(key any) bool {
	return key != nil && reflect.ValueOf(key).Comparable()
}

// Child returns the i-th child node, creating an empty one if the tree is
// shorter than expected.
func (t *Tree) Child(i int) *Tree {
	for len(t.Children) <= i {
		t.Children = append(t.Children, &Tree{})
	}
	return t.Children[i]
}

// StateOf returns the state of t as *S. It panics if the node holds a
// different state type, which means the widget tree and the state tree are
// out of sync.
func StateOf[S any](t *Tree) *S {
	s, ok := t.State.(*S)
	if !ok {
		panic("core: state tree holds " + t.Tag.String() + ", want " + TagOf[S]().String())
	}
	return s
}

func tagOf(w Widget) Tag {
	if s, ok := w.(Stateful); ok {
		return s.Tag()
	}
	return Tag{}
}
