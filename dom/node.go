package dom

import (
	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
)

// Node is one element of a document object model graph. The set of
// implementations is closed; switch on Kind or on the concrete type.
type Node interface {
	Kind() Kind
	Name() string
	SetName(name string)

	// Parent is the node that holds this one, or nil for roots and
	// detached nodes. It does not own the node.
	Parent() Node

	// Symbol is the semantic symbol the front end resolved for the
	// node's syntax, or nil.
	Symbol() symbol.Symbol

	// RawItem is the syntax the node was created from, or nil for
	// synthesized nodes.
	RawItem() *syntax.Node

	Whitespace() *Whitespace
	Annotations() *Annotations

	// Children returns the nodes owned by this one in emission order.
	Children() []Node

	base() *nodeBase
	removeChild(child Node) bool
}

type nodeBase struct {
	raw         *syntax.Node
	parent      Node
	sym         symbol.Symbol
	name        string
	whitespace  Whitespace
	annotations Annotations
}

func (b *nodeBase) base() *nodeBase             { return b }
func (b *nodeBase) Name() string                { return b.name }
func (b *nodeBase) SetName(name string)         { b.name = name }
func (b *nodeBase) Parent() Node                { return b.parent }
func (b *nodeBase) Symbol() symbol.Symbol       { return b.sym }
func (b *nodeBase) RawItem() *syntax.Node       { return b.raw }
func (b *nodeBase) Whitespace() *Whitespace     { return &b.whitespace }
func (b *nodeBase) Annotations() *Annotations   { return &b.annotations }
func (b *nodeBase) removeChild(child Node) bool { return false }

// copyFrom copies the shared attributes of o. The copy starts detached.
func (b *nodeBase) copyFrom(o *nodeBase) {
	b.raw = o.raw
	b.sym = o.sym
	b.name = o.name
	b.whitespace = o.whitespace.clone()
	b.annotations = o.annotations.clone()
	b.parent = nil
}

// Detach removes n from whatever holds it. It is a no-op for nodes without
// a parent.
func Detach(n Node) {
	if n == nil {
		return
	}
	if p := n.Parent(); p != nil {
		p.removeChild(n)
	}
	n.base().parent = nil
}

// adopt makes owner the parent of child, detaching child from its previous
// holder first.
func adopt(owner Node, child Node) {
	if child == nil {
		return
	}
	if p := child.Parent(); p != nil && p != owner {
		p.removeChild(child)
	}
	child.base().parent = owner
}

// release clears the parent of a child its owner has just dropped.
func release(child Node) {
	if child != nil {
		child.base().parent = nil
	}
}

// Ancestors returns the chain of parents of n, innermost first.
func Ancestors(n Node) []Node {
	var out []Node
	for p := n.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}

// memberList is an ordered sequence of nodes owned by owner.
type memberList struct {
	owner Node
	items []Node
}

func (l *memberList) all() []Node {
	return append([]Node(nil), l.items...)
}

func (l *memberList) len() int {
	return len(l.items)
}

func (l *memberList) indexOf(n Node) int {
	for i, item := range l.items {
		if item == n {
			return i
		}
	}
	return -1
}

func (l *memberList) add(n Node) {
	l.insert(len(l.items), n)
}

func (l *memberList) insert(index int, n Node) {
	adopt(l.owner, n)
	if i := l.indexOf(n); i >= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
	}
	l.place(index, n)
}

func (l *memberList) place(index int, n Node) {
	if index < 0 {
		index = 0
	}
	if index > len(l.items) {
		index = len(l.items)
	}
	l.items = append(l.items, nil)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = n
}

func (l *memberList) remove(n Node) bool {
	i := l.indexOf(n)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	release(n)
	return true
}

func (l *memberList) move(n Node, index int) bool {
	i := l.indexOf(n)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.place(index, n)
	return true
}

// copyFrom fills l with copies of the items of o.
func (l *memberList) copyFrom(o *memberList) {
	l.items = nil
	for _, item := range o.items {
		l.add(Copy(item))
	}
}

func ofType[T Node](items []Node) []T {
	var out []T
	for _, item := range items {
		if t, ok := item.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
