package csharp

import (
	"strings"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
)

// scope is the declaration context of a syntax node: the enclosing
// namespace, the enclosing type and the using directives in effect.
type scope struct {
	outer  *scope
	ns     *symbol.Def
	dotted string
	typ    *symbol.Def
	usings []string
}

func (s *scope) namespace(name string) *scope {
	dotted := name
	if s.dotted != "" {
		dotted = s.dotted + "." + name
	}
	return &scope{outer: s, ns: symbol.NewNamespace(dotted), dotted: dotted}
}

func (s *scope) inType(def *symbol.Def) *scope {
	return &scope{outer: s, ns: s.ns, dotted: s.dotted, typ: def}
}

func (s *scope) inInterface() bool {
	return s.typ != nil && s.typ.SymKind == symbol.KindInterface
}

// typeAccess is the accessibility of a type declared without one.
func (s *scope) typeAccess() symbol.Accessibility {
	if s.typ != nil {
		return symbol.Private
	}
	return symbol.Internal
}

// memberAccess is the accessibility of a member declared without one.
func (s *scope) memberAccess() symbol.Accessibility {
	if s.inInterface() {
		return symbol.Public
	}
	return symbol.Private
}

// candidates lists the qualified names a type name may refer to, innermost
// first.
func (s *scope) candidates(name string) []string {
	var out []string
	for sc := s; sc != nil; sc = sc.outer {
		if sc.typ != nil {
			out = append(out, symbol.QualifiedName(sc.typ)+"."+name)
			continue
		}
		for dotted := sc.dotted; dotted != ""; dotted = parentNamespace(dotted) {
			out = append(out, dotted+"."+name)
		}
		for _, u := range sc.usings {
			out = append(out, u+"."+name)
		}
	}
	return append(out, name)
}

func parentNamespace(dotted string) string {
	if i := strings.LastIndexByte(dotted, '.'); i >= 0 {
		return dotted[:i]
	}
	return ""
}

// declarations collects symbols while the tree is converted. Spans are only
// known once the finished tree is laid out, so binding happens in table.
type declarations struct {
	types    map[string]*symbol.Def
	bindings []binding
	refs     []reference
}

type binding struct {
	node *syntax.Node
	def  *symbol.Def
}

type reference struct {
	node  *syntax.Node
	scope *scope
}

func newDeclarations() *declarations {
	return &declarations{types: make(map[string]*symbol.Def)}
}

func (d *declarations) declare(n *syntax.Node, def *symbol.Def) {
	d.bindings = append(d.bindings, binding{node: n, def: def})
	if def.SymKind.IsType() {
		d.types[symbol.QualifiedName(def)] = def
	}
}

// refer records a type reference to resolve against the declared types.
func (d *declarations) refer(n *syntax.Node, sc *scope) {
	d.refs = append(d.refs, reference{node: n, scope: sc})
}

func (d *declarations) table() *symbol.Table {
	t := symbol.NewTable()
	for _, b := range d.bindings {
		t.Bind(b.node.Span, b.def)
	}
	for _, r := range d.refs {
		if def := d.resolve(literal(r.node), r.scope); def != nil {
			t.Bind(r.node.Span, def)
		}
	}
	return t
}

// resolve finds the declared type a type name refers to. Only plain and
// qualified names and one-dimensional arrays of them are resolved.
func (d *declarations) resolve(name string, sc *scope) *symbol.Def {
	element := strings.TrimSuffix(name, "[]")
	for _, candidate := range sc.candidates(element) {
		def, ok := d.types[candidate]
		if !ok {
			continue
		}
		if element != name {
			return symbol.ArrayOf(def)
		}
		return def
	}
	return nil
}
