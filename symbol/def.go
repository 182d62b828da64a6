package symbol

import "github.com/dhamidi/rdom/syntax"

// Def is a plain Symbol implementation for front ends and tests. A nil *Def
// is never returned through the Symbol interface.
type Def struct {
	SymName   string
	SymKind   Kind
	Namespace *Def
	Type      *Def
	Access    Accessibility
	Abstract  bool
	Sealed    bool
	Static    bool
	Element   *Def
}

var _ Symbol = (*Def)(nil)

// NewNamespace builds the namespace chain for a dotted name and returns its
// innermost namespace. An empty name yields nil.
func NewNamespace(dotted string) *Def {
	var ns *Def
	start := 0
	for i := 0; i <= len(dotted); i++ {
		if i == len(dotted) || dotted[i] == '.' {
			if i > start {
				ns = &Def{SymName: dotted[start:i], SymKind: KindNamespace, Namespace: ns}
			}
			start = i + 1
		}
	}
	return ns
}

// ArrayOf returns an array symbol over element. A nil element gives an
// array of unknown element type.
func ArrayOf(element *Def) *Def {
	if element == nil {
		return &Def{SymKind: KindArray}
	}
	return &Def{SymKind: KindArray, Element: element, Namespace: element.Namespace}
}

func (d *Def) Name() string { return d.SymName }
func (d *Def) Kind() Kind   { return d.SymKind }

func (d *Def) ContainingNamespace() Symbol {
	if d.Namespace == nil {
		return nil
	}
	return d.Namespace
}

func (d *Def) ContainingType() Symbol {
	if d.Type == nil {
		return nil
	}
	return d.Type
}

func (d *Def) ElementType() Symbol {
	if d.Element == nil {
		return nil
	}
	return d.Element
}

func (d *Def) DeclaredAccessibility() Accessibility { return d.Access }
func (d *Def) IsAbstract() bool                     { return d.Abstract }
func (d *Def) IsSealed() bool                       { return d.Sealed }
func (d *Def) IsStatic() bool                       { return d.Static }

// Table is a map-backed Resolver. Bind everything before handing the table
// to readers; concurrent SymbolAt calls are safe once binding is done.
type Table struct {
	bySpan map[spanKey]Symbol
}

type spanKey struct {
	start, end int
}

func NewTable() *Table {
	return &Table{bySpan: make(map[spanKey]Symbol)}
}

func (t *Table) Bind(span syntax.Span, sym Symbol) {
	t.bySpan[spanKey{span.Start.Offset, span.End.Offset}] = sym
}

func (t *Table) SymbolAt(span syntax.Span) Symbol {
	if t == nil {
		return nil
	}
	return t.bySpan[spanKey{span.Start.Offset, span.End.Offset}]
}

func (t *Table) Len() int {
	return len(t.bySpan)
}
