package dom

import (
	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
)

// ReferencedType is a use of a type: a base type, a return type, the type of
// a field. It is an immutable value; change a reference by replacing it.
//
// Names come from the symbol when the front end resolved one and from the
// written type text otherwise.
type ReferencedType struct {
	sym  symbol.Symbol
	raw  *syntax.Node
	text string
}

// NewReferencedType returns a synthesized reference written as text.
func NewReferencedType(text string) *ReferencedType {
	return &ReferencedType{text: text}
}

// ReferencedTypeOf returns a synthesized reference to sym.
func ReferencedTypeOf(sym symbol.Symbol) *ReferencedType {
	return &ReferencedType{sym: sym, text: symbol.OuterName(sym)}
}

func newReferencedType(raw *syntax.Node, sym symbol.Symbol) *ReferencedType {
	return &ReferencedType{sym: sym, raw: raw, text: raw.Text()}
}

func (t *ReferencedType) Symbol() symbol.Symbol { return t.sym }

// RawItem returns the type syntax the reference was read from, or nil.
func (t *ReferencedType) RawItem() *syntax.Node { return t.raw }

// Text is the type as written.
func (t *ReferencedType) Text() string { return t.text }

func (t *ReferencedType) Name() string {
	if t.sym != nil {
		return symbol.Name(t.sym)
	}
	return t.text
}

func (t *ReferencedType) OuterName() string {
	if t.sym != nil {
		return symbol.OuterName(t.sym)
	}
	return t.text
}

func (t *ReferencedType) QualifiedName() string {
	if t.sym != nil {
		return symbol.QualifiedName(t.sym)
	}
	return t.text
}

func (t *ReferencedType) Namespace() string {
	if t.sym != nil {
		return symbol.Namespace(t.sym)
	}
	return ""
}

// SameIntent reports whether both references name the same type.
func (t *ReferencedType) SameIntent(other *ReferencedType) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	return normalizeCode(t.QualifiedName()) == normalizeCode(other.QualifiedName())
}

func (t *ReferencedType) String() string {
	return t.QualifiedName()
}

// buildType returns the syntax for t. Read references replay their tokens.
func buildType(t *ReferencedType) *syntax.Node {
	if t.raw != nil {
		return t.raw.Clone()
	}
	return syntax.NewNode(syntax.KindType, syntax.NewToken(syntax.TokenText, t.text))
}
