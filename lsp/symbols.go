package lsp

import (
	"github.com/dhamidi/rdom/dom"
	"github.com/dhamidi/rdom/syntax"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var symbolKinds = map[dom.Kind]protocol.SymbolKind{
	dom.KindNamespace:   protocol.SymbolKindNamespace,
	dom.KindClass:       protocol.SymbolKindClass,
	dom.KindStructure:   protocol.SymbolKindStruct,
	dom.KindInterface:   protocol.SymbolKindInterface,
	dom.KindEnum:        protocol.SymbolKindEnum,
	dom.KindEnumMember:  protocol.SymbolKindEnumMember,
	dom.KindField:       protocol.SymbolKindField,
	dom.KindProperty:    protocol.SymbolKindProperty,
	dom.KindMethod:      protocol.SymbolKindMethod,
	dom.KindConstructor: protocol.SymbolKindConstructor,
}

// DocumentSymbols lists the declarations below n as an outline.
func DocumentSymbols(n dom.Node) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	for _, child := range n.Children() {
		kind, ok := symbolKinds[child.Kind()]
		if !ok {
			continue
		}
		sym := protocol.DocumentSymbol{
			Name:           child.Name(),
			Detail:         detail(child),
			Kind:           kind,
			Range:          toRange(spanOf(child.RawItem())),
			SelectionRange: toRange(nameSpan(child.RawItem())),
		}
		switch child.Kind() {
		case dom.KindNamespace, dom.KindClass, dom.KindStructure, dom.KindInterface, dom.KindEnum:
			sym.Children = DocumentSymbols(child)
		}
		out = append(out, sym)
	}
	return out
}

func detail(n dom.Node) *string {
	var t *dom.ReferencedType
	switch n := n.(type) {
	case *dom.Field:
		t = n.Type()
	case *dom.Property:
		t = n.Type()
	case *dom.Method:
		t = n.ReturnType()
	}
	if t == nil {
		return nil
	}
	text := t.Text()
	return &text
}

func spanOf(raw *syntax.Node) syntax.Span {
	if raw == nil {
		return syntax.Span{}
	}
	return raw.Span
}

// nameSpan is the span of the declared name, or of the whole node when it
// has no identifier of its own.
func nameSpan(raw *syntax.Node) syntax.Span {
	if raw == nil {
		return syntax.Span{}
	}
	if tok := raw.FirstTokenOf(syntax.TokenIdent); tok != nil {
		return tok.Span
	}
	if name := raw.FirstChildOfKind(syntax.KindName); name != nil {
		return name.Span
	}
	return raw.Span
}

func toRange(s syntax.Span) protocol.Range {
	return protocol.Range{Start: toPosition(s.Start), End: toPosition(s.End)}
}

// toPosition converts a 1-based line and column to an LSP position.
// Columns count bytes, which matches UTF-16 units for ASCII text only.
func toPosition(p syntax.Position) protocol.Position {
	var pos protocol.Position
	if p.Line > 0 {
		pos.Line = protocol.UInteger(p.Line - 1)
	}
	if p.Column > 0 {
		pos.Character = protocol.UInteger(p.Column - 1)
	}
	return pos
}
