package dom

import (
	"strings"
	"sync"

	"github.com/dhamidi/rdom/syntax"
)

var fieldLookup = sync.OnceValue(func() *WhitespaceLookup {
	return modifierLookup().
		Add(ElemIdentifier, syntax.TokenIdent).
		Add(ElemEqualsAssignment, syntax.TokenAssign).
		Add(ElemEndOfStatement, syntax.TokenSemicolon)
})

// The accessor list is replayed whole while unchanged; its slots serve a
// regenerated list.
var propertyLookup = sync.OnceValue(func() *WhitespaceLookup {
	return modifierLookup().
		Add(ElemIdentifier, syntax.TokenIdent).
		AddWithin(ElemStartDelimiter, syntax.TokenLBrace, syntax.KindAccessorList).
		AddWithin(ElemEndDelimiter, syntax.TokenRBrace, syntax.KindAccessorList).
		AddWithin(ElemGetKeyword, syntax.TokenGet, syntax.KindAccessorList).
		AddWithin(ElemSetKeyword, syntax.TokenSet, syntax.KindAccessorList).
		AddWithin(ElemEndOfStatement, syntax.TokenSemicolon, syntax.KindAccessorList)
})

func parameterListLookup() *WhitespaceLookup {
	return NewWhitespaceLookup().
		AddWithin(ElemParameterStart, syntax.TokenLParen, syntax.KindParameterList).
		AddWithin(ElemParameterEnd, syntax.TokenRParen, syntax.KindParameterList).
		AddWithin(ElemParameterSeparator, syntax.TokenComma, syntax.KindParameterList)
}

func blockLookup() *WhitespaceLookup {
	return NewWhitespaceLookup().
		AddWithin(ElemStartDelimiter, syntax.TokenLBrace, syntax.KindBlock).
		AddWithin(ElemEndDelimiter, syntax.TokenRBrace, syntax.KindBlock)
}

var methodLookup = sync.OnceValue(func() *WhitespaceLookup {
	return modifierLookup().
		Add(ElemIdentifier, syntax.TokenIdent).
		AddWithin(ElemTypeParameterStart, syntax.TokenLT, syntax.KindTypeParameterList).
		AddWithin(ElemTypeParameterEnd, syntax.TokenGT, syntax.KindTypeParameterList).
		AddWithin(ElemTypeParameterSeparator, syntax.TokenComma, syntax.KindTypeParameterList).
		AddRange(parameterListLookup()).
		AddRange(blockLookup()).
		Add(ElemEndOfStatement, syntax.TokenSemicolon)
})

var constructorLookup = sync.OnceValue(func() *WhitespaceLookup {
	return modifierLookup().
		Add(ElemIdentifier, syntax.TokenIdent).
		AddRange(parameterListLookup()).
		AddRange(blockLookup())
})

var parameterLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemParameterModifier, syntax.TokenRef).
		Add(ElemParameterModifier, syntax.TokenOut).
		Add(ElemParameterModifier, syntax.TokenIn).
		Add(ElemParameterModifier, syntax.TokenParams).
		Add(ElemParameterModifier, syntax.TokenThis).
		Add(ElemIdentifier, syntax.TokenIdent).
		Add(ElemEqualsAssignment, syntax.TokenAssign)
})

var typeParameterLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemIdentifier, syntax.TokenIdent)
})

func memberFactories() []Factory {
	return []Factory{
		{
			SyntaxKind: syntax.KindFieldDecl,
			DomKind:    KindField,
			Lookup:     fieldLookup,
			Create:     createField,
			Build:      buildField,
		},
		{
			SyntaxKind: syntax.KindPropertyDecl,
			DomKind:    KindProperty,
			Lookup:     propertyLookup,
			Create:     createProperty,
			Build:      buildProperty,
		},
		{
			SyntaxKind: syntax.KindMethodDecl,
			DomKind:    KindMethod,
			Lookup:     methodLookup,
			Create:     createMethod,
			Build:      buildMethod,
		},
		{
			SyntaxKind: syntax.KindConstructorDecl,
			DomKind:    KindConstructor,
			Lookup:     constructorLookup,
			Create:     createConstructor,
			Build:      buildConstructor,
		},
		{
			SyntaxKind: syntax.KindParameter,
			DomKind:    KindParameter,
			Lookup:     parameterLookup,
			Create:     createParameter,
			Build:      buildParameter,
		},
		{
			SyntaxKind: syntax.KindTypeParameter,
			DomKind:    KindTypeParameter,
			Lookup:     typeParameterLookup,
			Create:     createTypeParameter,
			Build:      buildTypeParameter,
		},
	}
}

func createField(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	f := &Field{}
	f.name = identifier(raw)
	f.readModifiers(raw, cx.SymbolOf(raw))
	f.typ = cx.Type(raw.FirstChildOfKind(syntax.KindType))
	value, err := cx.Expression(raw.FirstChildOfKind(syntax.KindExpression), f)
	if err != nil {
		return nil, err
	}
	f.SetInitializer(value)
	return f, nil
}

func buildField(bx *BuildContext, n Node) (*syntax.Node, error) {
	f := n.(*Field)
	if f.name == "" {
		return nil, invariant(f, "field without a name")
	}
	if f.typ == nil {
		return nil, invariant(f, "field without a type")
	}
	w := bx.Writer(f)
	out := syntax.NewNode(syntax.KindFieldDecl, bx.modifiers(w, &f.declaration)...)
	out.AddChild(bx.Type(f, f.typ, " "))
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenIdent, f.name, space))
	if f.initializer != nil {
		out.AddChild(w.Token(syntax.KindNone, syntax.TokenAssign, "", space))
		value, err := bx.Expression(f.initializer, " ")
		if err != nil {
			return nil, err
		}
		out.AddChild(value)
	}
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenSemicolon, "", noSpace))
	return out, nil
}

func createProperty(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	p := &Property{}
	p.name = identifier(raw)
	p.readModifiers(raw, cx.SymbolOf(raw))
	p.typ = cx.Type(raw.FirstChildOfKind(syntax.KindType))
	if acc := raw.FirstChildOfKind(syntax.KindAccessorList); acc != nil {
		getter, setter, err := readAccessors(acc)
		if err != nil {
			return nil, err
		}
		p.accessors = acc
		p.getter, p.writtenGetter = getter, getter
		p.setter, p.writtenSetter = setter, setter
	}
	return p, nil
}

// readAccessors splits a written accessor list into its get and set
// accessors. Anything else in the list is unsupported.
func readAccessors(list *syntax.Node) (getter, setter *Accessor, err error) {
	unsupported := &UnsupportedError{SyntaxKind: list.Kind, Label: "accessor_list"}
	toks := list.Children
	end := len(toks) - 1
	if end < 1 || !toks[0].IsTokenOf(syntax.TokenLBrace) || !toks[end].IsTokenOf(syntax.TokenRBrace) {
		return nil, nil, unsupported
	}
	for i := 1; i < end; {
		start := i
		seen := make(map[syntax.TokenKind]bool)
		for i < end && toks[i].IsToken() && isAccessToken(toks[i].Token.Kind) {
			seen[toks[i].Token.Kind] = true
			i++
		}
		if i == end || !(toks[i].IsTokenOf(syntax.TokenGet) || toks[i].IsTokenOf(syntax.TokenSet)) {
			return nil, nil, unsupported
		}
		keyword := toks[i].Token.Kind
		i++
		bodyStart := i
		if i = accessorBodyEnd(toks, i, end); i < 0 {
			return nil, nil, unsupported
		}
		a := &Accessor{
			Access:  accessFromTokens(seen),
			Body:    bodyText(toks[bodyStart:i]),
			keyword: keyword,
			tokens:  toks[start:i],
		}
		a.writtenAccess, a.writtenBody = a.Access, a.Body
		slot := &getter
		if keyword == syntax.TokenSet {
			slot = &setter
		}
		if *slot != nil {
			return nil, nil, unsupported
		}
		*slot = a
	}
	return getter, setter, nil
}

// accessorBodyEnd returns the index just past the body starting at i: a
// semicolon, a block or an arrow body. It returns -1 when there is none.
func accessorBodyEnd(toks []*syntax.Node, i, end int) int {
	if i >= end || !toks[i].IsToken() {
		return -1
	}
	switch first := toks[i].Token; {
	case first.Kind == syntax.TokenSemicolon:
		return i + 1
	case first.Kind == syntax.TokenLBrace, first.Kind == syntax.TokenText && first.Literal == "=>":
		arrow := first.Kind == syntax.TokenText
		depth := 0
		for ; i < end; i++ {
			if !toks[i].IsToken() {
				return -1
			}
			switch toks[i].Token.Kind {
			case syntax.TokenLBrace:
				depth++
			case syntax.TokenRBrace:
				depth--
				if depth == 0 && !arrow {
					return i + 1
				}
			case syntax.TokenSemicolon:
				if depth == 0 && arrow {
					return i + 1
				}
			}
		}
	}
	return -1
}

// bodyText is the text of an accessor body, empty for a lone semicolon.
func bodyText(toks []*syntax.Node) string {
	if len(toks) == 1 && toks[0].IsTokenOf(syntax.TokenSemicolon) {
		return ""
	}
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 {
			sb.WriteString(t.Token.Leading)
		}
		sb.WriteString(t.Token.Literal)
		if i < len(toks)-1 {
			sb.WriteString(t.Token.Trailing)
		}
	}
	return sb.String()
}

func buildProperty(bx *BuildContext, n Node) (*syntax.Node, error) {
	p := n.(*Property)
	if p.name == "" {
		return nil, invariant(p, "property without a name")
	}
	if p.typ == nil {
		return nil, invariant(p, "property without a type")
	}
	if p.getter == nil && p.setter == nil {
		return nil, invariant(p, "property without accessors")
	}
	w := bx.Writer(p)
	out := syntax.NewNode(syntax.KindPropertyDecl, bx.modifiers(w, &p.declaration)...)
	out.AddChild(bx.Type(p, p.typ, " "))
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenIdent, p.name, space))
	out.AddChild(p.buildAccessors(w))
	return out, nil
}

// buildAccessors replays the written accessor list while both accessors are
// unchanged. Otherwise the list is regenerated; an accessor that is still
// as written keeps its tokens, body included.
func (p *Property) buildAccessors(w *TokenWriter) *syntax.Node {
	if p.accessors != nil &&
		sameAccessorSlot(p.getter, p.writtenGetter, syntax.TokenGet) &&
		sameAccessorSlot(p.setter, p.writtenSetter, syntax.TokenSet) {
		return p.accessors.Clone()
	}
	list := syntax.NewNode(syntax.KindAccessorList,
		w.Token(syntax.KindAccessorList, syntax.TokenLBrace, "", space))
	for _, acc := range []struct {
		a       *Accessor
		keyword syntax.TokenKind
	}{{p.getter, syntax.TokenGet}, {p.setter, syntax.TokenSet}} {
		a := acc.a
		switch {
		case a == nil:
		case a.replayable(acc.keyword):
			for _, tok := range a.tokens {
				w.skip(syntax.KindAccessorList, tok.Token.Kind)
				list.AddChild(tok.Clone())
			}
		default:
			for _, tok := range accessTokens(a.Access) {
				list.AddChild(w.Token(syntax.KindAccessorList, tok, "", space))
			}
			list.AddChild(w.Token(syntax.KindAccessorList, acc.keyword, "", space))
			if a.IsAuto() {
				list.AddChild(w.Token(syntax.KindAccessorList, syntax.TokenSemicolon, "", noSpace))
				continue
			}
			body := syntax.NewToken(syntax.TokenText, a.Body)
			body.Token.Leading = " "
			list.AddChild(body)
		}
	}
	list.AddChild(w.Token(syntax.KindAccessorList, syntax.TokenRBrace, "", space))
	return list
}

func sameAccessorSlot(current, written *Accessor, keyword syntax.TokenKind) bool {
	return current == written && (current == nil || current.replayable(keyword))
}

func createParameters(cx *CreateContext, owner Node, l *parameterList, raw *syntax.Node) error {
	if raw == nil {
		return nil
	}
	for _, child := range raw.Children {
		if child.IsToken() {
			continue
		}
		p, err := createAs[*Parameter](cx, child, owner)
		if err != nil {
			return err
		}
		l.AddParameter(p)
	}
	return nil
}

func buildParameters(bx *BuildContext, w *TokenWriter, params []Node) (*syntax.Node, error) {
	list := syntax.NewNode(syntax.KindParameterList,
		w.Token(syntax.KindParameterList, syntax.TokenLParen, "", noSpace))
	for i, p := range params {
		leading := ""
		if i > 0 {
			list.AddChild(w.Token(syntax.KindParameterList, syntax.TokenComma, "", noSpace))
			leading = " "
		}
		built, err := bx.BuildInline(p, leading)
		if err != nil {
			return nil, err
		}
		list.AddChild(built)
	}
	list.AddChild(w.Token(syntax.KindParameterList, syntax.TokenRParen, "", noSpace))
	return list, nil
}

func createMethod(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	m := NewMethod(identifier(raw), nil)
	m.readModifiers(raw, cx.SymbolOf(raw))
	m.returnType = cx.Type(raw.FirstChildOfKind(syntax.KindType))
	if tpl := raw.FirstChildOfKind(syntax.KindTypeParameterList); tpl != nil {
		if err := createTypeParameters(cx, m, &m.typeParameterList, tpl); err != nil {
			return nil, err
		}
	}
	if err := createParameters(cx, m, &m.parameterList, raw.FirstChildOfKind(syntax.KindParameterList)); err != nil {
		return nil, err
	}
	body := raw.FirstChildOfKind(syntax.KindBlock)
	m.hasBody = body != nil
	if body != nil {
		if err := createStatements(cx, m, &m.statementBlock, body); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func buildMethod(bx *BuildContext, n Node) (*syntax.Node, error) {
	m := n.(*Method)
	if m.name == "" {
		return nil, invariant(m, "method without a name")
	}
	if m.returnType == nil {
		return nil, invariant(m, "method without a return type")
	}
	w := bx.Writer(m)
	out := syntax.NewNode(syntax.KindMethodDecl, bx.modifiers(w, &m.declaration)...)
	out.AddChild(bx.Type(m, m.returnType, " "))
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenIdent, m.name, space))
	tpl, err := buildTypeParameters(bx, w, m.typeParams.items)
	if err != nil {
		return nil, err
	}
	out.AddChild(tpl)
	params, err := buildParameters(bx, w, m.params.items)
	if err != nil {
		return nil, err
	}
	out.AddChild(params)
	if !m.HasBody() {
		out.AddChild(w.Token(syntax.KindNone, syntax.TokenSemicolon, "", noSpace))
		return out, nil
	}
	body, err := bx.block(w, &m.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	return out, nil
}

func createConstructor(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	c := NewConstructor(identifier(raw))
	c.readModifiers(raw, cx.SymbolOf(raw))
	if err := createParameters(cx, c, &c.parameterList, raw.FirstChildOfKind(syntax.KindParameterList)); err != nil {
		return nil, err
	}
	if body := raw.FirstChildOfKind(syntax.KindBlock); body != nil {
		if err := createStatements(cx, c, &c.statementBlock, body); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func buildConstructor(bx *BuildContext, n Node) (*syntax.Node, error) {
	c := n.(*Constructor)
	if c.name == "" {
		return nil, invariant(c, "constructor without a name")
	}
	w := bx.Writer(c)
	out := syntax.NewNode(syntax.KindConstructorDecl, bx.modifiers(w, &c.declaration)...)
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenIdent, c.name, space))
	params, err := buildParameters(bx, w, c.params.items)
	if err != nil {
		return nil, err
	}
	out.AddChild(params)
	body, err := bx.block(w, &c.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	return out, nil
}

func createParameter(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	p := &Parameter{}
	p.name = identifier(raw)
	p.typ = cx.Type(raw.FirstChildOfKind(syntax.KindType))
	for _, child := range raw.Children {
		if child.IsToken() {
			if m := parameterModifierOf(child.Token.Kind); m != ParamNone {
				p.modifier = m
				break
			}
		}
	}
	def, err := cx.Expression(raw.FirstChildOfKind(syntax.KindExpression), p)
	if err != nil {
		return nil, err
	}
	p.SetDefault(def)
	return p, nil
}

func buildParameter(bx *BuildContext, n Node) (*syntax.Node, error) {
	p := n.(*Parameter)
	if p.name == "" {
		return nil, invariant(p, "parameter without a name")
	}
	if p.typ == nil {
		return nil, invariant(p, "parameter without a type")
	}
	w := bx.Writer(p)
	out := syntax.NewNode(syntax.KindParameter)
	if tok, ok := parameterModifierTokens[p.modifier]; ok {
		out.AddChild(w.Token(syntax.KindNone, tok, "", noSpace))
	}
	out.AddChild(bx.Type(p, p.typ, " "))
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenIdent, p.name, space))
	if p.def != nil {
		out.AddChild(w.Token(syntax.KindNone, syntax.TokenAssign, "", space))
		def, err := bx.Expression(p.def, " ")
		if err != nil {
			return nil, err
		}
		out.AddChild(def)
	}
	return out, nil
}

func createTypeParameter(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	tp := &TypeParameter{}
	tp.name = identifier(raw)
	return tp, nil
}

func buildTypeParameter(bx *BuildContext, n Node) (*syntax.Node, error) {
	tp := n.(*TypeParameter)
	if tp.name == "" {
		return nil, invariant(tp, "type parameter without a name")
	}
	w := bx.Writer(tp)
	return syntax.NewNode(syntax.KindTypeParameter,
		w.Token(syntax.KindNone, syntax.TokenIdent, tp.name, noSpace)), nil
}
