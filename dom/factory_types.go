package dom

import (
	"strings"
	"sync"
	"unicode"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
)

func typeDeclLookup(keyword LanguageElement, token syntax.TokenKind) func() *WhitespaceLookup {
	return sync.OnceValue(func() *WhitespaceLookup {
		return modifierLookup().
			Add(keyword, token).
			Add(ElemIdentifier, syntax.TokenIdent).
			AddWithin(ElemTypeParameterStart, syntax.TokenLT, syntax.KindTypeParameterList).
			AddWithin(ElemTypeParameterEnd, syntax.TokenGT, syntax.KindTypeParameterList).
			AddWithin(ElemTypeParameterSeparator, syntax.TokenComma, syntax.KindTypeParameterList).
			AddWithin(ElemBaseListPrefix, syntax.TokenColon, syntax.KindBaseList).
			AddWithin(ElemBaseListSeparator, syntax.TokenComma, syntax.KindBaseList).
			Add(ElemStartDelimiter, syntax.TokenLBrace).
			Add(ElemEndDelimiter, syntax.TokenRBrace)
	})
}

var (
	classLookup     = typeDeclLookup(ElemClassKeyword, syntax.TokenClass)
	structureLookup = typeDeclLookup(ElemStructureKeyword, syntax.TokenStruct)
	interfaceLookup = typeDeclLookup(ElemInterfaceKeyword, syntax.TokenInterface)
	enumLookup      = typeDeclLookup(ElemEnumKeyword, syntax.TokenEnum)
)

var enumMemberLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemIdentifier, syntax.TokenIdent).
		Add(ElemEqualsAssignment, syntax.TokenAssign)
})

// enumBodyLookup adds the member separators, which sit directly in the enum
// declaration.
var enumBodyLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		AddRange(enumLookup()).
		Add(ElemEnumValueSeparator, syntax.TokenComma)
})

func typeFactories() []Factory {
	return []Factory{
		{
			SyntaxKind: syntax.KindClassDecl,
			DomKind:    KindClass,
			Lookup:     classLookup,
			Create:     createClass,
			Build:      buildClass,
		},
		{
			SyntaxKind: syntax.KindStructDecl,
			DomKind:    KindStructure,
			Lookup:     structureLookup,
			Create:     createStructure,
			Build:      buildStructure,
		},
		{
			SyntaxKind: syntax.KindInterfaceDecl,
			DomKind:    KindInterface,
			Lookup:     interfaceLookup,
			Create:     createInterface,
			Build:      buildInterface,
		},
		{
			SyntaxKind: syntax.KindEnumDecl,
			DomKind:    KindEnum,
			Lookup:     enumBodyLookup,
			Create:     createEnum,
			Build:      buildEnum,
		},
		{
			SyntaxKind: syntax.KindEnumMember,
			DomKind:    KindEnumMember,
			Lookup:     enumMemberLookup,
			Create:     createEnumMember,
			Build:      buildEnumMember,
		},
	}
}

// typeDeclParts are the pieces classes, structures and interfaces share.
type typeDeclParts struct {
	owner      Node
	decl       *declaration
	typeParams *typeParameterList
	interfaces *interfaceList
	members    *typeContainer
}

func (p typeDeclParts) create(cx *CreateContext, raw *syntax.Node) ([]*ReferencedType, error) {
	p.owner.SetName(identifier(raw))
	p.decl.readModifiers(raw, cx.SymbolOf(raw))

	var bases []*ReferencedType
	for _, child := range raw.Children {
		switch {
		case child.IsToken():
		case child.Kind == syntax.KindTypeParameterList:
			if err := createTypeParameters(cx, p.owner, p.typeParams, child); err != nil {
				return nil, err
			}
		case child.Kind == syntax.KindBaseList:
			for _, t := range child.Children {
				switch {
				case t.IsToken():
				case t.Kind == syntax.KindType:
					bases = append(bases, cx.Type(t))
				default:
					return nil, &UnsupportedError{SyntaxKind: t.Kind, Label: t.Label}
				}
			}
		default:
			m, err := createAs[TypeMember](cx, child, p.owner)
			if err != nil {
				return nil, err
			}
			p.members.AddMember(m)
		}
	}
	return bases, nil
}

func createTypeParameters(cx *CreateContext, owner Node, l *typeParameterList, raw *syntax.Node) error {
	for _, child := range raw.Children {
		if child.IsToken() {
			continue
		}
		tp, err := createAs[*TypeParameter](cx, child, owner)
		if err != nil {
			return err
		}
		l.AddTypeParameter(tp)
	}
	return nil
}

// isBaseClass decides whether the first entry of a class base list is the
// base class. Without a symbol, names of the form IName are taken to be
// interfaces.
func isBaseClass(t *ReferencedType) bool {
	if sym := t.Symbol(); sym != nil {
		return sym.Kind() == symbol.KindClass
	}
	return !looksLikeInterface(t.Text())
}

func looksLikeInterface(text string) bool {
	if i := strings.IndexByte(text, '<'); i >= 0 {
		text = text[:i]
	}
	if i := strings.LastIndexByte(text, '.'); i >= 0 {
		text = text[i+1:]
	}
	runes := []rune(strings.TrimSpace(text))
	return len(runes) > 1 && runes[0] == 'I' && unicode.IsUpper(runes[1])
}

func createClass(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	c := NewClass("")
	bases, err := typeDeclParts{c, &c.declaration, &c.typeParameterList, &c.interfaceList, &c.typeContainer}.create(cx, raw)
	if err != nil {
		return nil, err
	}
	if len(bases) > 0 && isBaseClass(bases[0]) {
		c.baseType = bases[0]
		bases = bases[1:]
	}
	c.interfaces = bases
	return c, nil
}

func createStructure(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	s := NewStructure("")
	bases, err := typeDeclParts{s, &s.declaration, &s.typeParameterList, &s.interfaceList, &s.typeContainer}.create(cx, raw)
	if err != nil {
		return nil, err
	}
	s.interfaces = bases
	return s, nil
}

func createInterface(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	i := NewInterface("")
	bases, err := typeDeclParts{i, &i.declaration, &i.typeParameterList, &i.interfaceList, &i.typeContainer}.create(cx, raw)
	if err != nil {
		return nil, err
	}
	i.interfaces = bases
	return i, nil
}

func (p typeDeclParts) build(bx *BuildContext, kind syntax.Kind, keyword syntax.TokenKind, bases []*ReferencedType) (*syntax.Node, error) {
	if p.owner.Name() == "" {
		return nil, invariant(p.owner, "type declaration without a name")
	}
	w := bx.Writer(p.owner)
	out := syntax.NewNode(kind, bx.modifiers(w, p.decl)...)
	out.AddChild(w.Token(syntax.KindNone, keyword, "", space))
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenIdent, p.owner.Name(), space))

	tpl, err := buildTypeParameters(bx, w, p.typeParams.typeParams.items)
	if err != nil {
		return nil, err
	}
	out.AddChild(tpl)
	out.AddChild(buildBaseList(bx, w, p.owner, bases))

	out.AddChild(w.Token(syntax.KindNone, syntax.TokenLBrace, "", Trivia{Leading: bx.LineStart(0)}))
	for _, m := range p.members.members.items {
		built, err := bx.BuildMember(m, bx.LineStart(1))
		if err != nil {
			return nil, err
		}
		out.AddChild(built)
	}
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenRBrace, "", Trivia{Leading: bx.LineStart(0)}))
	return out, nil
}

func buildTypeParameters(bx *BuildContext, w *TokenWriter, params []Node) (*syntax.Node, error) {
	if len(params) == 0 {
		return nil, nil
	}
	list := syntax.NewNode(syntax.KindTypeParameterList,
		w.Token(syntax.KindTypeParameterList, syntax.TokenLT, "", noSpace))
	for i, p := range params {
		leading := ""
		if i > 0 {
			list.AddChild(w.Token(syntax.KindTypeParameterList, syntax.TokenComma, "", noSpace))
			leading = " "
		}
		built, err := bx.BuildInline(p, leading)
		if err != nil {
			return nil, err
		}
		list.AddChild(built)
	}
	list.AddChild(w.Token(syntax.KindTypeParameterList, syntax.TokenGT, "", noSpace))
	return list, nil
}

func buildBaseList(bx *BuildContext, w *TokenWriter, owner Node, bases []*ReferencedType) *syntax.Node {
	if len(bases) == 0 {
		return nil
	}
	list := syntax.NewNode(syntax.KindBaseList,
		w.Token(syntax.KindBaseList, syntax.TokenColon, "", space))
	for i, t := range bases {
		if i > 0 {
			list.AddChild(w.Token(syntax.KindBaseList, syntax.TokenComma, "", noSpace))
		}
		list.AddChild(bx.Type(owner, t, " "))
	}
	return list
}

func buildClass(bx *BuildContext, n Node) (*syntax.Node, error) {
	c := n.(*Class)
	var bases []*ReferencedType
	if c.baseType != nil {
		bases = append(bases, c.baseType)
	}
	bases = append(bases, c.interfaces...)
	parts := typeDeclParts{c, &c.declaration, &c.typeParameterList, &c.interfaceList, &c.typeContainer}
	return parts.build(bx, syntax.KindClassDecl, syntax.TokenClass, bases)
}

func buildStructure(bx *BuildContext, n Node) (*syntax.Node, error) {
	s := n.(*Structure)
	parts := typeDeclParts{s, &s.declaration, &s.typeParameterList, &s.interfaceList, &s.typeContainer}
	return parts.build(bx, syntax.KindStructDecl, syntax.TokenStruct, s.interfaces)
}

func buildInterface(bx *BuildContext, n Node) (*syntax.Node, error) {
	i := n.(*Interface)
	parts := typeDeclParts{i, &i.declaration, &i.typeParameterList, &i.interfaceList, &i.typeContainer}
	return parts.build(bx, syntax.KindInterfaceDecl, syntax.TokenInterface, i.interfaces)
}

func createEnum(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	e := NewEnum(identifier(raw))
	e.readModifiers(raw, cx.SymbolOf(raw))
	commaLast := false
	for _, child := range raw.Children {
		switch {
		case child.IsTokenOf(syntax.TokenComma):
			commaLast = true
		case child.IsToken():
		case child.Kind == syntax.KindBaseList:
			e.underlying = cx.Type(child.FirstChildOfKind(syntax.KindType))
		default:
			m, err := createAs[*EnumMember](cx, child, e)
			if err != nil {
				return nil, err
			}
			e.AddMember(m)
			commaLast = false
		}
	}
	e.trailingComma = commaLast && e.members.len() > 0
	return e, nil
}

func buildEnum(bx *BuildContext, n Node) (*syntax.Node, error) {
	e := n.(*Enum)
	if e.name == "" {
		return nil, invariant(e, "enum without a name")
	}
	w := bx.Writer(e)
	out := syntax.NewNode(syntax.KindEnumDecl, bx.modifiers(w, &e.declaration)...)
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenEnum, "", space))
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenIdent, e.name, space))
	if e.underlying != nil {
		out.AddChild(buildBaseList(bx, w, e, []*ReferencedType{e.underlying}))
	}
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenLBrace, "", Trivia{Leading: bx.LineStart(0)}))
	for i, m := range e.members.items {
		built, err := bx.BuildMember(m, bx.LineStart(1))
		if err != nil {
			return nil, err
		}
		out.AddChild(built)
		if i < e.members.len()-1 || e.trailingComma {
			out.AddChild(w.Token(syntax.KindNone, syntax.TokenComma, "", noSpace))
		}
	}
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenRBrace, "", Trivia{Leading: bx.LineStart(0)}))
	return out, nil
}

func createEnumMember(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	m := &EnumMember{}
	m.name = identifier(raw)
	value, err := cx.Expression(raw.FirstChildOfKind(syntax.KindExpression), m)
	if err != nil {
		return nil, err
	}
	m.SetValue(value)
	return m, nil
}

func buildEnumMember(bx *BuildContext, n Node) (*syntax.Node, error) {
	m := n.(*EnumMember)
	if m.name == "" {
		return nil, invariant(m, "enum member without a name")
	}
	w := bx.Writer(m)
	out := syntax.NewNode(syntax.KindEnumMember,
		w.Token(syntax.KindNone, syntax.TokenIdent, m.name, noSpace))
	if m.value != nil {
		out.AddChild(w.Token(syntax.KindNone, syntax.TokenAssign, "", space))
		value, err := bx.Expression(m.value, " ")
		if err != nil {
			return nil, err
		}
		out.AddChild(value)
	}
	return out, nil
}
