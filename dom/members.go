package dom

import (
	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
)

type Field struct {
	nodeBase
	declaration
	typ         *ReferencedType
	initializer *Expression
}

func NewField(name string, typ *ReferencedType) *Field {
	f := &Field{typ: typ}
	f.name = name
	return f
}

func (f *Field) Kind() Kind  { return KindField }
func (f *Field) typeMember() {}

func (f *Field) Children() []Node {
	if f.initializer == nil {
		return nil
	}
	return []Node{f.initializer}
}

func (f *Field) removeChild(n Node) bool { return clearSlot(&f.initializer, n) }

func (f *Field) Type() *ReferencedType        { return f.typ }
func (f *Field) SetType(t *ReferencedType)    { f.typ = t }
func (f *Field) Initializer() *Expression     { return f.initializer }
func (f *Field) SetInitializer(e *Expression) { setSlot(f, &f.initializer, e) }

// Property is a property declaration with up to one get and one set
// accessor.
type Property struct {
	nodeBase
	declaration
	typ    *ReferencedType
	getter *Accessor
	setter *Accessor

	// accessors is the written accessor list; it replays whole while both
	// accessors are the ones read from it and unchanged.
	accessors     *syntax.Node
	writtenGetter *Accessor
	writtenSetter *Accessor
}

func NewProperty(name string, typ *ReferencedType, canGet, canSet bool) *Property {
	p := &Property{typ: typ}
	p.name = name
	p.SetCanGet(canGet)
	p.SetCanSet(canSet)
	return p
}

func (p *Property) Kind() Kind       { return KindProperty }
func (p *Property) typeMember()      {}
func (p *Property) Children() []Node { return nil }

func (p *Property) Type() *ReferencedType     { return p.typ }
func (p *Property) SetType(t *ReferencedType) { p.typ = t }
func (p *Property) Getter() *Accessor         { return p.getter }
func (p *Property) SetGetter(a *Accessor)     { p.getter = a }
func (p *Property) Setter() *Accessor         { return p.setter }
func (p *Property) SetSetter(a *Accessor)     { p.setter = a }
func (p *Property) CanGet() bool              { return p.getter != nil }
func (p *Property) CanSet() bool              { return p.setter != nil }

// SetCanGet adds an auto-implemented getter or removes the getter. A getter
// that already exists is kept with its body.
func (p *Property) SetCanGet(v bool) {
	switch {
	case !v:
		p.getter = nil
	case p.getter == nil:
		p.getter = &Accessor{}
	}
}

// SetCanSet is SetCanGet for the setter.
func (p *Property) SetCanSet(v bool) {
	switch {
	case !v:
		p.setter = nil
	case p.setter == nil:
		p.setter = &Accessor{}
	}
}

// Accessor is the get or set part of a property. Access is NotApplicable
// when the accessor has the property's accessibility. Body is the written
// block or arrow body, and empty for an auto-implemented accessor.
type Accessor struct {
	Access symbol.Accessibility
	Body   string

	keyword       syntax.TokenKind
	tokens        []*syntax.Node
	writtenAccess symbol.Accessibility
	writtenBody   string
}

func NewAccessor(access symbol.Accessibility, body string) *Accessor {
	return &Accessor{Access: access, Body: body}
}

func (a *Accessor) IsAuto() bool { return a.Body == "" }

// replayable reports whether a can be written with the tokens it was read
// from.
func (a *Accessor) replayable(keyword syntax.TokenKind) bool {
	return a != nil && a.tokens != nil && a.keyword == keyword &&
		a.Access == a.writtenAccess && a.Body == a.writtenBody
}

func (a *Accessor) copy() *Accessor {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

type parameterList struct {
	params memberList
}

func (l *parameterList) Parameters() []*Parameter {
	return ofType[*Parameter](l.params.items)
}

func (l *parameterList) AddParameter(p *Parameter)           { l.params.add(p) }
func (l *parameterList) InsertParameter(i int, p *Parameter) { l.params.insert(i, p) }
func (l *parameterList) RemoveParameter(p *Parameter) bool   { return l.params.remove(p) }

type Method struct {
	nodeBase
	declaration
	typeParameterList
	parameterList
	statementBlock
	returnType *ReferencedType

	// hasBody is false for methods declared with a semicolon, as in
	// interfaces and abstract classes.
	hasBody bool
}

func NewMethod(name string, returnType *ReferencedType) *Method {
	m := &Method{returnType: returnType, hasBody: true}
	m.name = name
	m.typeParams.owner = m
	m.params.owner = m
	m.statements.owner = m
	m.hasBlock = true
	return m
}

func (m *Method) Kind() Kind  { return KindMethod }
func (m *Method) typeMember() {}

func (m *Method) Children() []Node {
	out := m.typeParams.all()
	out = append(out, m.params.items...)
	return append(out, m.statements.items...)
}

func (m *Method) removeChild(n Node) bool {
	return m.typeParams.remove(n) || m.params.remove(n) || m.statements.remove(n)
}

func (m *Method) ReturnType() *ReferencedType     { return m.returnType }
func (m *Method) SetReturnType(t *ReferencedType) { m.returnType = t }

// HasBody reports whether the method has a block body. Adding a statement
// gives it one.
func (m *Method) HasBody() bool     { return m.hasBody || m.statements.len() > 0 }
func (m *Method) SetHasBody(v bool) { m.hasBody = v }

type Constructor struct {
	nodeBase
	declaration
	parameterList
	statementBlock
}

func NewConstructor(name string) *Constructor {
	c := &Constructor{}
	c.name = name
	c.params.owner = c
	c.statements.owner = c
	c.hasBlock = true
	return c
}

func (c *Constructor) Kind() Kind  { return KindConstructor }
func (c *Constructor) typeMember() {}

func (c *Constructor) Children() []Node {
	return append(c.params.all(), c.statements.items...)
}

func (c *Constructor) removeChild(n Node) bool {
	return c.params.remove(n) || c.statements.remove(n)
}

type ParameterModifier int

const (
	ParamNone ParameterModifier = iota
	ParamRef
	ParamOut
	ParamIn
	ParamParams
	ParamThis
)

var parameterModifierTokens = map[ParameterModifier]syntax.TokenKind{
	ParamRef:    syntax.TokenRef,
	ParamOut:    syntax.TokenOut,
	ParamIn:     syntax.TokenIn,
	ParamParams: syntax.TokenParams,
	ParamThis:   syntax.TokenThis,
}

func (m ParameterModifier) String() string {
	if tok, ok := parameterModifierTokens[m]; ok {
		return tok.Text()
	}
	return ""
}

func parameterModifierOf(tok syntax.TokenKind) ParameterModifier {
	for m, t := range parameterModifierTokens {
		if t == tok {
			return m
		}
	}
	return ParamNone
}

type Parameter struct {
	nodeBase
	typ      *ReferencedType
	modifier ParameterModifier
	def      *Expression
}

func NewParameter(name string, typ *ReferencedType) *Parameter {
	p := &Parameter{typ: typ}
	p.name = name
	return p
}

func (p *Parameter) Kind() Kind { return KindParameter }

func (p *Parameter) Children() []Node {
	if p.def == nil {
		return nil
	}
	return []Node{p.def}
}

func (p *Parameter) removeChild(n Node) bool { return clearSlot(&p.def, n) }

func (p *Parameter) Type() *ReferencedType           { return p.typ }
func (p *Parameter) SetType(t *ReferencedType)       { p.typ = t }
func (p *Parameter) Modifier() ParameterModifier     { return p.modifier }
func (p *Parameter) SetModifier(m ParameterModifier) { p.modifier = m }

// Default is the default value expression of an optional parameter.
func (p *Parameter) Default() *Expression     { return p.def }
func (p *Parameter) SetDefault(e *Expression) { setSlot(p, &p.def, e) }

type TypeParameter struct {
	nodeBase
}

func NewTypeParameter(name string) *TypeParameter {
	tp := &TypeParameter{}
	tp.name = name
	return tp
}

func (tp *TypeParameter) Kind() Kind       { return KindTypeParameter }
func (tp *TypeParameter) Children() []Node { return nil }
