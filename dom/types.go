package dom

import (
	"strings"

	"github.com/dhamidi/rdom/symbol"
)

// TypeMember can sit in the body of a class, structure or interface.
type TypeMember interface {
	Node
	typeMember()
}

// TypeDecl is a class, structure, interface or enum declaration.
type TypeDecl interface {
	StemMember
	TypeMember
	AccessModifier() symbol.Accessibility
	QualifiedName() string
	OuterName() string
}

type typeContainer struct {
	members memberList
}

func (c *typeContainer) Members() []TypeMember {
	return ofType[TypeMember](c.members.items)
}

func (c *typeContainer) AddMember(m TypeMember)              { c.members.add(m) }
func (c *typeContainer) InsertMember(i int, m TypeMember)    { c.members.insert(i, m) }
func (c *typeContainer) RemoveMember(m TypeMember) bool      { return c.members.remove(m) }
func (c *typeContainer) MoveMember(m TypeMember, i int) bool { return c.members.move(m, i) }

func (c *typeContainer) Fields() []*Field             { return ofType[*Field](c.members.items) }
func (c *typeContainer) Properties() []*Property      { return ofType[*Property](c.members.items) }
func (c *typeContainer) Methods() []*Method           { return ofType[*Method](c.members.items) }
func (c *typeContainer) Constructors() []*Constructor { return ofType[*Constructor](c.members.items) }
func (c *typeContainer) Types() []TypeDecl            { return ofType[TypeDecl](c.members.items) }
func (c *typeContainer) Classes() []*Class            { return ofType[*Class](c.members.items) }
func (c *typeContainer) Structures() []*Structure     { return ofType[*Structure](c.members.items) }
func (c *typeContainer) Interfaces() []*Interface     { return ofType[*Interface](c.members.items) }
func (c *typeContainer) Enums() []*Enum               { return ofType[*Enum](c.members.items) }

type typeParameterList struct {
	typeParams memberList
}

func (l *typeParameterList) TypeParameters() []*TypeParameter {
	return ofType[*TypeParameter](l.typeParams.items)
}

func (l *typeParameterList) AddTypeParameter(tp *TypeParameter)         { l.typeParams.add(tp) }
func (l *typeParameterList) RemoveTypeParameter(tp *TypeParameter) bool { return l.typeParams.remove(tp) }

type interfaceList struct {
	interfaces []*ReferencedType
}

// ImplementedInterfaces returns the interfaces in declaration order.
func (l *interfaceList) ImplementedInterfaces() []*ReferencedType {
	return append([]*ReferencedType(nil), l.interfaces...)
}

func (l *interfaceList) AddImplementedInterface(t *ReferencedType) {
	l.interfaces = append(l.interfaces, t)
}

func (l *interfaceList) SetImplementedInterfaces(types []*ReferencedType) {
	l.interfaces = append([]*ReferencedType(nil), types...)
}

func (l *interfaceList) RemoveImplementedInterface(t *ReferencedType) bool {
	for i, it := range l.interfaces {
		if it == t {
			l.interfaces = append(l.interfaces[:i], l.interfaces[i+1:]...)
			return true
		}
	}
	return false
}

type Class struct {
	nodeBase
	declaration
	typeContainer
	typeParameterList
	interfaceList
	baseType *ReferencedType
}

func NewClass(name string) *Class {
	c := &Class{}
	c.name = name
	c.members.owner = c
	c.typeParams.owner = c
	return c
}

func (c *Class) Kind() Kind  { return KindClass }
func (c *Class) stemMember() {}
func (c *Class) typeMember() {}

func (c *Class) Children() []Node {
	return append(c.typeParams.all(), c.members.items...)
}

func (c *Class) removeChild(n Node) bool {
	return c.typeParams.remove(n) || c.members.remove(n)
}

// BaseType is the class this one derives from, or nil.
func (c *Class) BaseType() *ReferencedType     { return c.baseType }
func (c *Class) SetBaseType(t *ReferencedType) { c.baseType = t }

func (c *Class) QualifiedName() string { return qualifiedName(c) }
func (c *Class) OuterName() string     { return outerName(c) }

type Structure struct {
	nodeBase
	declaration
	typeContainer
	typeParameterList
	interfaceList
}

func NewStructure(name string) *Structure {
	s := &Structure{}
	s.name = name
	s.members.owner = s
	s.typeParams.owner = s
	return s
}

func (s *Structure) Kind() Kind  { return KindStructure }
func (s *Structure) stemMember() {}
func (s *Structure) typeMember() {}

func (s *Structure) Children() []Node {
	return append(s.typeParams.all(), s.members.items...)
}

func (s *Structure) removeChild(n Node) bool {
	return s.typeParams.remove(n) || s.members.remove(n)
}

func (s *Structure) QualifiedName() string { return qualifiedName(s) }
func (s *Structure) OuterName() string     { return outerName(s) }

// Interface is an interface declaration. Its implemented interfaces are the
// interfaces it extends.
type Interface struct {
	nodeBase
	declaration
	typeContainer
	typeParameterList
	interfaceList
}

func NewInterface(name string) *Interface {
	i := &Interface{}
	i.name = name
	i.members.owner = i
	i.typeParams.owner = i
	return i
}

func (i *Interface) Kind() Kind  { return KindInterface }
func (i *Interface) stemMember() {}
func (i *Interface) typeMember() {}

func (i *Interface) Children() []Node {
	return append(i.typeParams.all(), i.members.items...)
}

func (i *Interface) removeChild(n Node) bool {
	return i.typeParams.remove(n) || i.members.remove(n)
}

func (i *Interface) QualifiedName() string { return qualifiedName(i) }
func (i *Interface) OuterName() string     { return outerName(i) }

type Enum struct {
	nodeBase
	declaration
	members    memberList
	underlying *ReferencedType

	// trailingComma records a separator after the last member.
	trailingComma bool
}

func NewEnum(name string) *Enum {
	e := &Enum{}
	e.name = name
	e.members.owner = e
	return e
}

func (e *Enum) Kind() Kind              { return KindEnum }
func (e *Enum) stemMember()             {}
func (e *Enum) typeMember()             {}
func (e *Enum) Children() []Node        { return e.members.all() }
func (e *Enum) removeChild(n Node) bool { return e.members.remove(n) }
func (e *Enum) QualifiedName() string   { return qualifiedName(e) }
func (e *Enum) OuterName() string       { return outerName(e) }

// UnderlyingType is the integral type after the colon, or nil when the
// declaration leaves it implicit.
func (e *Enum) UnderlyingType() *ReferencedType     { return e.underlying }
func (e *Enum) SetUnderlyingType(t *ReferencedType) { e.underlying = t }

func (e *Enum) Members() []*EnumMember {
	return ofType[*EnumMember](e.members.items)
}

func (e *Enum) AddMember(m *EnumMember)              { e.members.add(m) }
func (e *Enum) InsertMember(i int, m *EnumMember)    { e.members.insert(i, m) }
func (e *Enum) RemoveMember(m *EnumMember) bool      { return e.members.remove(m) }
func (e *Enum) MoveMember(m *EnumMember, i int) bool { return e.members.move(m, i) }

type EnumMember struct {
	nodeBase
	value *Expression
}

func NewEnumMember(name string, value *Expression) *EnumMember {
	m := &EnumMember{}
	m.name = name
	m.SetValue(value)
	return m
}

func (m *EnumMember) Kind() Kind { return KindEnumMember }

func (m *EnumMember) Children() []Node {
	if m.value == nil {
		return nil
	}
	return []Node{m.value}
}

// Value is the explicit value expression, or nil.
func (m *EnumMember) Value() *Expression { return m.value }

func (m *EnumMember) SetValue(e *Expression) {
	setSlot(m, &m.value, e)
}

func (m *EnumMember) removeChild(n Node) bool {
	return clearSlot(&m.value, n)
}

// setSlot puts e into a single-valued child slot of owner.
func setSlot(owner Node, slot **Expression, e *Expression) {
	if old := *slot; old != nil && old != e {
		release(old)
	}
	*slot = nil
	if e != nil {
		adopt(owner, e)
	}
	*slot = e
}

func clearSlot(slot **Expression, n Node) bool {
	if *slot == nil || Node(*slot) != n {
		return false
	}
	release(*slot)
	*slot = nil
	return true
}

// outerName joins the names of the enclosing type declarations and n.
func outerName(n Node) string {
	parts := []string{n.Name()}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(TypeDecl); ok {
			parts = append([]string{p.Name()}, parts...)
		}
	}
	return strings.Join(parts, ".")
}

// qualifiedName prefixes the outer name of n with its enclosing namespaces.
func qualifiedName(n Node) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if ns, ok := p.(*Namespace); ok {
			return ns.QualifiedName() + "." + outerName(n)
		}
	}
	return outerName(n)
}
