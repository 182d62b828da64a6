package dom

import "strings"

// StemMember can sit directly in a root or a namespace.
type StemMember interface {
	Node
	stemMember()
}

// stemContainer is the member sequence of roots and namespaces. Every view
// filters the sequence on each call.
type stemContainer struct {
	members memberList
}

func (c *stemContainer) Members() []StemMember {
	return ofType[StemMember](c.members.items)
}

func (c *stemContainer) AddMember(m StemMember)              { c.members.add(m) }
func (c *stemContainer) InsertMember(i int, m StemMember)    { c.members.insert(i, m) }
func (c *stemContainer) RemoveMember(m StemMember) bool      { return c.members.remove(m) }
func (c *stemContainer) MoveMember(m StemMember, i int) bool { return c.members.move(m, i) }

func (c *stemContainer) Usings() []*Using         { return ofType[*Using](c.members.items) }
func (c *stemContainer) Namespaces() []*Namespace { return ofType[*Namespace](c.members.items) }
func (c *stemContainer) Types() []TypeDecl        { return ofType[TypeDecl](c.members.items) }
func (c *stemContainer) Classes() []*Class        { return ofType[*Class](c.members.items) }
func (c *stemContainer) Structures() []*Structure { return ofType[*Structure](c.members.items) }
func (c *stemContainer) Interfaces() []*Interface { return ofType[*Interface](c.members.items) }
func (c *stemContainer) Enums() []*Enum           { return ofType[*Enum](c.members.items) }

// AllNamespaces returns the namespaces of the container and, recursively,
// the namespaces nested in them.
func (c *stemContainer) AllNamespaces() []*Namespace {
	var out []*Namespace
	for _, ns := range c.Namespaces() {
		out = append(out, ns)
		out = append(out, ns.AllNamespaces()...)
	}
	return out
}

// Root is a whole compilation unit.
type Root struct {
	nodeBase
	stemContainer
}

func NewRoot() *Root {
	r := &Root{}
	r.members.owner = r
	return r
}

func (r *Root) Kind() Kind              { return KindRoot }
func (r *Root) Children() []Node        { return r.members.all() }
func (r *Root) removeChild(n Node) bool { return r.members.remove(n) }

type Namespace struct {
	nodeBase
	stemContainer
}

func NewNamespace(name string) *Namespace {
	ns := &Namespace{}
	ns.members.owner = ns
	ns.name = name
	return ns
}

func (ns *Namespace) Kind() Kind              { return KindNamespace }
func (ns *Namespace) Children() []Node        { return ns.members.all() }
func (ns *Namespace) removeChild(n Node) bool { return ns.members.remove(n) }
func (ns *Namespace) stemMember()             {}

// QualifiedName joins the names of the enclosing namespaces and this one.
func (ns *Namespace) QualifiedName() string {
	parts := []string{ns.name}
	for p := ns.Parent(); p != nil; p = p.Parent() {
		if outer, ok := p.(*Namespace); ok {
			parts = append([]string{outer.name}, parts...)
		}
	}
	return strings.Join(parts, ".")
}

// Using is a using directive. Name is the imported namespace as written.
type Using struct {
	nodeBase
}

func NewUsing(name string) *Using {
	u := &Using{}
	u.name = name
	return u
}

func (u *Using) Kind() Kind       { return KindUsing }
func (u *Using) Children() []Node { return nil }
func (u *Using) stemMember()      {}
