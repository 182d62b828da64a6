package dom

import "fmt"

// Copy returns a deep copy of n. Owned children are copied too; referenced
// types are shared since they are immutable. The copy keeps the raw syntax,
// symbol, captured whitespace and annotations of the original, and has no
// parent.
func Copy(n Node) Node {
	switch n := n.(type) {
	case *Root:
		return n.Copy()
	case *Namespace:
		return n.Copy()
	case *Using:
		return n.Copy()
	case *Class:
		return n.Copy()
	case *Structure:
		return n.Copy()
	case *Interface:
		return n.Copy()
	case *Enum:
		return n.Copy()
	case *EnumMember:
		return n.Copy()
	case *Field:
		return n.Copy()
	case *Property:
		return n.Copy()
	case *Method:
		return n.Copy()
	case *Constructor:
		return n.Copy()
	case *Parameter:
		return n.Copy()
	case *TypeParameter:
		return n.Copy()
	case *Block:
		return n.Copy()
	case *ExpressionStatement:
		return n.Copy()
	case *Return:
		return n.Copy()
	case *Throw:
		return n.Copy()
	case *Break:
		return n.Copy()
	case *Continue:
		return n.Copy()
	case *Empty:
		return n.Copy()
	case *Declaration:
		return n.Copy()
	case *If:
		return n.Copy()
	case *Else:
		return n.Copy()
	case *While:
		return n.Copy()
	case *Do:
		return n.Copy()
	case *For:
		return n.Copy()
	case *ForEach:
		return n.Copy()
	case *Try:
		return n.Copy()
	case *Catch:
		return n.Copy()
	case *Finally:
		return n.Copy()
	case *Expression:
		return n.Copy()
	}
	panic(fmt.Sprintf("dom: Copy of unknown node type %T", n))
}

func copyExpr(e *Expression) *Expression {
	if e == nil {
		return nil
	}
	return e.Copy()
}

func (b *statementBlock) copyFrom(o *statementBlock) {
	b.statements.copyFrom(&o.statements)
	b.hasBlock = o.hasBlock
}

func (r *Root) Copy() *Root {
	c := NewRoot()
	c.nodeBase.copyFrom(&r.nodeBase)
	c.members.copyFrom(&r.members)
	return c
}

func (ns *Namespace) Copy() *Namespace {
	c := NewNamespace(ns.name)
	c.nodeBase.copyFrom(&ns.nodeBase)
	c.members.copyFrom(&ns.members)
	return c
}

func (u *Using) Copy() *Using {
	c := &Using{}
	c.nodeBase.copyFrom(&u.nodeBase)
	return c
}

func (cl *Class) Copy() *Class {
	c := NewClass(cl.name)
	c.nodeBase.copyFrom(&cl.nodeBase)
	c.declaration.copyFrom(&cl.declaration)
	c.typeParams.copyFrom(&cl.typeParams)
	c.members.copyFrom(&cl.members)
	c.SetImplementedInterfaces(cl.interfaces)
	c.baseType = cl.baseType
	return c
}

func (s *Structure) Copy() *Structure {
	c := NewStructure(s.name)
	c.nodeBase.copyFrom(&s.nodeBase)
	c.declaration.copyFrom(&s.declaration)
	c.typeParams.copyFrom(&s.typeParams)
	c.members.copyFrom(&s.members)
	c.SetImplementedInterfaces(s.interfaces)
	return c
}

func (i *Interface) Copy() *Interface {
	c := NewInterface(i.name)
	c.nodeBase.copyFrom(&i.nodeBase)
	c.declaration.copyFrom(&i.declaration)
	c.typeParams.copyFrom(&i.typeParams)
	c.members.copyFrom(&i.members)
	c.SetImplementedInterfaces(i.interfaces)
	return c
}

func (e *Enum) Copy() *Enum {
	c := NewEnum(e.name)
	c.nodeBase.copyFrom(&e.nodeBase)
	c.declaration.copyFrom(&e.declaration)
	c.members.copyFrom(&e.members)
	c.underlying = e.underlying
	c.trailingComma = e.trailingComma
	return c
}

func (m *EnumMember) Copy() *EnumMember {
	c := &EnumMember{}
	c.nodeBase.copyFrom(&m.nodeBase)
	c.SetValue(copyExpr(m.value))
	return c
}

func (f *Field) Copy() *Field {
	c := &Field{typ: f.typ}
	c.nodeBase.copyFrom(&f.nodeBase)
	c.declaration.copyFrom(&f.declaration)
	c.SetInitializer(copyExpr(f.initializer))
	return c
}

func (p *Property) Copy() *Property {
	c := &Property{
		typ:           p.typ,
		getter:        p.getter.copy(),
		setter:        p.setter.copy(),
		accessors:     p.accessors,
		writtenGetter: p.writtenGetter,
		writtenSetter: p.writtenSetter,
	}
	if p.getter == p.writtenGetter {
		c.writtenGetter = c.getter
	}
	if p.setter == p.writtenSetter {
		c.writtenSetter = c.setter
	}
	c.nodeBase.copyFrom(&p.nodeBase)
	c.declaration.copyFrom(&p.declaration)
	return c
}

func (m *Method) Copy() *Method {
	c := NewMethod(m.name, m.returnType)
	c.nodeBase.copyFrom(&m.nodeBase)
	c.declaration.copyFrom(&m.declaration)
	c.typeParams.copyFrom(&m.typeParams)
	c.params.copyFrom(&m.params)
	c.statementBlock.copyFrom(&m.statementBlock)
	c.hasBody = m.hasBody
	return c
}

func (k *Constructor) Copy() *Constructor {
	c := NewConstructor(k.name)
	c.nodeBase.copyFrom(&k.nodeBase)
	c.declaration.copyFrom(&k.declaration)
	c.params.copyFrom(&k.params)
	c.statementBlock.copyFrom(&k.statementBlock)
	return c
}

func (p *Parameter) Copy() *Parameter {
	c := &Parameter{typ: p.typ, modifier: p.modifier}
	c.nodeBase.copyFrom(&p.nodeBase)
	c.SetDefault(copyExpr(p.def))
	return c
}

func (tp *TypeParameter) Copy() *TypeParameter {
	c := &TypeParameter{}
	c.nodeBase.copyFrom(&tp.nodeBase)
	return c
}

func (b *Block) Copy() *Block {
	c := NewBlock()
	c.nodeBase.copyFrom(&b.nodeBase)
	c.statementBlock.copyFrom(&b.statementBlock)
	return c
}

func (s *ExpressionStatement) Copy() *ExpressionStatement {
	c := &ExpressionStatement{}
	c.nodeBase.copyFrom(&s.nodeBase)
	c.SetExpression(copyExpr(s.expr))
	return c
}

func (r *Return) Copy() *Return {
	c := &Return{}
	c.nodeBase.copyFrom(&r.nodeBase)
	c.SetValue(copyExpr(r.value))
	return c
}

func (t *Throw) Copy() *Throw {
	c := &Throw{}
	c.nodeBase.copyFrom(&t.nodeBase)
	c.SetValue(copyExpr(t.value))
	return c
}

func (b *Break) Copy() *Break {
	c := &Break{}
	c.nodeBase.copyFrom(&b.nodeBase)
	return c
}

func (k *Continue) Copy() *Continue {
	c := &Continue{}
	c.nodeBase.copyFrom(&k.nodeBase)
	return c
}

func (e *Empty) Copy() *Empty {
	c := &Empty{}
	c.nodeBase.copyFrom(&e.nodeBase)
	return c
}

func (d *Declaration) Copy() *Declaration {
	c := &Declaration{typ: d.typ, isConst: d.isConst}
	c.nodeBase.copyFrom(&d.nodeBase)
	c.SetInitializer(copyExpr(d.initializer))
	return c
}

func (s *If) Copy() *If {
	c := NewIf(copyExpr(s.condition))
	c.nodeBase.copyFrom(&s.nodeBase)
	c.statementBlock.copyFrom(&s.statementBlock)
	if s.elseClause != nil {
		c.SetElse(s.elseClause.Copy())
	}
	return c
}

func (e *Else) Copy() *Else {
	c := NewElse()
	c.nodeBase.copyFrom(&e.nodeBase)
	c.statementBlock.copyFrom(&e.statementBlock)
	return c
}

func (w *While) Copy() *While {
	c := NewWhile(copyExpr(w.condition))
	c.nodeBase.copyFrom(&w.nodeBase)
	c.statementBlock.copyFrom(&w.statementBlock)
	return c
}

func (d *Do) Copy() *Do {
	c := NewDo(copyExpr(d.condition))
	c.nodeBase.copyFrom(&d.nodeBase)
	c.statementBlock.copyFrom(&d.statementBlock)
	return c
}

func (f *For) Copy() *For {
	c := NewFor(copyExpr(f.initializer), copyExpr(f.condition), copyExpr(f.incrementor))
	c.nodeBase.copyFrom(&f.nodeBase)
	c.statementBlock.copyFrom(&f.statementBlock)
	return c
}

func (f *ForEach) Copy() *ForEach {
	c := NewForEach(f.name, f.variableType, copyExpr(f.condition))
	c.nodeBase.copyFrom(&f.nodeBase)
	c.statementBlock.copyFrom(&f.statementBlock)
	return c
}

func (t *Try) Copy() *Try {
	c := NewTry()
	c.nodeBase.copyFrom(&t.nodeBase)
	c.statementBlock.copyFrom(&t.statementBlock)
	c.catches.copyFrom(&t.catches)
	if t.finally != nil {
		c.SetFinally(t.finally.Copy())
	}
	return c
}

func (k *Catch) Copy() *Catch {
	c := NewCatch(k.exceptionType, k.name)
	c.nodeBase.copyFrom(&k.nodeBase)
	c.statementBlock.copyFrom(&k.statementBlock)
	return c
}

func (f *Finally) Copy() *Finally {
	c := NewFinally()
	c.nodeBase.copyFrom(&f.nodeBase)
	c.statementBlock.copyFrom(&f.statementBlock)
	return c
}

func (e *Expression) Copy() *Expression {
	c := &Expression{text: e.text, kind: e.kind}
	c.nodeBase.copyFrom(&e.nodeBase)
	return c
}
