package dom

import "github.com/dhamidi/rdom/syntax"

// Statement is a node that can appear in a statement list.
type Statement interface {
	Node
	statement()
}

// Loop is a while, do, for or foreach loop.
type Loop interface {
	Statement
	Condition() *Expression
	TestAtEnd() bool
	Statements() []Statement
}

// statementBlock is the statement list of anything with a body. A body
// without braces holds exactly one statement.
type statementBlock struct {
	statements memberList
	hasBlock   bool
}

func (b *statementBlock) Statements() []Statement {
	return ofType[Statement](b.statements.items)
}

func (b *statementBlock) AddStatement(s Statement)              { b.statements.add(s) }
func (b *statementBlock) InsertStatement(i int, s Statement)    { b.statements.insert(i, s) }
func (b *statementBlock) RemoveStatement(s Statement) bool      { return b.statements.remove(s) }
func (b *statementBlock) MoveStatement(s Statement, i int) bool { return b.statements.move(s, i) }

// HasBlock reports whether the body is written with braces. Bodies that do
// not hold exactly one statement always are.
func (b *statementBlock) HasBlock() bool {
	return b.hasBlock || b.statements.len() != 1
}

func (b *statementBlock) SetHasBlock(v bool) { b.hasBlock = v }

type Block struct {
	nodeBase
	statementBlock
}

func NewBlock(statements ...Statement) *Block {
	b := &Block{}
	b.statements.owner = b
	b.hasBlock = true
	for _, s := range statements {
		b.AddStatement(s)
	}
	return b
}

func (b *Block) Kind() Kind              { return KindBlock }
func (b *Block) statement()              {}
func (b *Block) Children() []Node        { return b.statements.all() }
func (b *Block) removeChild(n Node) bool { return b.statements.remove(n) }

type ExpressionStatement struct {
	nodeBase
	expr *Expression
}

func NewExpressionStatement(e *Expression) *ExpressionStatement {
	s := &ExpressionStatement{}
	s.SetExpression(e)
	return s
}

func (s *ExpressionStatement) Kind() Kind                  { return KindExpressionStatement }
func (s *ExpressionStatement) statement()                  {}
func (s *ExpressionStatement) Children() []Node            { return slotChildren(s.expr) }
func (s *ExpressionStatement) removeChild(n Node) bool     { return clearSlot(&s.expr, n) }
func (s *ExpressionStatement) Expression() *Expression     { return s.expr }
func (s *ExpressionStatement) SetExpression(e *Expression) { setSlot(s, &s.expr, e) }

// Return is a return statement. Value is nil for a bare return.
type Return struct {
	nodeBase
	value *Expression
}

func NewReturn(value *Expression) *Return {
	r := &Return{}
	r.SetValue(value)
	return r
}

func (r *Return) Kind() Kind              { return KindReturn }
func (r *Return) statement()              {}
func (r *Return) Children() []Node        { return slotChildren(r.value) }
func (r *Return) removeChild(n Node) bool { return clearSlot(&r.value, n) }
func (r *Return) Value() *Expression      { return r.value }
func (r *Return) SetValue(e *Expression)  { setSlot(r, &r.value, e) }

// Throw is a throw statement. Value is nil for a rethrow.
type Throw struct {
	nodeBase
	value *Expression
}

func NewThrow(value *Expression) *Throw {
	t := &Throw{}
	t.SetValue(value)
	return t
}

func (t *Throw) Kind() Kind              { return KindThrow }
func (t *Throw) statement()              {}
func (t *Throw) Children() []Node        { return slotChildren(t.value) }
func (t *Throw) removeChild(n Node) bool { return clearSlot(&t.value, n) }
func (t *Throw) Value() *Expression      { return t.value }
func (t *Throw) SetValue(e *Expression)  { setSlot(t, &t.value, e) }

type Break struct{ nodeBase }

func NewBreak() *Break            { return &Break{} }
func (b *Break) Kind() Kind       { return KindBreak }
func (b *Break) statement()       {}
func (b *Break) Children() []Node { return nil }

type Continue struct{ nodeBase }

func NewContinue() *Continue         { return &Continue{} }
func (c *Continue) Kind() Kind       { return KindContinue }
func (c *Continue) statement()       {}
func (c *Continue) Children() []Node { return nil }

type Empty struct{ nodeBase }

func NewEmpty() *Empty            { return &Empty{} }
func (e *Empty) Kind() Kind       { return KindEmpty }
func (e *Empty) statement()       {}
func (e *Empty) Children() []Node { return nil }

// Declaration declares a local variable. Name is the variable name.
type Declaration struct {
	nodeBase
	typ         *ReferencedType
	initializer *Expression
	isConst     bool
}

func NewDeclaration(name string, typ *ReferencedType, initializer *Expression) *Declaration {
	d := &Declaration{typ: typ}
	d.name = name
	d.SetInitializer(initializer)
	return d
}

func (d *Declaration) Kind() Kind                   { return KindDeclaration }
func (d *Declaration) statement()                   {}
func (d *Declaration) Children() []Node             { return slotChildren(d.initializer) }
func (d *Declaration) removeChild(n Node) bool      { return clearSlot(&d.initializer, n) }
func (d *Declaration) Type() *ReferencedType        { return d.typ }
func (d *Declaration) SetType(t *ReferencedType)    { d.typ = t }
func (d *Declaration) Initializer() *Expression     { return d.initializer }
func (d *Declaration) SetInitializer(e *Expression) { setSlot(d, &d.initializer, e) }
func (d *Declaration) IsConst() bool                { return d.isConst }
func (d *Declaration) SetConst(v bool)              { d.isConst = v }

type If struct {
	nodeBase
	statementBlock
	condition  *Expression
	elseClause *Else
}

func NewIf(condition *Expression, statements ...Statement) *If {
	s := &If{}
	s.statements.owner = s
	s.hasBlock = true
	s.SetCondition(condition)
	for _, st := range statements {
		s.AddStatement(st)
	}
	return s
}

func (s *If) Kind() Kind { return KindIf }
func (s *If) statement() {}

func (s *If) Children() []Node {
	out := slotChildren(s.condition)
	out = append(out, s.statements.items...)
	if s.elseClause != nil {
		out = append(out, s.elseClause)
	}
	return out
}

func (s *If) removeChild(n Node) bool {
	if s.elseClause != nil && Node(s.elseClause) == n {
		release(s.elseClause)
		s.elseClause = nil
		return true
	}
	return clearSlot(&s.condition, n) || s.statements.remove(n)
}

func (s *If) Condition() *Expression     { return s.condition }
func (s *If) SetCondition(e *Expression) { setSlot(s, &s.condition, e) }
func (s *If) Else() *Else                { return s.elseClause }

func (s *If) SetElse(e *Else) {
	if s.elseClause != nil && s.elseClause != e {
		release(s.elseClause)
	}
	s.elseClause = nil
	if e != nil {
		adopt(s, e)
	}
	s.elseClause = e
}

// Else is the else branch of an if statement. An else-if chain is an Else
// whose only statement is an If written without braces.
type Else struct {
	nodeBase
	statementBlock
}

func NewElse(statements ...Statement) *Else {
	e := &Else{}
	e.statements.owner = e
	e.hasBlock = true
	for _, st := range statements {
		e.AddStatement(st)
	}
	return e
}

func (e *Else) Kind() Kind              { return KindElse }
func (e *Else) Children() []Node        { return e.statements.all() }
func (e *Else) removeChild(n Node) bool { return e.statements.remove(n) }

// ElseIf returns the chained if statement of an else-if, or nil.
func (e *Else) ElseIf() *If {
	if e.HasBlock() {
		return nil
	}
	s, _ := e.statements.items[0].(*If)
	return s
}

type loop struct {
	statementBlock
	condition *Expression
}

func (l *loop) Condition() *Expression { return l.condition }

type While struct {
	nodeBase
	loop
}

func NewWhile(condition *Expression, statements ...Statement) *While {
	w := &While{}
	w.statements.owner = w
	w.hasBlock = true
	w.SetCondition(condition)
	for _, st := range statements {
		w.AddStatement(st)
	}
	return w
}

func (w *While) Kind() Kind                 { return KindWhile }
func (w *While) statement()                 {}
func (w *While) TestAtEnd() bool            { return false }
func (w *While) SetCondition(e *Expression) { setSlot(w, &w.condition, e) }

func (w *While) Children() []Node {
	return append(slotChildren(w.condition), w.statements.items...)
}

func (w *While) removeChild(n Node) bool {
	return clearSlot(&w.condition, n) || w.statements.remove(n)
}

type Do struct {
	nodeBase
	loop
}

func NewDo(condition *Expression, statements ...Statement) *Do {
	d := &Do{}
	d.statements.owner = d
	d.hasBlock = true
	d.SetCondition(condition)
	for _, st := range statements {
		d.AddStatement(st)
	}
	return d
}

func (d *Do) Kind() Kind                 { return KindDo }
func (d *Do) statement()                 {}
func (d *Do) TestAtEnd() bool            { return true }
func (d *Do) SetCondition(e *Expression) { setSlot(d, &d.condition, e) }

func (d *Do) Children() []Node {
	return append(d.statements.all(), slotChildren(d.condition)...)
}

func (d *Do) removeChild(n Node) bool {
	return clearSlot(&d.condition, n) || d.statements.remove(n)
}

// For is a for loop. Its three header parts are opaque expressions, any of
// which may be nil.
type For struct {
	nodeBase
	loop
	initializer *Expression
	incrementor *Expression
}

func NewFor(initializer, condition, incrementor *Expression, statements ...Statement) *For {
	f := &For{}
	f.statements.owner = f
	f.hasBlock = true
	f.SetInitializer(initializer)
	f.SetCondition(condition)
	f.SetIncrementor(incrementor)
	for _, st := range statements {
		f.AddStatement(st)
	}
	return f
}

func (f *For) Kind() Kind                   { return KindFor }
func (f *For) statement()                   {}
func (f *For) TestAtEnd() bool              { return false }
func (f *For) SetCondition(e *Expression)   { setSlot(f, &f.condition, e) }
func (f *For) Initializer() *Expression     { return f.initializer }
func (f *For) SetInitializer(e *Expression) { setSlot(f, &f.initializer, e) }
func (f *For) Incrementor() *Expression     { return f.incrementor }
func (f *For) SetIncrementor(e *Expression) { setSlot(f, &f.incrementor, e) }

func (f *For) Children() []Node {
	out := slotChildren(f.initializer)
	out = append(out, slotChildren(f.condition)...)
	out = append(out, slotChildren(f.incrementor)...)
	return append(out, f.statements.items...)
}

func (f *For) removeChild(n Node) bool {
	return clearSlot(&f.initializer, n) || clearSlot(&f.condition, n) ||
		clearSlot(&f.incrementor, n) || f.statements.remove(n)
}

// ForEach iterates a collection. Name is the iteration variable; the
// condition of a foreach loop is the collection expression.
type ForEach struct {
	nodeBase
	loop
	variableType *ReferencedType
}

func NewForEach(name string, variableType *ReferencedType, collection *Expression, statements ...Statement) *ForEach {
	f := &ForEach{variableType: variableType}
	f.name = name
	f.statements.owner = f
	f.hasBlock = true
	f.SetCondition(collection)
	for _, st := range statements {
		f.AddStatement(st)
	}
	return f
}

func (f *ForEach) Kind() Kind                        { return KindForEach }
func (f *ForEach) statement()                        {}
func (f *ForEach) TestAtEnd() bool                   { return false }
func (f *ForEach) SetCondition(e *Expression)        { setSlot(f, &f.condition, e) }
func (f *ForEach) VariableType() *ReferencedType     { return f.variableType }
func (f *ForEach) SetVariableType(t *ReferencedType) { f.variableType = t }

func (f *ForEach) Children() []Node {
	return append(slotChildren(f.condition), f.statements.items...)
}

func (f *ForEach) removeChild(n Node) bool {
	return clearSlot(&f.condition, n) || f.statements.remove(n)
}

type Try struct {
	nodeBase
	statementBlock
	catches memberList
	finally *Finally
}

func NewTry(statements ...Statement) *Try {
	t := &Try{}
	t.statements.owner = t
	t.catches.owner = t
	t.hasBlock = true
	for _, st := range statements {
		t.AddStatement(st)
	}
	return t
}

func (t *Try) Kind() Kind { return KindTry }
func (t *Try) statement() {}

func (t *Try) Children() []Node {
	out := append(t.statements.all(), t.catches.items...)
	if t.finally != nil {
		out = append(out, t.finally)
	}
	return out
}

func (t *Try) removeChild(n Node) bool {
	if t.finally != nil && Node(t.finally) == n {
		release(t.finally)
		t.finally = nil
		return true
	}
	return t.statements.remove(n) || t.catches.remove(n)
}

func (t *Try) Catches() []*Catch         { return ofType[*Catch](t.catches.items) }
func (t *Try) AddCatch(c *Catch)         { t.catches.add(c) }
func (t *Try) RemoveCatch(c *Catch) bool { return t.catches.remove(c) }
func (t *Try) Finally() *Finally         { return t.finally }

func (t *Try) SetFinally(f *Finally) {
	if t.finally != nil && t.finally != f {
		release(t.finally)
	}
	t.finally = nil
	if f != nil {
		adopt(t, f)
	}
	t.finally = f
}

// Catch is a catch clause. Name is the exception variable, if any; a nil
// exception type catches everything.
type Catch struct {
	nodeBase
	statementBlock
	exceptionType *ReferencedType
}

func NewCatch(exceptionType *ReferencedType, name string, statements ...Statement) *Catch {
	c := &Catch{exceptionType: exceptionType}
	c.name = name
	c.statements.owner = c
	c.hasBlock = true
	for _, st := range statements {
		c.AddStatement(st)
	}
	return c
}

func (c *Catch) Kind() Kind                         { return KindCatch }
func (c *Catch) Children() []Node                   { return c.statements.all() }
func (c *Catch) removeChild(n Node) bool            { return c.statements.remove(n) }
func (c *Catch) ExceptionType() *ReferencedType     { return c.exceptionType }
func (c *Catch) SetExceptionType(t *ReferencedType) { c.exceptionType = t }

type Finally struct {
	nodeBase
	statementBlock
}

func NewFinally(statements ...Statement) *Finally {
	f := &Finally{}
	f.statements.owner = f
	f.hasBlock = true
	for _, st := range statements {
		f.AddStatement(st)
	}
	return f
}

func (f *Finally) Kind() Kind              { return KindFinally }
func (f *Finally) Children() []Node        { return f.statements.all() }
func (f *Finally) removeChild(n Node) bool { return f.statements.remove(n) }

// Expression is an expression kept as text. The front end's classification
// travels with it but the text is never parsed.
type Expression struct {
	nodeBase
	text string
	kind syntax.ExprKind
}

func NewExpression(text string, kind syntax.ExprKind) *Expression {
	return &Expression{text: text, kind: kind}
}

func (e *Expression) Kind() Kind                          { return KindExpression }
func (e *Expression) Children() []Node                    { return nil }
func (e *Expression) Text() string                        { return e.text }
func (e *Expression) SetText(text string)                 { e.text = text }
func (e *Expression) ExpressionKind() syntax.ExprKind     { return e.kind }
func (e *Expression) SetExpressionKind(k syntax.ExprKind) { e.kind = k }

func (e *Expression) String() string { return e.text }

func slotChildren(e *Expression) []Node {
	if e == nil {
		return nil
	}
	return []Node{e}
}
