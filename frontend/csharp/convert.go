package csharp

import (
	"strings"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
	sitter "github.com/smacker/go-tree-sitter"
)

// converter turns a tree-sitter tree into a syntax tree. Tokens must be
// taken in source order: each token's Leading trivia is the text between
// the previous token and itself.
type converter struct {
	src   []byte
	last  uint32
	decls *declarations
}

func newConverter(src []byte) *converter {
	return &converter{src: src, decls: newDeclarations()}
}

// trivia reports nodes whose text is carried as trivia.
func trivia(n *sitter.Node) bool {
	t := n.Type()
	return t == "comment" || t == "attribute_list" || strings.HasPrefix(t, "preproc")
}

// atomic reports nodes that become a single token.
func atomic(n *sitter.Node) bool {
	t := n.Type()
	return n.ChildCount() == 0 || t == "identifier" ||
		strings.HasSuffix(t, "_literal") || strings.HasPrefix(t, "interpolated_string")
}

// kids returns the children of n that are not trivia.
func kids(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !trivia(child) {
			out = append(out, child)
		}
	}
	return out
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' && c != '@' && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func tokenKind(n *sitter.Node, text string) syntax.TokenKind {
	if n.Type() == "identifier" {
		return syntax.TokenIdent
	}
	if isWord(text) {
		if kind := syntax.LookupKeyword(text); kind != syntax.TokenIdent {
			return kind
		}
		return syntax.TokenText
	}
	return syntax.LookupPunct(text)
}

func (c *converter) token(n *sitter.Node) *syntax.Node {
	start, end := n.StartByte(), n.EndByte()
	leading := ""
	if start > c.last {
		leading = string(c.src[c.last:start])
	}
	literal := string(c.src[start:end])
	c.last = end
	return &syntax.Node{
		Kind:  syntax.KindToken,
		Token: &syntax.Token{Kind: tokenKind(n, literal), Literal: literal, Leading: leading},
	}
}

func (c *converter) eof() *syntax.Node {
	leading := string(c.src[c.last:])
	c.last = uint32(len(c.src))
	return &syntax.Node{Kind: syntax.KindToken, Token: &syntax.Token{Kind: syntax.TokenEOF, Leading: leading}}
}

// leaves appends every token under n to out.
func (c *converter) leaves(out *syntax.Node, n *sitter.Node) {
	if trivia(n) {
		return
	}
	if atomic(n) {
		out.AddChild(c.token(n))
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c.leaves(out, n.Child(i))
	}
}

func (c *converter) opaque(kind syntax.Kind, nodes ...*sitter.Node) *syntax.Node {
	out := syntax.NewNode(kind)
	for _, n := range nodes {
		c.leaves(out, n)
	}
	return out
}

func (c *converter) unknown(n *sitter.Node) *syntax.Node {
	return c.unknownOf(n.Type(), n)
}

func (c *converter) unknownOf(label string, nodes ...*sitter.Node) *syntax.Node {
	out := c.opaque(syntax.KindUnknown, nodes...)
	out.Label = label
	pos := nodes[0].StartPoint()
	log.Debugf("no shape for %s at %d:%d", label, pos.Row+1, pos.Column+1)
	return out
}

var exprKinds = map[string]syntax.ExprKind{
	"identifier":                          syntax.ExprIdentifier,
	"invocation_expression":               syntax.ExprInvocation,
	"member_access_expression":            syntax.ExprMemberAccess,
	"assignment_expression":               syntax.ExprAssignment,
	"binary_expression":                   syntax.ExprBinary,
	"prefix_unary_expression":             syntax.ExprUnary,
	"postfix_unary_expression":            syntax.ExprUnary,
	"object_creation_expression":          syntax.ExprObjectCreation,
	"implicit_object_creation_expression": syntax.ExprObjectCreation,
	"lambda_expression":                   syntax.ExprLambda,
	"conditional_expression":              syntax.ExprConditional,
}

func exprKind(nodeType string) syntax.ExprKind {
	if kind, ok := exprKinds[nodeType]; ok {
		return kind
	}
	if strings.HasSuffix(nodeType, "_literal") || strings.HasPrefix(nodeType, "interpolated_string") {
		return syntax.ExprLiteral
	}
	return syntax.ExprOther
}

func (c *converter) expression(nodes ...*sitter.Node) *syntax.Node {
	out := c.opaque(syntax.KindExpression, nodes...)
	if len(nodes) == 1 {
		out.Expr = exprKind(nodes[0].Type())
	}
	return out
}

func (c *converter) typeNode(n *sitter.Node, sc *scope) *syntax.Node {
	out := c.opaque(syntax.KindType, n)
	c.decls.refer(out, sc)
	return out
}

func (c *converter) compilationUnit(n *sitter.Node) *syntax.Node {
	sc := &scope{}
	out := syntax.NewNode(syntax.KindCompilationUnit)
	for _, k := range kids(n) {
		out.AddChild(c.declaration(k, sc))
	}
	out.AddChild(c.eof())
	return out
}

func (c *converter) declaration(n *sitter.Node, sc *scope) *syntax.Node {
	switch n.Type() {
	case "using_directive":
		return c.using(n, sc)
	case "namespace_declaration":
		return c.namespace(n, sc)
	case "class_declaration":
		return c.typeDecl(n, syntax.KindClassDecl, symbol.KindClass, sc)
	case "struct_declaration":
		return c.typeDecl(n, syntax.KindStructDecl, symbol.KindStruct, sc)
	case "interface_declaration":
		return c.typeDecl(n, syntax.KindInterfaceDecl, symbol.KindInterface, sc)
	case "enum_declaration":
		return c.typeDecl(n, syntax.KindEnumDecl, symbol.KindEnum, sc)
	case "field_declaration":
		return c.field(n, sc)
	case "property_declaration":
		return c.property(n, sc)
	case "method_declaration":
		return c.method(n, sc)
	case "constructor_declaration":
		return c.constructor(n, sc)
	}
	return c.unknown(n)
}

func (c *converter) using(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	if len(ks) != 3 || ks[0].Type() != "using" || ks[2].Type() != ";" {
		return c.unknown(n)
	}
	name := syntax.NewNode(syntax.KindName)
	out := syntax.NewNode(syntax.KindUsingDirective, c.token(ks[0]), name)
	c.leaves(name, ks[1])
	out.AddChild(c.token(ks[2]))
	sc.usings = append(sc.usings, literal(name))
	return out
}

func (c *converter) namespace(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	if len(ks) != 3 || ks[0].Type() != "namespace" || ks[2].Type() != "declaration_list" {
		return c.unknown(n)
	}
	out := syntax.NewNode(syntax.KindNamespaceDecl, c.token(ks[0]))
	name := c.opaque(syntax.KindName, ks[1])
	out.AddChild(name)
	c.members(out, ks[2], sc.namespace(literal(name)))
	return out
}

func (c *converter) members(out *syntax.Node, list *sitter.Node, sc *scope) {
	for _, k := range kids(list) {
		if !k.IsNamed() {
			out.AddChild(c.token(k))
			continue
		}
		out.AddChild(c.declaration(k, sc))
	}
}

func (c *converter) typeDecl(n *sitter.Node, kind syntax.Kind, symKind symbol.Kind, sc *scope) *syntax.Node {
	ks := kids(n)
	if !c.plainModifiers(ks) {
		return c.unknown(n)
	}
	def := &symbol.Def{SymKind: symKind, Namespace: sc.ns, Type: sc.typ}
	inner := sc.inType(def)
	mods := modifierSet{}
	out := syntax.NewNode(kind)
	closed := false
	for _, k := range ks {
		switch t := k.Type(); {
		case closed:
			out.AddChild(c.unknown(k))
		case t == "modifier":
			c.modifier(out, k, mods)
		case t == "identifier":
			name := c.token(k)
			def.SymName = name.Token.Literal
			out.AddChild(name)
		case t == "type_parameter_list":
			out.AddChild(c.typeParameters(k))
		case t == "base_list":
			out.AddChild(c.baseList(k, sc))
		case t == "declaration_list":
			c.members(out, k, inner)
			closed = true
		case t == "enum_member_declaration_list":
			c.enumMembers(out, k)
			closed = true
		case !k.IsNamed():
			out.AddChild(c.token(k))
		default:
			out.AddChild(c.unknown(k))
		}
	}
	def.Access = mods.access(sc.typeAccess())
	def.Abstract = mods[syntax.TokenAbstract] || symKind == symbol.KindInterface
	def.Sealed = mods[syntax.TokenSealed] || symKind == symbol.KindStruct || symKind == symbol.KindEnum
	def.Static = mods[syntax.TokenStatic]
	c.decls.declare(out, def)
	return out
}

func (c *converter) typeParameters(n *sitter.Node) *syntax.Node {
	out := syntax.NewNode(syntax.KindTypeParameterList)
	for _, k := range kids(n) {
		switch {
		case k.Type() == "type_parameter" && len(kids(k)) == 1:
			out.AddChild(syntax.NewNode(syntax.KindTypeParameter, c.token(kids(k)[0])))
		case !k.IsNamed():
			out.AddChild(c.token(k))
		default:
			out.AddChild(c.unknown(k))
		}
	}
	return out
}

func (c *converter) baseList(n *sitter.Node, sc *scope) *syntax.Node {
	out := syntax.NewNode(syntax.KindBaseList)
	for _, k := range kids(n) {
		if !k.IsNamed() {
			out.AddChild(c.token(k))
			continue
		}
		out.AddChild(c.typeNode(k, sc))
	}
	return out
}

func (c *converter) enumMembers(out *syntax.Node, list *sitter.Node) {
	for _, k := range kids(list) {
		switch {
		case k.Type() == "enum_member_declaration":
			ks := kids(k)
			if len(ks) == 0 || ks[0].Type() != "identifier" {
				out.AddChild(c.unknown(k))
				continue
			}
			member := syntax.NewNode(syntax.KindEnumMember)
			c.declarator(member, ks)
			out.AddChild(member)
		case !k.IsNamed():
			out.AddChild(c.token(k))
		default:
			out.AddChild(c.unknown(k))
		}
	}
}

// declarator appends a name and an optional initializer, written either as
// "=" expression or as an equals_value_clause.
func (c *converter) declarator(out *syntax.Node, ks []*sitter.Node) {
	out.AddChild(c.token(ks[0]))
	c.initializer(out, ks[1:])
}

func (c *converter) initializer(out *syntax.Node, ks []*sitter.Node) {
	for _, k := range ks {
		switch {
		case k.Type() == "equals_value_clause":
			c.initializer(out, kids(k))
		case !k.IsNamed():
			out.AddChild(c.token(k))
		default:
			out.AddChild(c.expression(k))
		}
	}
}

// singleDeclarator returns the type and the declarator of a variable
// declaration that declares exactly one plain name.
func singleDeclarator(n *sitter.Node) (typ, decl *sitter.Node) {
	if n.Type() != "variable_declaration" {
		return nil, nil
	}
	ks := kids(n)
	if len(ks) != 2 || ks[1].Type() != "variable_declarator" {
		return nil, nil
	}
	dk := kids(ks[1])
	if len(dk) == 0 || dk[0].Type() != "identifier" {
		return nil, nil
	}
	for _, k := range dk[1:] {
		switch k.Type() {
		case "bracketed_argument_list", "argument_list", "tuple_pattern":
			return nil, nil
		}
	}
	return ks[0], ks[1]
}

func (c *converter) field(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	last := len(ks) - 1
	if last < 1 || ks[last].Type() != ";" || !c.onlyModifiers(ks[:last-1]) {
		return c.unknown(n)
	}
	typ, decl := singleDeclarator(ks[last-1])
	if decl == nil {
		return c.unknown(n)
	}
	out := syntax.NewNode(syntax.KindFieldDecl)
	mods := modifierSet{}
	for _, k := range ks[:last-1] {
		c.modifier(out, k, mods)
	}
	out.AddChild(c.typeNode(typ, sc))
	c.declarator(out, kids(decl))
	out.AddChild(c.token(ks[last]))
	def := c.member(out, symbol.KindField, mods, sc)
	def.Static = def.Static || mods[syntax.TokenConst]
	return out
}

func (c *converter) property(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	last := len(ks) - 1
	if last < 2 || ks[last].Type() != "accessor_list" || ks[last-1].Type() != "identifier" || !c.onlyModifiers(ks[:last-2]) {
		return c.unknown(n)
	}
	out := syntax.NewNode(syntax.KindPropertyDecl)
	mods := modifierSet{}
	for _, k := range ks[:last-2] {
		c.modifier(out, k, mods)
	}
	out.AddChild(c.typeNode(ks[last-2], sc))
	out.AddChild(c.token(ks[last-1]))
	out.AddChild(c.opaque(syntax.KindAccessorList, ks[last]))
	def := c.member(out, symbol.KindProperty, mods, sc)
	def.Abstract = def.Abstract || (sc.inInterface() && !def.Static)
	return out
}

func (c *converter) method(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	params := -1
	for i, k := range ks {
		if k.Type() == "parameter_list" {
			params = i
			break
		}
	}
	if params < 2 || params != len(ks)-2 {
		return c.unknown(n)
	}
	body := ks[len(ks)-1]
	if body.Type() != "block" && body.Type() != ";" {
		return c.unknown(n)
	}
	name := params - 1
	var typeParams *sitter.Node
	if ks[name].Type() == "type_parameter_list" {
		typeParams = ks[name]
		name--
	}
	if name < 1 || ks[name].Type() != "identifier" || !c.onlyModifiers(ks[:name-1]) {
		return c.unknown(n)
	}

	out := syntax.NewNode(syntax.KindMethodDecl)
	mods := modifierSet{}
	for _, k := range ks[:name-1] {
		c.modifier(out, k, mods)
	}
	out.AddChild(c.typeNode(ks[name-1], sc))
	out.AddChild(c.token(ks[name]))
	if typeParams != nil {
		out.AddChild(c.typeParameters(typeParams))
	}
	out.AddChild(c.parameters(ks[params], sc))
	if body.Type() == "block" {
		out.AddChild(c.block(body, sc))
	} else {
		out.AddChild(c.token(body))
	}
	def := c.member(out, symbol.KindMethod, mods, sc)
	def.Abstract = def.Abstract || (sc.inInterface() && !def.Static && body.Type() == ";")
	return out
}

func (c *converter) constructor(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	l := len(ks)
	if l < 3 || ks[l-1].Type() != "block" || ks[l-2].Type() != "parameter_list" ||
		ks[l-3].Type() != "identifier" || !c.onlyModifiers(ks[:l-3]) {
		return c.unknown(n)
	}
	out := syntax.NewNode(syntax.KindConstructorDecl)
	mods := modifierSet{}
	for _, k := range ks[:l-3] {
		c.modifier(out, k, mods)
	}
	out.AddChild(c.token(ks[l-3]))
	out.AddChild(c.parameters(ks[l-2], sc))
	out.AddChild(c.block(ks[l-1], sc))
	c.member(out, symbol.KindMethod, mods, sc)
	return out
}

func (c *converter) parameters(n *sitter.Node, sc *scope) *syntax.Node {
	out := syntax.NewNode(syntax.KindParameterList)
	ks := kids(n)
	for i := 0; i < len(ks); i++ {
		k := ks[i]
		switch {
		case k.Type() == "parameter" || k.Type() == "parameter_array":
			if p := c.parameter(kids(k), sc); p != nil {
				out.AddChild(p)
			} else {
				out.AddChild(c.unknown(k))
			}
		case k.Type() == "params" && i+2 < len(ks):
			if p := c.parameter(ks[i:i+3], sc); p != nil {
				out.AddChild(p)
			} else {
				out.AddChild(c.unknownOf("parameter_array", ks[i:i+3]...))
			}
			i += 2
		case !k.IsNamed():
			out.AddChild(c.token(k))
		default:
			out.AddChild(c.unknown(k))
		}
	}
	return out
}

// parameter converts the parts of a parameter, or returns nil without
// taking any token when they do not have the Parameter shape.
func (c *converter) parameter(ks []*sitter.Node, sc *scope) *syntax.Node {
	end := len(ks)
	if end > 0 && ks[end-1].Type() == "equals_value_clause" {
		end--
	} else if end > 1 && ks[end-2].Type() == "=" {
		end -= 2
	}
	if end < 2 || end > 3 || ks[end-1].Type() != "identifier" {
		return nil
	}
	if end == 3 {
		switch syntax.LookupKeyword(ks[0].Content(c.src)) {
		case syntax.TokenRef, syntax.TokenOut, syntax.TokenIn, syntax.TokenParams, syntax.TokenThis:
		default:
			return nil
		}
	}
	out := syntax.NewNode(syntax.KindParameter)
	if end == 3 {
		c.leaves(out, ks[0])
	}
	out.AddChild(c.typeNode(ks[end-2], sc))
	out.AddChild(c.token(ks[end-1]))
	c.initializer(out, ks[end:])
	return out
}

func (c *converter) block(n *sitter.Node, sc *scope) *syntax.Node {
	out := syntax.NewNode(syntax.KindBlock)
	for _, k := range kids(n) {
		if !k.IsNamed() {
			out.AddChild(c.token(k))
			continue
		}
		out.AddChild(c.statement(k, sc))
	}
	return out
}

func (c *converter) statement(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	switch n.Type() {
	case "block":
		return c.block(n, sc)
	case "expression_statement":
		return c.simple(syntax.KindExprStmt, n)
	case "return_statement":
		return c.simple(syntax.KindReturnStmt, n)
	case "throw_statement":
		return c.simple(syntax.KindThrowStmt, n)
	case "break_statement":
		return c.simple(syntax.KindBreakStmt, n)
	case "continue_statement":
		return c.simple(syntax.KindContinueStmt, n)
	case "empty_statement":
		return c.simple(syntax.KindEmptyStmt, n)
	case "local_declaration_statement":
		return c.local(n, sc)
	case "if_statement":
		if (len(ks) != 5 && len(ks) != 7) || ks[1].Type() != "(" || ks[3].Type() != ")" {
			break
		}
		out := syntax.NewNode(syntax.KindIfStmt,
			c.token(ks[0]), c.token(ks[1]), c.expression(ks[2]), c.token(ks[3]), c.statement(ks[4], sc))
		if len(ks) == 7 {
			out.AddChild(syntax.NewNode(syntax.KindElseClause, c.token(ks[5]), c.statement(ks[6], sc)))
		}
		return out
	case "while_statement":
		if len(ks) != 5 || ks[1].Type() != "(" || ks[3].Type() != ")" {
			break
		}
		return syntax.NewNode(syntax.KindWhileStmt,
			c.token(ks[0]), c.token(ks[1]), c.expression(ks[2]), c.token(ks[3]), c.statement(ks[4], sc))
	case "do_statement":
		if len(ks) != 7 || ks[3].Type() != "(" || ks[5].Type() != ")" {
			break
		}
		return syntax.NewNode(syntax.KindDoStmt,
			c.token(ks[0]), c.statement(ks[1], sc), c.token(ks[2]),
			c.token(ks[3]), c.expression(ks[4]), c.token(ks[5]), c.token(ks[6]))
	case "for_statement":
		return c.forStatement(n, sc)
	case "for_each_statement", "foreach_statement":
		if len(ks) != 8 || ks[1].Type() != "(" || ks[3].Type() != "identifier" || ks[4].Type() != "in" {
			break
		}
		return syntax.NewNode(syntax.KindForEachStmt,
			c.token(ks[0]), c.token(ks[1]), c.typeNode(ks[2], sc), c.token(ks[3]),
			c.token(ks[4]), c.expression(ks[5]), c.token(ks[6]), c.statement(ks[7], sc))
	case "try_statement":
		return c.try(n, sc)
	}
	return c.unknown(n)
}

// simple converts statements made of keywords, punctuation and at most one
// expression.
func (c *converter) simple(kind syntax.Kind, n *sitter.Node) *syntax.Node {
	if n.ChildCount() == 0 {
		return syntax.NewNode(kind, c.token(n))
	}
	out := syntax.NewNode(kind)
	for _, k := range kids(n) {
		if k.IsNamed() {
			out.AddChild(c.expression(k))
		} else {
			out.AddChild(c.token(k))
		}
	}
	return out
}

func (c *converter) local(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	last := len(ks) - 1
	if last < 1 || last > 2 || ks[last].Type() != ";" {
		return c.unknown(n)
	}
	if last == 2 && ks[0].Content(c.src) != "const" {
		return c.unknown(n)
	}
	typ, decl := singleDeclarator(ks[last-1])
	if decl == nil {
		return c.unknown(n)
	}
	out := syntax.NewNode(syntax.KindLocalDeclStmt)
	if last == 2 {
		c.leaves(out, ks[0])
	}
	out.AddChild(c.typeNode(typ, sc))
	c.declarator(out, kids(decl))
	out.AddChild(c.token(ks[last]))
	return out
}

func (c *converter) forStatement(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	l := len(ks)
	if l < 6 || ks[1].Type() != "(" || ks[l-2].Type() != ")" {
		return c.unknown(n)
	}
	header := ks[2 : l-2]
	semicolons := 0
	for _, k := range header {
		if k.Type() == ";" {
			semicolons++
		}
	}
	if semicolons != 2 {
		return c.unknown(n)
	}

	out := syntax.NewNode(syntax.KindForStmt, c.token(ks[0]), c.token(ks[1]))
	var part []*sitter.Node
	for _, k := range header {
		if k.Type() != ";" {
			part = append(part, k)
			continue
		}
		if len(part) > 0 {
			out.AddChild(c.expression(part...))
		}
		out.AddChild(c.token(k))
		part = nil
	}
	if len(part) > 0 {
		out.AddChild(c.expression(part...))
	}
	out.AddChild(c.token(ks[l-2]))
	out.AddChild(c.statement(ks[l-1], sc))
	return out
}

func (c *converter) try(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	if len(ks) < 3 || ks[1].Type() != "block" {
		return c.unknown(n)
	}
	out := syntax.NewNode(syntax.KindTryStmt, c.token(ks[0]), c.block(ks[1], sc))
	for _, k := range ks[2:] {
		switch k.Type() {
		case "catch_clause":
			out.AddChild(c.catch(k, sc))
		case "finally_clause":
			fk := kids(k)
			if len(fk) != 2 || fk[1].Type() != "block" {
				out.AddChild(c.unknown(k))
				continue
			}
			out.AddChild(syntax.NewNode(syntax.KindFinallyClause, c.token(fk[0]), c.block(fk[1], sc)))
		default:
			out.AddChild(c.unknown(k))
		}
	}
	return out
}

func (c *converter) catch(n *sitter.Node, sc *scope) *syntax.Node {
	ks := kids(n)
	last := len(ks) - 1
	if last < 1 || last > 2 || ks[last].Type() != "block" {
		return c.unknown(n)
	}
	var decl []*sitter.Node
	if last == 2 {
		decl = kids(ks[1])
		if ks[1].Type() != "catch_declaration" || len(decl) < 3 || len(decl) > 4 {
			return c.unknown(n)
		}
	}
	out := syntax.NewNode(syntax.KindCatchClause, c.token(ks[0]))
	if decl != nil {
		out.AddChild(c.token(decl[0]))
		out.AddChild(c.typeNode(decl[1], sc))
		if len(decl) == 4 {
			out.AddChild(c.token(decl[2]))
		}
		out.AddChild(c.token(decl[len(decl)-1]))
	}
	out.AddChild(c.block(ks[last], sc))
	return out
}

// modifierSet records the modifier keywords of one declaration.
type modifierSet map[syntax.TokenKind]bool

func (m modifierSet) access(implied symbol.Accessibility) symbol.Accessibility {
	switch {
	case m[syntax.TokenProtected] && m[syntax.TokenInternal]:
		return symbol.ProtectedOrInternal
	case m[syntax.TokenPrivate] && m[syntax.TokenProtected]:
		return symbol.ProtectedAndInternal
	case m[syntax.TokenPublic]:
		return symbol.Public
	case m[syntax.TokenPrivate]:
		return symbol.Private
	case m[syntax.TokenProtected]:
		return symbol.Protected
	case m[syntax.TokenInternal]:
		return symbol.Internal
	}
	return implied
}

func isModifier(kind syntax.TokenKind) bool {
	return kind >= syntax.TokenPublic && kind <= syntax.TokenVolatile
}

// plainModifiers reports whether every modifier among ks is one the dom
// layer knows.
func (c *converter) plainModifiers(ks []*sitter.Node) bool {
	for _, k := range ks {
		if k.Type() == "modifier" && !isModifier(syntax.LookupKeyword(k.Content(c.src))) {
			return false
		}
	}
	return true
}

func (c *converter) onlyModifiers(ks []*sitter.Node) bool {
	for _, k := range ks {
		if k.Type() != "modifier" {
			return false
		}
	}
	return c.plainModifiers(ks)
}

func (c *converter) modifier(out *syntax.Node, n *sitter.Node, mods modifierSet) {
	before := len(out.Children)
	c.leaves(out, n)
	for _, tok := range out.Children[before:] {
		mods[tok.Token.Kind] = true
	}
}

// member declares the symbol of a member declaration.
func (c *converter) member(out *syntax.Node, kind symbol.Kind, mods modifierSet, sc *scope) *symbol.Def {
	def := &symbol.Def{
		SymKind:   kind,
		Namespace: sc.ns,
		Type:      sc.typ,
		Access:    mods.access(sc.memberAccess()),
		Abstract:  mods[syntax.TokenAbstract],
		Sealed:    mods[syntax.TokenSealed],
		Static:    mods[syntax.TokenStatic],
	}
	if tok := out.FirstTokenOf(syntax.TokenIdent); tok != nil {
		def.SymName = tok.Literal
	}
	c.decls.declare(out, def)
	return def
}

// literal joins the token literals under n.
func literal(n *syntax.Node) string {
	var sb strings.Builder
	for _, tok := range n.Tokens() {
		sb.WriteString(tok.Literal)
	}
	return sb.String()
}
