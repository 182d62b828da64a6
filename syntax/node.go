package syntax

import "strings"

type Kind int

const (
	KindNone Kind = iota

	// Compilation unit level
	KindCompilationUnit
	KindUsingDirective
	KindNamespaceDecl

	// Type declarations
	KindClassDecl
	KindStructDecl
	KindInterfaceDecl
	KindEnumDecl
	KindEnumMember

	// Members
	KindFieldDecl
	KindPropertyDecl
	KindMethodDecl
	KindConstructorDecl

	// Declaration parts
	KindTypeParameterList
	KindTypeParameter
	KindBaseList
	KindParameterList
	KindParameter
	KindAccessorList
	KindType
	KindName

	// Statements
	KindBlock
	KindExprStmt
	KindReturnStmt
	KindLocalDeclStmt
	KindIfStmt
	KindElseClause
	KindWhileStmt
	KindDoStmt
	KindForStmt
	KindForEachStmt
	KindTryStmt
	KindCatchClause
	KindFinallyClause
	KindBreakStmt
	KindContinueStmt
	KindThrowStmt
	KindEmptyStmt

	// Expressions
	KindExpression

	KindToken
	KindUnknown
)

var nodeKindNames = map[Kind]string{
	KindNone:              "None",
	KindCompilationUnit:   "CompilationUnit",
	KindUsingDirective:    "UsingDirective",
	KindNamespaceDecl:     "NamespaceDecl",
	KindClassDecl:         "ClassDecl",
	KindStructDecl:        "StructDecl",
	KindInterfaceDecl:     "InterfaceDecl",
	KindEnumDecl:          "EnumDecl",
	KindEnumMember:        "EnumMember",
	KindFieldDecl:         "FieldDecl",
	KindPropertyDecl:      "PropertyDecl",
	KindMethodDecl:        "MethodDecl",
	KindConstructorDecl:   "ConstructorDecl",
	KindTypeParameterList: "TypeParameterList",
	KindTypeParameter:     "TypeParameter",
	KindBaseList:          "BaseList",
	KindParameterList:     "ParameterList",
	KindParameter:         "Parameter",
	KindAccessorList:      "AccessorList",
	KindType:              "Type",
	KindName:              "Name",
	KindBlock:             "Block",
	KindExprStmt:          "ExprStmt",
	KindReturnStmt:        "ReturnStmt",
	KindLocalDeclStmt:     "LocalDeclStmt",
	KindIfStmt:            "IfStmt",
	KindElseClause:        "ElseClause",
	KindWhileStmt:         "WhileStmt",
	KindDoStmt:            "DoStmt",
	KindForStmt:           "ForStmt",
	KindForEachStmt:       "ForEachStmt",
	KindTryStmt:           "TryStmt",
	KindCatchClause:       "CatchClause",
	KindFinallyClause:     "FinallyClause",
	KindBreakStmt:         "BreakStmt",
	KindContinueStmt:      "ContinueStmt",
	KindThrowStmt:         "ThrowStmt",
	KindEmptyStmt:         "EmptyStmt",
	KindExpression:        "Expression",
	KindToken:             "Token",
	KindUnknown:           "Unknown",
}

func (k Kind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ExprKind classifies Expression nodes. Front ends map their own expression
// constructs onto these; anything without a better fit is ExprOther.
type ExprKind int

const (
	ExprOther ExprKind = iota
	ExprLiteral
	ExprIdentifier
	ExprInvocation
	ExprMemberAccess
	ExprAssignment
	ExprBinary
	ExprUnary
	ExprObjectCreation
	ExprLambda
	ExprConditional
)

var exprKindNames = map[ExprKind]string{
	ExprOther:          "Other",
	ExprLiteral:        "Literal",
	ExprIdentifier:     "Identifier",
	ExprInvocation:     "Invocation",
	ExprMemberAccess:   "MemberAccess",
	ExprAssignment:     "Assignment",
	ExprBinary:         "Binary",
	ExprUnary:          "Unary",
	ExprObjectCreation: "ObjectCreation",
	ExprLambda:         "Lambda",
	ExprConditional:    "Conditional",
}

func (k ExprKind) String() string {
	if name, ok := exprKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Node struct {
	Kind     Kind
	Span     Span
	Children []*Node
	Token    *Token

	// Label is the front end's own name for the construct, kept for
	// diagnostics. It is informational only.
	Label string

	// Expr is only meaningful on KindExpression nodes.
	Expr ExprKind
}

// NewToken returns a leaf node holding a token of the given kind.
func NewToken(kind TokenKind, literal string) *Node {
	return &Node{Kind: KindToken, Token: &Token{Kind: kind, Literal: literal}}
}

// NewNode returns an interior node of the given kind with children appended
// in order. Nil children are skipped.
func NewNode(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) IsToken() bool {
	return n.Token != nil
}

// IsTokenOf reports whether n is a leaf holding a token of kind k.
func (n *Node) IsTokenOf(k TokenKind) bool {
	return n != nil && n.Token != nil && n.Token.Kind == k
}

func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// FirstTokenOf returns the first direct child token of kind k.
func (n *Node) FirstTokenOf(k TokenKind) *Token {
	for _, child := range n.Children {
		if child.IsTokenOf(k) {
			return child.Token
		}
	}
	return nil
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// Tokens returns every token under n in source order.
func (n *Node) Tokens() []*Token {
	var tokens []*Token
	n.walkTokens(func(t *Token) bool {
		tokens = append(tokens, t)
		return true
	})
	return tokens
}

func (n *Node) walkTokens(fn func(*Token) bool) bool {
	if n.Token != nil {
		return fn(n.Token)
	}
	for _, child := range n.Children {
		if !child.walkTokens(fn) {
			return false
		}
	}
	return true
}

func (n *Node) FirstToken() *Token {
	var first *Token
	n.walkTokens(func(t *Token) bool {
		first = t
		return false
	})
	return first
}

func (n *Node) LastToken() *Token {
	if n.Token != nil {
		return n.Token
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if t := n.Children[i].LastToken(); t != nil {
			return t
		}
	}
	return nil
}

// Text returns the source text of n without the leading trivia of its first
// token and the trailing trivia of its last token. Trivia between tokens is
// kept.
func (n *Node) Text() string {
	tokens := n.Tokens()
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteString(t.Leading)
		}
		sb.WriteString(t.Literal)
		if i < len(tokens)-1 {
			sb.WriteString(t.Trailing)
		}
	}
	return sb.String()
}

// Clone returns a deep copy of n. Tokens are copied, so the clone can be
// re-trivia'd without touching the original.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Span: n.Span, Label: n.Label, Expr: n.Expr}
	if n.Token != nil {
		tok := *n.Token
		c.Token = &tok
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

func (n *Node) String() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, false)
	return sb.String()
}

func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, true)
	return sb.String()
}

func (n *Node) writeIndent(sb *strings.Builder, indent int, showPositions bool) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Kind.String())
	if n.Label != "" && n.Kind != KindToken {
		sb.WriteString("(" + n.Label + ")")
	}
	if showPositions {
		sb.WriteString(" [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]")
	}
	if n.Token != nil {
		sb.WriteString(" " + n.Token.Kind.String() + " " + n.Token.Literal)
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		child.writeIndent(sb, indent+1, showPositions)
	}
}
