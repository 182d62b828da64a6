package syntax

import (
	"strings"
	"testing"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCompilationUnit, "CompilationUnit"},
		{KindNamespaceDecl, "NamespaceDecl"},
		{KindClassDecl, "ClassDecl"},
		{KindStructDecl, "StructDecl"},
		{KindEnumDecl, "EnumDecl"},
		{KindMethodDecl, "MethodDecl"},
		{KindWhileStmt, "WhileStmt"},
		{KindDoStmt, "DoStmt"},
		{KindFinallyClause, "FinallyClause"},
		{KindExpression, "Expression"},
		{Kind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestTokenKindLookup(t *testing.T) {
	tests := []struct {
		text string
		want TokenKind
	}{
		{"class", TokenClass},
		{"struct", TokenStruct},
		{"foreach", TokenForeach},
		{"Widget", TokenIdent},
		{"Class", TokenIdent},
	}
	for _, tt := range tests {
		if got := LookupKeyword(tt.text); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	if got := LookupPunct("{"); got != TokenLBrace {
		t.Errorf("LookupPunct({) = %v, want %v", got, TokenLBrace)
	}
	if got := LookupPunct("=>"); got != TokenText {
		t.Errorf("LookupPunct(=>) = %v, want %v", got, TokenText)
	}
	if got := TokenSemicolon.Text(); got != ";" {
		t.Errorf("TokenSemicolon.Text() = %q, want %q", got, ";")
	}
	if got := TokenIdent.Text(); got != "" {
		t.Errorf("TokenIdent.Text() = %q, want empty", got)
	}
}

func TestNodeAddChild(t *testing.T) {
	parent := &Node{Kind: KindClassDecl}
	child1 := &Node{Kind: KindMethodDecl}
	child2 := &Node{Kind: KindFieldDecl}

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.AddChild(nil)

	if len(parent.Children) != 2 {
		t.Errorf("Expected 2 children, got %d", len(parent.Children))
	}
	if parent.Children[0] != child1 {
		t.Error("First child mismatch")
	}
	if parent.Children[1] != child2 {
		t.Error("Second child mismatch")
	}
}

func sampleExpression() *Node {
	a := NewToken(TokenIdent, "a")
	a.Token.Leading = "  "
	plus := NewToken(TokenText, "+")
	plus.Token.Leading = " "
	b := NewToken(TokenIdent, "b")
	b.Token.Leading = " "
	b.Token.Trailing = " // sum"
	return NewNode(KindExpression, a, plus, b)
}

func TestNodeText(t *testing.T) {
	expr := sampleExpression()

	if got := expr.Text(); got != "a + b" {
		t.Errorf("Text() = %q, want %q", got, "a + b")
	}
	if got := Emit(expr); got != "  a + b // sum" {
		t.Errorf("Emit() = %q, want %q", got, "  a + b // sum")
	}
	if first := expr.FirstToken(); first == nil || first.Literal != "a" {
		t.Errorf("FirstToken() = %v, want a", first)
	}
	if last := expr.LastToken(); last == nil || last.Literal != "b" {
		t.Errorf("LastToken() = %v, want b", last)
	}
}

func TestNodeClone(t *testing.T) {
	expr := sampleExpression()
	clone := expr.Clone()

	clone.Children[0].Token.Leading = ""
	clone.Children[2].Token.Literal = "c"

	if got := Emit(expr); got != "  a + b // sum" {
		t.Errorf("original changed through clone: %q", got)
	}
	if got := Emit(clone); got != "a + c // sum" {
		t.Errorf("Emit(clone) = %q, want %q", got, "a + c // sum")
	}
}

func TestNodeString(t *testing.T) {
	n := NewNode(KindReturnStmt,
		NewToken(TokenReturn, "return"),
		NewToken(TokenSemicolon, ";"),
	)
	got := n.String()
	want := "ReturnStmt\n  Token return return\n  Token ; ;\n"
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if !strings.Contains(n.StringWithPositions(), "[") {
		t.Error("StringWithPositions() should include spans")
	}
}

func TestFirstTokenOf(t *testing.T) {
	n := NewNode(KindWhileStmt,
		NewToken(TokenWhile, "while"),
		NewToken(TokenLParen, "("),
		NewNode(KindExpression, NewToken(TokenIdent, "ok")),
		NewToken(TokenRParen, ")"),
	)
	if tok := n.FirstTokenOf(TokenRParen); tok == nil || tok.Literal != ")" {
		t.Errorf("FirstTokenOf(RParen) = %v", tok)
	}
	if tok := n.FirstTokenOf(TokenIdent); tok != nil {
		t.Errorf("FirstTokenOf should only look at direct children, got %v", tok)
	}
	if !n.Children[0].IsTokenOf(TokenWhile) {
		t.Error("expected first child to be the while keyword")
	}
}
