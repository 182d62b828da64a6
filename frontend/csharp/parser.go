// Package csharp is a C# front end for rdom. It parses source text with
// tree-sitter and hands over a full fidelity syntax tree together with a
// symbol table for the types and members declared in the file.
//
// The syntax tree follows the shapes documented in package syntax. All
// whitespace and comments between two tokens end up in the Leading trivia
// of the second token, and the text after the last token is the Leading
// trivia of the EOF token, so syntax.Emit returns the parsed text unchanged.
// Attribute lists are carried as trivia as well.
//
// Constructs that have no syntax shape, such as switch statements, events
// or expression-bodied members, are handed over as syntax.KindUnknown nodes
// labelled with the tree-sitter node type.
package csharp

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("rdom.csharp")

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports the first place tree-sitter could not parse.
type SyntaxError struct {
	Line   int
	Column int
	Near   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d near %q", e.Line, e.Column, e.Near)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// File is a parsed source file.
type File struct {
	Syntax  *syntax.Node
	Symbols *symbol.Table
}

// Parser wraps a tree-sitter parser. A Parser must not be used from more
// than one goroutine at a time.
type Parser struct {
	ts *sitter.Parser
}

func NewParser() *Parser {
	ts := sitter.NewParser()
	ts.SetLanguage(csharp.GetLanguage())
	return &Parser{ts: ts}
}

// Parse parses src. It fails with a *SyntaxError when the text is not valid
// C#.
func (p *Parser) Parse(ctx context.Context, src []byte) (*File, error) {
	tree, err := p.ts.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root, src)
	}

	c := newConverter(src)
	unit := c.compilationUnit(root)
	syntax.Layout(unit)
	table := c.decls.table()
	log.Debugf("parsed %d bytes, %d symbols", len(src), table.Len())
	return &File{Syntax: unit, Symbols: table}, nil
}

// Parse parses src with a fresh Parser.
func Parse(ctx context.Context, src []byte) (*File, error) {
	return NewParser().Parse(ctx, src)
}

func syntaxError(root *sitter.Node, src []byte) error {
	n := firstError(root)
	if n == nil {
		n = root
	}
	near := n.Content(src)
	if len(near) > 20 {
		near = near[:20]
	}
	pos := n.StartPoint()
	return &SyntaxError{Line: int(pos.Row) + 1, Column: int(pos.Column) + 1, Near: near}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.HasError() && !child.IsMissing() {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}
