package dom

import (
	"fmt"
	"strings"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
	"github.com/tliron/commonlog"
)

type Option func(*options)

type options struct {
	corp   *Corporation
	format Formatting
	log    commonlog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{format: DefaultFormatting(), log: log}
	for _, opt := range opts {
		opt(o)
	}
	if o.corp == nil {
		o.corp = DefaultCorporation()
	}
	return o
}

func WithCorporation(c *Corporation) Option {
	return func(o *options) { o.corp = c }
}

// WithFormatting sets the conventions used for trivia that was never
// captured.
func WithFormatting(f Formatting) Option {
	return func(o *options) { o.format = f }
}

func WithLogger(l commonlog.Logger) Option {
	return func(o *options) { o.log = l }
}

// CreateFrom turns a compilation unit into a root node. On error no graph is
// returned.
func CreateFrom(raw *syntax.Node, symbols symbol.Resolver, opts ...Option) (*Root, error) {
	n, err := Create(raw, symbols, opts...)
	if err != nil {
		return nil, err
	}
	root, ok := n.(*Root)
	if !ok {
		return nil, fmt.Errorf("%s is not a compilation unit: %w", raw.Kind, ErrInvariant)
	}
	return root, nil
}

// Create turns any supported syntax subtree into a detached node.
func Create(raw *syntax.Node, symbols symbol.Resolver, opts ...Option) (Node, error) {
	o := newOptions(opts)
	cx := &CreateContext{corp: o.corp, symbols: symbols, log: o.log}
	return cx.Create(raw, nil)
}

// CreateContext is handed to factories while a graph is created.
type CreateContext struct {
	corp    *Corporation
	symbols symbol.Resolver
	log     commonlog.Logger
}

func (cx *CreateContext) Corporation() *Corporation { return cx.corp }

// Create dispatches raw to its factory, then records the raw syntax, the
// symbol and the whitespace on the result.
func (cx *CreateContext) Create(raw *syntax.Node, parent Node) (Node, error) {
	f, ok := cx.corp.ForSyntax(raw.Kind)
	if !ok || f.Create == nil {
		cx.log.Debugf("no factory creates %s (%s) at %s", raw.Kind, raw.Label, raw.Span.Start)
		return nil, &UnsupportedError{SyntaxKind: raw.Kind, Label: raw.Label}
	}
	n, err := f.Create(cx, raw, parent)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", raw.Kind, err)
	}
	b := n.base()
	b.raw = raw
	if b.sym == nil {
		b.sym = cx.SymbolOf(raw)
	}
	captureWhitespace(&b.whitespace, raw, f.lookup())
	return n, nil
}

// SymbolOf resolves the symbol of raw, or returns nil.
func (cx *CreateContext) SymbolOf(raw *syntax.Node) symbol.Symbol {
	if cx.symbols == nil || raw == nil {
		return nil
	}
	return cx.symbols.SymbolAt(raw.Span)
}

// Type reads a type reference. It returns nil for a nil raw.
func (cx *CreateContext) Type(raw *syntax.Node) *ReferencedType {
	if raw == nil {
		return nil
	}
	return newReferencedType(raw, cx.SymbolOf(raw))
}

// Expression creates the expression node for raw. It returns nil for a nil
// raw.
func (cx *CreateContext) Expression(raw *syntax.Node, parent Node) (*Expression, error) {
	if raw == nil {
		return nil, nil
	}
	return createAs[*Expression](cx, raw, parent)
}

func createAs[T Node](cx *CreateContext, raw *syntax.Node, parent Node) (T, error) {
	var zero T
	n, err := cx.Create(raw, parent)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		label := n.Kind().String()
		if parent != nil {
			label += " inside " + parent.Kind().String()
		}
		return zero, &UnsupportedError{SyntaxKind: raw.Kind, Label: label}
	}
	return t, nil
}

// createBody fills a statement block from a body that is either a block or a
// single statement.
func createBody(cx *CreateContext, owner Node, sb *statementBlock, body *syntax.Node) error {
	if body == nil {
		return nil
	}
	if body.Kind != syntax.KindBlock {
		sb.hasBlock = false
		s, err := createAs[Statement](cx, body, owner)
		if err != nil {
			return err
		}
		sb.AddStatement(s)
		return nil
	}
	sb.hasBlock = true
	return createStatements(cx, owner, sb, body)
}

func createStatements(cx *CreateContext, owner Node, sb *statementBlock, block *syntax.Node) error {
	for _, child := range block.Children {
		if child.IsToken() {
			continue
		}
		s, err := createAs[Statement](cx, child, owner)
		if err != nil {
			return err
		}
		sb.AddStatement(s)
	}
	return nil
}

// identifier returns the first identifier token directly under raw.
func identifier(raw *syntax.Node) string {
	if tok := raw.FirstTokenOf(syntax.TokenIdent); tok != nil {
		return tok.Literal
	}
	return ""
}

// literalText joins the token literals under raw, dropping all trivia.
func literalText(raw *syntax.Node) string {
	var sb strings.Builder
	for _, tok := range raw.Tokens() {
		sb.WriteString(tok.Literal)
	}
	return sb.String()
}

func isStatementKind(k syntax.Kind) bool {
	switch k {
	case syntax.KindBlock, syntax.KindExprStmt, syntax.KindReturnStmt, syntax.KindLocalDeclStmt,
		syntax.KindIfStmt, syntax.KindWhileStmt, syntax.KindDoStmt, syntax.KindForStmt,
		syntax.KindForEachStmt, syntax.KindTryStmt, syntax.KindBreakStmt, syntax.KindContinueStmt,
		syntax.KindThrowStmt, syntax.KindEmptyStmt, syntax.KindUnknown:
		return true
	}
	return false
}

// bodyOf returns the statement that forms the body of a compound statement.
func bodyOf(raw *syntax.Node) *syntax.Node {
	for _, child := range raw.Children {
		if isStatementKind(child.Kind) {
			return child
		}
	}
	return nil
}
