package dom

import (
	"fmt"
	"strings"

	"github.com/dhamidi/rdom/syntax"
	"github.com/tliron/commonlog"
)

// Formatting holds the conventions for trivia that was never captured.
type Formatting struct {
	Indent  string
	Newline string
}

func DefaultFormatting() Formatting {
	return Formatting{Indent: "    ", Newline: "\n"}
}

// BuildSyntax regenerates the syntax for n and everything below it. Nodes
// whose trivia was captured reproduce their original text; new nodes get
// default formatting. The result has its spans laid out.
func BuildSyntax(n Node, opts ...Option) (*syntax.Node, error) {
	o := newOptions(opts)
	bx := &BuildContext{corp: o.corp, format: o.format, log: o.log, depth: depthOf(n)}
	out, err := bx.build(n, "")
	if err != nil {
		return nil, err
	}
	syntax.Layout(out)
	return out, nil
}

// depthOf returns the nesting depth n is written at. Members of a root sit
// at depth zero.
func depthOf(n Node) int {
	switch n.Kind() {
	case KindRoot:
		return -1
	case KindElse, KindCatch, KindFinally, KindExpression, KindParameter, KindTypeParameter:
		if p := n.Parent(); p != nil {
			return depthOf(p)
		}
		return 0
	}
	if p := n.Parent(); p != nil {
		return depthOf(p) + 1
	}
	return 0
}

// BuildContext is handed to factories while syntax is built.
type BuildContext struct {
	corp   *Corporation
	format Formatting
	log    commonlog.Logger
	depth  int
	lookup *WhitespaceLookup
}

func (bx *BuildContext) Corporation() *Corporation { return bx.corp }
func (bx *BuildContext) Formatting() Formatting    { return bx.format }

// Depth is the nesting depth of the node being built.
func (bx *BuildContext) Depth() int { return bx.depth }

// LineStart returns a newline followed by the indentation of depth plus
// offset.
func (bx *BuildContext) LineStart(offset int) string {
	level := bx.depth + offset
	if level < 0 {
		level = 0
	}
	return bx.format.Newline + strings.Repeat(bx.format.Indent, level)
}

// Writer returns a token writer that replays the whitespace of n, the node
// being built, through the lookup of its registered factory.
func (bx *BuildContext) Writer(n Node) *TokenWriter {
	return newTokenWriter(n, bx.lookup, bx.log)
}

// BuildMember builds a node nested one level deeper than the current one.
// leading is used unless the node captured its own.
func (bx *BuildContext) BuildMember(n Node, leading string) (*syntax.Node, error) {
	inner := *bx
	inner.depth++
	return inner.build(n, leading)
}

// BuildInline builds a node at the current depth.
func (bx *BuildContext) BuildInline(n Node, leading string) (*syntax.Node, error) {
	inner := *bx
	return inner.build(n, leading)
}

func (bx *BuildContext) build(n Node, leading string) (*syntax.Node, error) {
	f, ok := bx.corp.ForDom(n.Kind())
	if !ok || f.Build == nil {
		bx.log.Debugf("no factory builds %s %q", n.Kind(), n.Name())
		return nil, &UnsupportedError{DomKind: n.Kind()}
	}
	inner := *bx
	inner.lookup = f.lookup()
	out, err := f.Build(&inner, n)
	if err != nil {
		return nil, fmt.Errorf("building %s %q: %w", n.Kind(), n.Name(), err)
	}
	if first := out.FirstToken(); first != nil {
		if captured, ok := n.Whitespace().Leading(); ok {
			first.Leading = captured
		} else {
			first.Leading = leading
		}
	}
	return out, nil
}

// Type returns the syntax of a type reference owned by owner. Read types
// replay their tokens; a type that used to start its owner's syntax gets
// leading instead of its old trivia.
func (bx *BuildContext) Type(owner Node, t *ReferencedType, leading string) *syntax.Node {
	out := buildType(t)
	first := out.FirstToken()
	if first == nil {
		return out
	}
	if t.raw == nil {
		first.Leading = leading
	} else if raw := owner.RawItem(); raw != nil && raw.FirstToken() == t.raw.FirstToken() {
		first.Leading = leading
	}
	return out
}

// Expression builds an optional expression at the current depth.
func (bx *BuildContext) Expression(e *Expression, leading string) (*syntax.Node, error) {
	if e == nil {
		return nil, nil
	}
	return bx.BuildInline(e, leading)
}

// modifiers writes the accessibility and modifier keywords of d.
func (bx *BuildContext) modifiers(w *TokenWriter, d *declaration) []*syntax.Node {
	var out []*syntax.Node
	for _, tok := range d.modifierTokenKinds() {
		out = append(out, w.Token(syntax.KindNone, tok, "", space))
	}
	return out
}

// body builds a statement list. A block is written with braces on their own
// lines; a single statement without them is written one level deeper.
func (bx *BuildContext) body(w *TokenWriter, sb *statementBlock) (*syntax.Node, error) {
	if !sb.HasBlock() {
		return bx.BuildMember(sb.statements.items[0], bx.LineStart(1))
	}
	return bx.block(w, sb)
}

// block builds a statement list that always has braces.
func (bx *BuildContext) block(w *TokenWriter, sb *statementBlock) (*syntax.Node, error) {
	block := syntax.NewNode(syntax.KindBlock,
		w.Token(syntax.KindBlock, syntax.TokenLBrace, "", Trivia{Leading: bx.LineStart(0)}))
	for _, s := range sb.statements.items {
		built, err := bx.BuildMember(s, bx.LineStart(1))
		if err != nil {
			return nil, err
		}
		block.AddChild(built)
	}
	block.AddChild(w.Token(syntax.KindBlock, syntax.TokenRBrace, "", Trivia{Leading: bx.LineStart(0)}))
	return block, nil
}

var (
	space   = Trivia{Leading: " "}
	noSpace = Trivia{}
)
