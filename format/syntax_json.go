package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/rdom/syntax"
)

// SyntaxJSONEncoder writes a syntax tree as JSON. Trivia is included so the
// output describes the text exactly.
type SyntaxJSONEncoder struct {
	w io.Writer
}

func NewSyntaxJSONEncoder(w io.Writer) *SyntaxJSONEncoder {
	return &SyntaxJSONEncoder{w: w}
}

func (e *SyntaxJSONEncoder) Encode(node *syntax.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *SyntaxJSONEncoder) MarshalText(node *syntax.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type syntaxJSONNode struct {
	Kind     string            `json:"kind"`
	Span     *syntaxJSONSpan   `json:"span,omitempty"`
	Token    *syntaxJSONToken  `json:"token,omitempty"`
	Label    string            `json:"label,omitempty"`
	Expr     string            `json:"expr,omitempty"`
	Children []*syntaxJSONNode `json:"children,omitempty"`
}

type syntaxJSONSpan struct {
	Start syntaxJSONPosition `json:"start"`
	End   syntaxJSONPosition `json:"end"`
}

type syntaxJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type syntaxJSONToken struct {
	Kind     string `json:"kind"`
	Literal  string `json:"literal"`
	Leading  string `json:"leading,omitempty"`
	Trailing string `json:"trailing,omitempty"`
}

func nodeToJSON(n *syntax.Node) *syntaxJSONNode {
	jn := &syntaxJSONNode{
		Kind:  n.Kind.String(),
		Label: n.Label,
	}

	if !n.Span.IsZero() {
		jn.Span = &syntaxJSONSpan{
			Start: syntaxJSONPosition{Line: n.Span.Start.Line, Column: n.Span.Start.Column},
			End:   syntaxJSONPosition{Line: n.Span.End.Line, Column: n.Span.End.Column},
		}
	}

	if n.Token != nil {
		jn.Token = &syntaxJSONToken{
			Kind:     n.Token.Kind.String(),
			Literal:  n.Token.Literal,
			Leading:  n.Token.Leading,
			Trailing: n.Token.Trailing,
		}
	}

	if n.Kind == syntax.KindExpression {
		jn.Expr = n.Expr.String()
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*syntaxJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
