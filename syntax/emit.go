package syntax

import (
	"io"
	"strings"
)

// Emit returns the text of the tree rooted at n, trivia included. For a tree
// produced by a front end from source text this is the original text.
func Emit(n *Node) string {
	var sb strings.Builder
	writeTokens(&sb, n)
	return sb.String()
}

// Write emits the tree rooted at n to w.
func Write(w io.Writer, n *Node) error {
	_, err := io.WriteString(w, Emit(n))
	return err
}

func writeTokens(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	n.walkTokens(func(t *Token) bool {
		sb.WriteString(t.Leading)
		sb.WriteString(t.Literal)
		sb.WriteString(t.Trailing)
		return true
	})
}

// Layout recomputes the span of every node and token under root from the
// token text, as if the tree had been emitted starting at offset 0, line 1,
// column 1. Node spans cover their tokens but not the outer trivia.
func Layout(root *Node) {
	l := &layout{pos: Position{Offset: 0, Line: 1, Column: 1}}
	l.node(root)
}

type layout struct {
	pos Position
}

func (l *layout) advance(text string) {
	for i := 0; i < len(text); i++ {
		l.pos.Offset++
		switch text[i] {
		case '\n':
			l.pos.Line++
			l.pos.Column = 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			l.pos.Line++
			l.pos.Column = 1
		default:
			l.pos.Column++
		}
	}
}

func (l *layout) node(n *Node) (start, end Position, ok bool) {
	if n.Token != nil {
		l.advance(n.Token.Leading)
		n.Token.Span.Start = l.pos
		l.advance(n.Token.Literal)
		n.Token.Span.End = l.pos
		l.advance(n.Token.Trailing)
		n.Span = n.Token.Span
		return n.Span.Start, n.Span.End, true
	}
	for _, child := range n.Children {
		s, e, childOK := l.node(child)
		if !childOK {
			continue
		}
		if !ok {
			start = s
			ok = true
		}
		end = e
	}
	if !ok {
		n.Span = Span{Start: l.pos, End: l.pos}
		return l.pos, l.pos, false
	}
	n.Span = Span{Start: start, End: end}
	return start, end, true
}
