package dom

import (
	"sync"

	"github.com/dhamidi/rdom/syntax"
)

var rootLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemEndOfFile, syntax.TokenEOF)
})

var usingLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemUsingKeyword, syntax.TokenUsing).
		Add(ElemEndOfStatement, syntax.TokenSemicolon)
})

var namespaceLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemNamespaceKeyword, syntax.TokenNamespace).
		Add(ElemStartDelimiter, syntax.TokenLBrace).
		Add(ElemEndDelimiter, syntax.TokenRBrace)
})

func stemFactories() []Factory {
	return []Factory{
		{
			SyntaxKind: syntax.KindCompilationUnit,
			DomKind:    KindRoot,
			Lookup:     rootLookup,
			Create:     createRoot,
			Build:      buildRoot,
		},
		{
			SyntaxKind: syntax.KindUsingDirective,
			DomKind:    KindUsing,
			Lookup:     usingLookup,
			Create:     createUsing,
			Build:      buildUsing,
		},
		{
			SyntaxKind: syntax.KindNamespaceDecl,
			DomKind:    KindNamespace,
			Lookup:     namespaceLookup,
			Create:     createNamespace,
			Build:      buildNamespace,
		},
	}
}

func createRoot(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	r := NewRoot()
	if err := createStemMembers(cx, r, &r.stemContainer, raw); err != nil {
		return nil, err
	}
	return r, nil
}

func createStemMembers(cx *CreateContext, owner Node, c *stemContainer, raw *syntax.Node) error {
	for _, child := range raw.Children {
		if child.IsToken() || child.Kind == syntax.KindName {
			continue
		}
		m, err := createAs[StemMember](cx, child, owner)
		if err != nil {
			return err
		}
		c.AddMember(m)
	}
	return nil
}

func buildRoot(bx *BuildContext, n Node) (*syntax.Node, error) {
	r := n.(*Root)
	w := bx.Writer(r)
	out := syntax.NewNode(syntax.KindCompilationUnit)
	for i, m := range r.members.items {
		leading := bx.LineStart(1)
		if i == 0 {
			leading = ""
		}
		built, err := bx.BuildMember(m, leading)
		if err != nil {
			return nil, err
		}
		out.AddChild(built)
	}
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenEOF, "", Trivia{Leading: bx.format.Newline}))
	return out, nil
}

func createUsing(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	u := &Using{}
	if name := raw.FirstChildOfKind(syntax.KindName); name != nil {
		u.name = literalText(name)
	}
	return u, nil
}

func buildUsing(bx *BuildContext, n Node) (*syntax.Node, error) {
	u := n.(*Using)
	if u.name == "" {
		return nil, invariant(u, "using directive without a namespace")
	}
	w := bx.Writer(u)
	return syntax.NewNode(syntax.KindUsingDirective,
		w.Token(syntax.KindNone, syntax.TokenUsing, "", noSpace),
		nameSyntax(u, " "),
		w.Token(syntax.KindNone, syntax.TokenSemicolon, "", noSpace),
	), nil
}

// nameSyntax replays the written dotted name of n when it is unchanged.
func nameSyntax(n Node, leading string) *syntax.Node {
	if raw := n.RawItem(); raw != nil {
		if name := raw.FirstChildOfKind(syntax.KindName); name != nil && literalText(name) == n.Name() {
			return name.Clone()
		}
	}
	tok := syntax.NewToken(syntax.TokenText, n.Name())
	tok.Token.Leading = leading
	return syntax.NewNode(syntax.KindName, tok)
}

func createNamespace(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	ns := NewNamespace("")
	if name := raw.FirstChildOfKind(syntax.KindName); name != nil {
		ns.name = literalText(name)
	}
	if err := createStemMembers(cx, ns, &ns.stemContainer, raw); err != nil {
		return nil, err
	}
	return ns, nil
}

func buildNamespace(bx *BuildContext, n Node) (*syntax.Node, error) {
	ns := n.(*Namespace)
	if ns.name == "" {
		return nil, invariant(ns, "namespace without a name")
	}
	w := bx.Writer(ns)
	out := syntax.NewNode(syntax.KindNamespaceDecl,
		w.Token(syntax.KindNone, syntax.TokenNamespace, "", noSpace),
		nameSyntax(ns, " "),
		w.Token(syntax.KindNone, syntax.TokenLBrace, "", Trivia{Leading: bx.LineStart(0)}),
	)
	for _, m := range ns.members.items {
		built, err := bx.BuildMember(m, bx.LineStart(1))
		if err != nil {
			return nil, err
		}
		out.AddChild(built)
	}
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenRBrace, "", Trivia{Leading: bx.LineStart(0)}))
	return out, nil
}
