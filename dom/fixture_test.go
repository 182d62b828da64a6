package dom

import (
	"testing"

	"github.com/dhamidi/rdom/syntax"
)

const widgetSource = `// Widgets.
using System;
using System.Collections.Generic;

namespace Acme.Tools
{
    public interface IGadget
    {
        int Size { get; }
        void Spin(int times);
    }

    public sealed class Widget : Base, IGadget
    {
        private readonly int count = 0;

        public int Size { get; set; }

        public Widget(int count)
        {
            this.count = count;
        }

        public void Spin(int times)
        {
            for (var i = 0; i < times; i++)
            {
                if (i % 2 == 0)
                    Log(i);
                else
                {
                    continue;
                }
            }
            return;
        }
    }

    enum Color { Red, Green = 2, }
}
`

// widgetReformatted has the tokens of widgetSource with other whitespace and
// comments.
const widgetReformatted = `using System; using System . Collections . Generic;
namespace Acme.Tools {
  public interface IGadget { int Size { get; } void Spin(int times); }
  /* the widget */
  public sealed class Widget:Base,IGadget {
    private readonly int count=0;
    public int Size{get;set;}
    public Widget(int count) { this.count=count; }
    public void Spin(int times) {
      for (var i=0;i<times;i++) {
        if (i%2==0) Log(i); // odd ones are skipped
        else { continue; }
      }
      return;
    }
  }
  enum Color{Red,Green=2,}
}`

// widgetSyntax spells out the syntax tree of src, which must have the
// tokens of widgetSource.
func widgetSyntax(t *testing.T, src string) *syntax.Node {
	t.Helper()
	s := newSource(t, src)
	params := func() *syntax.Node {
		return node(syntax.KindParameterList,
			s.tok(syntax.TokenLParen),
			node(syntax.KindParameter, s.typ(1), s.ident()),
			s.tok(syntax.TokenRParen))
	}
	accessors := func(kinds ...syntax.TokenKind) *syntax.Node {
		list := node(syntax.KindAccessorList, s.tok(syntax.TokenLBrace))
		for _, k := range kinds {
			list.AddChild(s.tok(k))
			list.AddChild(s.tok(syntax.TokenSemicolon))
		}
		list.AddChild(s.tok(syntax.TokenRBrace))
		return list
	}

	return s.unit(
		node(syntax.KindUsingDirective, s.tok(syntax.TokenUsing), s.name(1), s.tok(syntax.TokenSemicolon)),
		node(syntax.KindUsingDirective, s.tok(syntax.TokenUsing), s.name(5), s.tok(syntax.TokenSemicolon)),
		node(syntax.KindNamespaceDecl,
			s.tok(syntax.TokenNamespace), s.name(3), s.tok(syntax.TokenLBrace),
			node(syntax.KindInterfaceDecl,
				s.tok(syntax.TokenPublic), s.tok(syntax.TokenInterface), s.ident(),
				s.tok(syntax.TokenLBrace),
				node(syntax.KindPropertyDecl, s.typ(1), s.ident(), accessors(syntax.TokenGet)),
				node(syntax.KindMethodDecl, s.typ(1), s.ident(), params(), s.tok(syntax.TokenSemicolon)),
				s.tok(syntax.TokenRBrace)),
			node(syntax.KindClassDecl,
				s.tok(syntax.TokenPublic), s.tok(syntax.TokenSealed), s.tok(syntax.TokenClass), s.ident(),
				node(syntax.KindBaseList, s.tok(syntax.TokenColon), s.typ(1), s.tok(syntax.TokenComma), s.typ(1)),
				s.tok(syntax.TokenLBrace),
				node(syntax.KindFieldDecl,
					s.tok(syntax.TokenPrivate), s.tok(syntax.TokenReadonly), s.typ(1), s.ident(),
					s.tok(syntax.TokenAssign), s.expr(1), s.tok(syntax.TokenSemicolon)),
				node(syntax.KindPropertyDecl,
					s.tok(syntax.TokenPublic), s.typ(1), s.ident(), accessors(syntax.TokenGet, syntax.TokenSet)),
				node(syntax.KindConstructorDecl,
					s.tok(syntax.TokenPublic), s.ident(), params(),
					node(syntax.KindBlock,
						s.tok(syntax.TokenLBrace),
						node(syntax.KindExprStmt, s.expr(5), s.tok(syntax.TokenSemicolon)),
						s.tok(syntax.TokenRBrace))),
				node(syntax.KindMethodDecl,
					s.tok(syntax.TokenPublic), s.typ(1), s.ident(), params(),
					node(syntax.KindBlock,
						s.tok(syntax.TokenLBrace),
						node(syntax.KindForStmt,
							s.tok(syntax.TokenFor), s.tok(syntax.TokenLParen),
							s.expr(4), s.tok(syntax.TokenSemicolon),
							s.expr(3), s.tok(syntax.TokenSemicolon),
							s.expr(2), s.tok(syntax.TokenRParen),
							node(syntax.KindBlock,
								s.tok(syntax.TokenLBrace),
								node(syntax.KindIfStmt,
									s.tok(syntax.TokenIf), s.tok(syntax.TokenLParen), s.expr(5), s.tok(syntax.TokenRParen),
									node(syntax.KindExprStmt, s.expr(4), s.tok(syntax.TokenSemicolon)),
									node(syntax.KindElseClause,
										s.tok(syntax.TokenElse),
										node(syntax.KindBlock,
											s.tok(syntax.TokenLBrace),
											node(syntax.KindContinueStmt, s.tok(syntax.TokenContinue), s.tok(syntax.TokenSemicolon)),
											s.tok(syntax.TokenRBrace)))),
								s.tok(syntax.TokenRBrace))),
						node(syntax.KindReturnStmt, s.tok(syntax.TokenReturn), s.tok(syntax.TokenSemicolon)),
						s.tok(syntax.TokenRBrace))),
				s.tok(syntax.TokenRBrace)),
			node(syntax.KindEnumDecl,
				s.tok(syntax.TokenEnum), s.ident(), s.tok(syntax.TokenLBrace),
				node(syntax.KindEnumMember, s.ident()),
				s.tok(syntax.TokenComma),
				node(syntax.KindEnumMember, s.ident(), s.tok(syntax.TokenAssign), s.expr(1)),
				s.tok(syntax.TokenComma),
				s.tok(syntax.TokenRBrace)),
			s.tok(syntax.TokenRBrace)),
	)
}

// widgetRoot creates the graph of widgetSource without symbols.
func widgetRoot(t *testing.T) *Root {
	t.Helper()
	root, err := CreateFrom(widgetSyntax(t, widgetSource), nil)
	if err != nil {
		t.Fatalf("CreateFrom() error = %v", err)
	}
	return root
}

// emit builds n and returns its text.
func emit(t *testing.T, n Node) string {
	t.Helper()
	out, err := BuildSyntax(n)
	if err != nil {
		t.Fatalf("BuildSyntax() error = %v", err)
	}
	return syntax.Emit(out)
}

func widgetClass(t *testing.T, root *Root) *Class {
	t.Helper()
	ns := root.Namespaces()[0]
	for _, c := range ns.Classes() {
		if c.Name() == "Widget" {
			return c
		}
	}
	t.Fatalf("class Widget not found")
	return nil
}
