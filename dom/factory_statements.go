package dom

import (
	"sync"

	"github.com/dhamidi/rdom/syntax"
)

func keywordStatementLookup(element LanguageElement, keyword syntax.TokenKind) func() *WhitespaceLookup {
	return sync.OnceValue(func() *WhitespaceLookup {
		return NewWhitespaceLookup().
			Add(element, keyword).
			Add(ElemEndOfStatement, syntax.TokenSemicolon)
	})
}

// conditionLookup covers statements of the form keyword ( condition ) body.
func conditionLookup(element LanguageElement, keyword syntax.TokenKind) func() *WhitespaceLookup {
	return sync.OnceValue(func() *WhitespaceLookup {
		return NewWhitespaceLookup().
			Add(element, keyword).
			Add(ElemConditionStart, syntax.TokenLParen).
			Add(ElemConditionEnd, syntax.TokenRParen).
			AddRange(blockLookup())
	})
}

var (
	returnLookup   = keywordStatementLookup(ElemReturnKeyword, syntax.TokenReturn)
	throwLookup    = keywordStatementLookup(ElemThrowKeyword, syntax.TokenThrow)
	breakLookup    = keywordStatementLookup(ElemBreakKeyword, syntax.TokenBreak)
	continueLookup = keywordStatementLookup(ElemContinueKeyword, syntax.TokenContinue)
	ifLookup       = conditionLookup(ElemIfKeyword, syntax.TokenIf)
	whileLookup    = conditionLookup(ElemWhileKeyword, syntax.TokenWhile)
)

var statementBlockLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemStartDelimiter, syntax.TokenLBrace).
		Add(ElemEndDelimiter, syntax.TokenRBrace)
})

var endOfStatementLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemEndOfStatement, syntax.TokenSemicolon)
})

var declarationLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemConst, syntax.TokenConst).
		Add(ElemIdentifier, syntax.TokenIdent).
		Add(ElemEqualsAssignment, syntax.TokenAssign).
		Add(ElemEndOfStatement, syntax.TokenSemicolon)
})

var elseLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemElseKeyword, syntax.TokenElse).
		AddRange(blockLookup())
})

var doLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemDoKeyword, syntax.TokenDo).
		Add(ElemWhileKeyword, syntax.TokenWhile).
		Add(ElemConditionStart, syntax.TokenLParen).
		Add(ElemConditionEnd, syntax.TokenRParen).
		Add(ElemEndOfStatement, syntax.TokenSemicolon).
		AddRange(blockLookup())
})

var forLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemForKeyword, syntax.TokenFor).
		Add(ElemConditionStart, syntax.TokenLParen).
		Add(ElemConditionEnd, syntax.TokenRParen).
		Add(ElemForSeparator, syntax.TokenSemicolon).
		AddRange(blockLookup())
})

var forEachLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemForEachKeyword, syntax.TokenForeach).
		Add(ElemConditionStart, syntax.TokenLParen).
		Add(ElemConditionEnd, syntax.TokenRParen).
		Add(ElemIdentifier, syntax.TokenIdent).
		Add(ElemInKeyword, syntax.TokenIn).
		AddRange(blockLookup())
})

var tryLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemTryKeyword, syntax.TokenTry).
		AddRange(blockLookup())
})

var catchLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemCatchKeyword, syntax.TokenCatch).
		Add(ElemConditionStart, syntax.TokenLParen).
		Add(ElemConditionEnd, syntax.TokenRParen).
		Add(ElemIdentifier, syntax.TokenIdent).
		AddRange(blockLookup())
})

var finallyLookup = sync.OnceValue(func() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemFinallyKeyword, syntax.TokenFinally).
		AddRange(blockLookup())
})

func statementFactories() []Factory {
	return []Factory{
		{syntax.KindBlock, KindBlock, statementBlockLookup, createBlock, buildBlock},
		{syntax.KindExprStmt, KindExpressionStatement, endOfStatementLookup, createExpressionStatement, buildExpressionStatement},
		{syntax.KindReturnStmt, KindReturn, returnLookup, createReturn, buildReturn},
		{syntax.KindThrowStmt, KindThrow, throwLookup, createThrow, buildThrow},
		{syntax.KindBreakStmt, KindBreak, breakLookup, createBreak, buildBreak},
		{syntax.KindContinueStmt, KindContinue, continueLookup, createContinue, buildContinue},
		{syntax.KindEmptyStmt, KindEmpty, endOfStatementLookup, createEmpty, buildEmpty},
		{syntax.KindLocalDeclStmt, KindDeclaration, declarationLookup, createDeclaration, buildDeclaration},
		{syntax.KindIfStmt, KindIf, ifLookup, createIf, buildIf},
		{syntax.KindElseClause, KindElse, elseLookup, createElse, buildElse},
		{syntax.KindWhileStmt, KindWhile, whileLookup, createWhile, buildWhile},
		{syntax.KindDoStmt, KindDo, doLookup, createDo, buildDo},
		{syntax.KindForStmt, KindFor, forLookup, createFor, buildFor},
		{syntax.KindForEachStmt, KindForEach, forEachLookup, createForEach, buildForEach},
		{syntax.KindTryStmt, KindTry, tryLookup, createTry, buildTry},
		{syntax.KindCatchClause, KindCatch, catchLookup, createCatch, buildCatch},
		{syntax.KindFinallyClause, KindFinally, finallyLookup, createFinally, buildFinally},
		{syntax.KindExpression, KindExpression, nil, createExpression, buildExpression},
	}
}

func createBlock(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	b := NewBlock()
	if err := createStatements(cx, b, &b.statementBlock, raw); err != nil {
		return nil, err
	}
	return b, nil
}

func buildBlock(bx *BuildContext, n Node) (*syntax.Node, error) {
	b := n.(*Block)
	w := bx.Writer(b)
	out := syntax.NewNode(syntax.KindBlock, w.Token(syntax.KindNone, syntax.TokenLBrace, "", noSpace))
	for _, s := range b.statements.items {
		built, err := bx.BuildMember(s, bx.LineStart(1))
		if err != nil {
			return nil, err
		}
		out.AddChild(built)
	}
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenRBrace, "", Trivia{Leading: bx.LineStart(0)}))
	return out, nil
}

func createExpressionStatement(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	s := &ExpressionStatement{}
	e, err := cx.Expression(raw.FirstChildOfKind(syntax.KindExpression), s)
	if err != nil {
		return nil, err
	}
	s.SetExpression(e)
	return s, nil
}

func buildExpressionStatement(bx *BuildContext, n Node) (*syntax.Node, error) {
	s := n.(*ExpressionStatement)
	if s.expr == nil {
		return nil, invariant(s, "expression statement without an expression")
	}
	w := bx.Writer(s)
	e, err := bx.Expression(s.expr, "")
	if err != nil {
		return nil, err
	}
	return syntax.NewNode(syntax.KindExprStmt, e,
		w.Token(syntax.KindNone, syntax.TokenSemicolon, "", noSpace)), nil
}

// keywordStatement builds keyword value? ; for return and throw.
func keywordStatement(bx *BuildContext, n Node, kind syntax.Kind, keyword syntax.TokenKind, value *Expression) (*syntax.Node, error) {
	w := bx.Writer(n)
	out := syntax.NewNode(kind, w.Token(syntax.KindNone, keyword, "", noSpace))
	e, err := bx.Expression(value, " ")
	if err != nil {
		return nil, err
	}
	out.AddChild(e)
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenSemicolon, "", noSpace))
	return out, nil
}

func createReturn(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	r := &Return{}
	e, err := cx.Expression(raw.FirstChildOfKind(syntax.KindExpression), r)
	if err != nil {
		return nil, err
	}
	r.SetValue(e)
	return r, nil
}

func buildReturn(bx *BuildContext, n Node) (*syntax.Node, error) {
	r := n.(*Return)
	return keywordStatement(bx, r, syntax.KindReturnStmt, syntax.TokenReturn, r.value)
}

func createThrow(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	t := &Throw{}
	e, err := cx.Expression(raw.FirstChildOfKind(syntax.KindExpression), t)
	if err != nil {
		return nil, err
	}
	t.SetValue(e)
	return t, nil
}

func buildThrow(bx *BuildContext, n Node) (*syntax.Node, error) {
	t := n.(*Throw)
	return keywordStatement(bx, t, syntax.KindThrowStmt, syntax.TokenThrow, t.value)
}

func createBreak(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	return &Break{}, nil
}

func buildBreak(bx *BuildContext, n Node) (*syntax.Node, error) {
	return keywordStatement(bx, n, syntax.KindBreakStmt, syntax.TokenBreak, nil)
}

func createContinue(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	return &Continue{}, nil
}

func buildContinue(bx *BuildContext, n Node) (*syntax.Node, error) {
	return keywordStatement(bx, n, syntax.KindContinueStmt, syntax.TokenContinue, nil)
}

func createEmpty(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	return &Empty{}, nil
}

func buildEmpty(bx *BuildContext, n Node) (*syntax.Node, error) {
	w := bx.Writer(n)
	return syntax.NewNode(syntax.KindEmptyStmt, w.Token(syntax.KindNone, syntax.TokenSemicolon, "", noSpace)), nil
}

func createDeclaration(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	d := &Declaration{}
	d.name = identifier(raw)
	d.isConst = raw.FirstTokenOf(syntax.TokenConst) != nil
	d.typ = cx.Type(raw.FirstChildOfKind(syntax.KindType))
	e, err := cx.Expression(raw.FirstChildOfKind(syntax.KindExpression), d)
	if err != nil {
		return nil, err
	}
	d.SetInitializer(e)
	return d, nil
}

func buildDeclaration(bx *BuildContext, n Node) (*syntax.Node, error) {
	d := n.(*Declaration)
	if d.name == "" {
		return nil, invariant(d, "local declaration without a name")
	}
	if d.typ == nil {
		return nil, invariant(d, "local declaration without a type")
	}
	w := bx.Writer(d)
	out := syntax.NewNode(syntax.KindLocalDeclStmt)
	if d.isConst {
		out.AddChild(w.Token(syntax.KindNone, syntax.TokenConst, "", noSpace))
	}
	out.AddChild(bx.Type(d, d.typ, " "))
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenIdent, d.name, space))
	if d.initializer != nil {
		out.AddChild(w.Token(syntax.KindNone, syntax.TokenAssign, "", space))
		e, err := bx.Expression(d.initializer, " ")
		if err != nil {
			return nil, err
		}
		out.AddChild(e)
	}
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenSemicolon, "", noSpace))
	return out, nil
}

// condition returns the expression between the parentheses of raw.
func condition(raw *syntax.Node) *syntax.Node {
	inParens := false
	for _, child := range raw.Children {
		switch {
		case child.IsTokenOf(syntax.TokenLParen):
			inParens = true
		case child.IsTokenOf(syntax.TokenRParen):
			inParens = false
		case inParens && child.Kind == syntax.KindExpression:
			return child
		}
	}
	return nil
}

// conditionSyntax writes ( condition ) with the owner's slots.
func conditionSyntax(bx *BuildContext, w *TokenWriter, cond *Expression) ([]*syntax.Node, error) {
	e, err := bx.Expression(cond, "")
	if err != nil {
		return nil, err
	}
	return []*syntax.Node{
		w.Token(syntax.KindNone, syntax.TokenLParen, "", space),
		e,
		w.Token(syntax.KindNone, syntax.TokenRParen, "", noSpace),
	}, nil
}

func createIf(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	s := NewIf(nil)
	cond, err := cx.Expression(condition(raw), s)
	if err != nil {
		return nil, err
	}
	s.SetCondition(cond)
	if err := createBody(cx, s, &s.statementBlock, bodyOf(raw)); err != nil {
		return nil, err
	}
	if clause := raw.FirstChildOfKind(syntax.KindElseClause); clause != nil {
		e, err := createAs[*Else](cx, clause, s)
		if err != nil {
			return nil, err
		}
		s.SetElse(e)
	}
	return s, nil
}

func buildIf(bx *BuildContext, n Node) (*syntax.Node, error) {
	s := n.(*If)
	if s.condition == nil {
		return nil, invariant(s, "if statement without a condition")
	}
	w := bx.Writer(s)
	out := syntax.NewNode(syntax.KindIfStmt, w.Token(syntax.KindNone, syntax.TokenIf, "", noSpace))
	cond, err := conditionSyntax(bx, w, s.condition)
	if err != nil {
		return nil, err
	}
	out.Children = append(out.Children, cond...)
	body, err := bx.body(w, &s.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	if s.elseClause != nil {
		e, err := bx.BuildInline(s.elseClause, bx.LineStart(0))
		if err != nil {
			return nil, err
		}
		out.AddChild(e)
	}
	return out, nil
}

func createElse(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	e := NewElse()
	if err := createBody(cx, e, &e.statementBlock, bodyOf(raw)); err != nil {
		return nil, err
	}
	return e, nil
}

func buildElse(bx *BuildContext, n Node) (*syntax.Node, error) {
	e := n.(*Else)
	w := bx.Writer(e)
	out := syntax.NewNode(syntax.KindElseClause, w.Token(syntax.KindNone, syntax.TokenElse, "", noSpace))
	if chained := e.ElseIf(); chained != nil {
		built, err := bx.BuildInline(chained, " ")
		if err != nil {
			return nil, err
		}
		out.AddChild(built)
		return out, nil
	}
	body, err := bx.body(w, &e.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	return out, nil
}

func createWhile(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	s := NewWhile(nil)
	cond, err := cx.Expression(condition(raw), s)
	if err != nil {
		return nil, err
	}
	s.SetCondition(cond)
	if err := createBody(cx, s, &s.statementBlock, bodyOf(raw)); err != nil {
		return nil, err
	}
	return s, nil
}

func buildWhile(bx *BuildContext, n Node) (*syntax.Node, error) {
	s := n.(*While)
	if s.condition == nil {
		return nil, invariant(s, "while loop without a condition")
	}
	w := bx.Writer(s)
	out := syntax.NewNode(syntax.KindWhileStmt, w.Token(syntax.KindNone, syntax.TokenWhile, "", noSpace))
	cond, err := conditionSyntax(bx, w, s.condition)
	if err != nil {
		return nil, err
	}
	out.Children = append(out.Children, cond...)
	body, err := bx.body(w, &s.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	return out, nil
}

func createDo(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	s := NewDo(nil)
	cond, err := cx.Expression(condition(raw), s)
	if err != nil {
		return nil, err
	}
	s.SetCondition(cond)
	if err := createBody(cx, s, &s.statementBlock, bodyOf(raw)); err != nil {
		return nil, err
	}
	return s, nil
}

func buildDo(bx *BuildContext, n Node) (*syntax.Node, error) {
	s := n.(*Do)
	if s.condition == nil {
		return nil, invariant(s, "do loop without a condition")
	}
	w := bx.Writer(s)
	out := syntax.NewNode(syntax.KindDoStmt, w.Token(syntax.KindNone, syntax.TokenDo, "", noSpace))
	body, err := bx.body(w, &s.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenWhile, "", space))
	cond, err := conditionSyntax(bx, w, s.condition)
	if err != nil {
		return nil, err
	}
	out.Children = append(out.Children, cond...)
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenSemicolon, "", noSpace))
	return out, nil
}

func createFor(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	s := NewFor(nil, nil, nil)
	var header [3]*syntax.Node
	part, inParens := 0, false
	for _, child := range raw.Children {
		switch {
		case child.IsTokenOf(syntax.TokenLParen) && !inParens && part == 0:
			inParens = true
		case child.IsTokenOf(syntax.TokenRParen) && inParens:
			inParens = false
		case inParens && child.IsTokenOf(syntax.TokenSemicolon):
			part++
		case inParens && child.Kind == syntax.KindExpression && part < len(header):
			header[part] = child
		}
	}
	setters := []func(*Expression){s.SetInitializer, s.SetCondition, s.SetIncrementor}
	for i, h := range header {
		e, err := cx.Expression(h, s)
		if err != nil {
			return nil, err
		}
		setters[i](e)
	}
	if err := createBody(cx, s, &s.statementBlock, bodyOf(raw)); err != nil {
		return nil, err
	}
	return s, nil
}

func buildFor(bx *BuildContext, n Node) (*syntax.Node, error) {
	s := n.(*For)
	w := bx.Writer(s)
	out := syntax.NewNode(syntax.KindForStmt,
		w.Token(syntax.KindNone, syntax.TokenFor, "", noSpace),
		w.Token(syntax.KindNone, syntax.TokenLParen, "", space))
	for i, e := range []*Expression{s.initializer, s.condition, s.incrementor} {
		leading := " "
		if i == 0 {
			leading = ""
		} else {
			out.AddChild(w.Token(syntax.KindNone, syntax.TokenSemicolon, "", noSpace))
		}
		built, err := bx.Expression(e, leading)
		if err != nil {
			return nil, err
		}
		out.AddChild(built)
	}
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenRParen, "", noSpace))
	body, err := bx.body(w, &s.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	return out, nil
}

func createForEach(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	s := NewForEach(identifier(raw), nil, nil)
	s.variableType = cx.Type(raw.FirstChildOfKind(syntax.KindType))
	coll, err := cx.Expression(condition(raw), s)
	if err != nil {
		return nil, err
	}
	s.SetCondition(coll)
	if err := createBody(cx, s, &s.statementBlock, bodyOf(raw)); err != nil {
		return nil, err
	}
	return s, nil
}

func buildForEach(bx *BuildContext, n Node) (*syntax.Node, error) {
	s := n.(*ForEach)
	if s.name == "" || s.variableType == nil {
		return nil, invariant(s, "foreach loop without an iteration variable")
	}
	if s.condition == nil {
		return nil, invariant(s, "foreach loop without a collection")
	}
	w := bx.Writer(s)
	out := syntax.NewNode(syntax.KindForEachStmt,
		w.Token(syntax.KindNone, syntax.TokenForeach, "", noSpace),
		w.Token(syntax.KindNone, syntax.TokenLParen, "", space),
		bx.Type(s, s.variableType, ""),
		w.Token(syntax.KindNone, syntax.TokenIdent, s.name, space),
		w.Token(syntax.KindNone, syntax.TokenIn, "", space))
	coll, err := bx.Expression(s.condition, " ")
	if err != nil {
		return nil, err
	}
	out.AddChild(coll)
	out.AddChild(w.Token(syntax.KindNone, syntax.TokenRParen, "", noSpace))
	body, err := bx.body(w, &s.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	return out, nil
}

func createTry(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	t := NewTry()
	body := raw.FirstChildOfKind(syntax.KindBlock)
	if err := createBody(cx, t, &t.statementBlock, body); err != nil {
		return nil, err
	}
	for _, child := range raw.Children {
		if child.IsToken() || child == body {
			continue
		}
		n, err := cx.Create(child, t)
		if err != nil {
			return nil, err
		}
		switch clause := n.(type) {
		case *Catch:
			if t.finally != nil {
				return nil, &UnsupportedError{SyntaxKind: child.Kind, Label: "catch after finally"}
			}
			t.AddCatch(clause)
		case *Finally:
			if t.finally != nil {
				return nil, &UnsupportedError{SyntaxKind: child.Kind, Label: "second finally"}
			}
			t.SetFinally(clause)
		default:
			return nil, &UnsupportedError{SyntaxKind: child.Kind, Label: n.Kind().String() + " inside Try"}
		}
	}
	return t, nil
}

func buildTry(bx *BuildContext, n Node) (*syntax.Node, error) {
	t := n.(*Try)
	if t.catches.len() == 0 && t.finally == nil {
		return nil, invariant(t, "try statement without catch or finally")
	}
	w := bx.Writer(t)
	out := syntax.NewNode(syntax.KindTryStmt, w.Token(syntax.KindNone, syntax.TokenTry, "", noSpace))
	body, err := bx.block(w, &t.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	for _, c := range t.catches.items {
		built, err := bx.BuildInline(c, bx.LineStart(0))
		if err != nil {
			return nil, err
		}
		out.AddChild(built)
	}
	if t.finally != nil {
		built, err := bx.BuildInline(t.finally, bx.LineStart(0))
		if err != nil {
			return nil, err
		}
		out.AddChild(built)
	}
	return out, nil
}

func createCatch(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	c := NewCatch(cx.Type(raw.FirstChildOfKind(syntax.KindType)), identifier(raw))
	if err := createBody(cx, c, &c.statementBlock, raw.FirstChildOfKind(syntax.KindBlock)); err != nil {
		return nil, err
	}
	return c, nil
}

func buildCatch(bx *BuildContext, n Node) (*syntax.Node, error) {
	c := n.(*Catch)
	if c.exceptionType == nil && c.name != "" {
		return nil, invariant(c, "catch variable without an exception type")
	}
	w := bx.Writer(c)
	out := syntax.NewNode(syntax.KindCatchClause, w.Token(syntax.KindNone, syntax.TokenCatch, "", noSpace))
	if c.exceptionType != nil {
		out.AddChild(w.Token(syntax.KindNone, syntax.TokenLParen, "", space))
		out.AddChild(bx.Type(c, c.exceptionType, ""))
		if c.name != "" {
			out.AddChild(w.Token(syntax.KindNone, syntax.TokenIdent, c.name, space))
		}
		out.AddChild(w.Token(syntax.KindNone, syntax.TokenRParen, "", noSpace))
	}
	body, err := bx.block(w, &c.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	return out, nil
}

func createFinally(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	f := NewFinally()
	if err := createBody(cx, f, &f.statementBlock, raw.FirstChildOfKind(syntax.KindBlock)); err != nil {
		return nil, err
	}
	return f, nil
}

func buildFinally(bx *BuildContext, n Node) (*syntax.Node, error) {
	f := n.(*Finally)
	w := bx.Writer(f)
	out := syntax.NewNode(syntax.KindFinallyClause, w.Token(syntax.KindNone, syntax.TokenFinally, "", noSpace))
	body, err := bx.block(w, &f.statementBlock)
	if err != nil {
		return nil, err
	}
	out.AddChild(body)
	return out, nil
}

func createExpression(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
	return NewExpression(raw.Text(), raw.Expr), nil
}

// buildExpression replays the written tokens while the text is unchanged.
func buildExpression(bx *BuildContext, n Node) (*syntax.Node, error) {
	e := n.(*Expression)
	if raw := e.RawItem(); raw != nil && raw.Text() == e.text {
		out := raw.Clone()
		out.Expr = e.kind
		return out, nil
	}
	if e.text == "" {
		return nil, invariant(e, "empty expression")
	}
	out := syntax.NewNode(syntax.KindExpression, syntax.NewToken(syntax.TokenText, e.text))
	out.Expr = e.kind
	return out, nil
}
