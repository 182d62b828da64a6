// Package syntax defines the concrete syntax tree exchanged between a
// language front end and the rdom document object model.
//
// # Overview
//
// A front end parses source text and hands over a tree of *Node values. The
// tree is full fidelity: every character of the source lives either in a
// token literal or in the trivia attached to a token, so Emit reproduces the
// original text byte for byte.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│  Front end  │────▶│ syntax.Node │────▶│  dom graph  │
//	│ (parse+sym) │     │  + trivia   │◀────│  (editable) │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │
//	                           ▼
//	                    ┌─────────────┐
//	                    │    Emit     │
//	                    └─────────────┘
//
// # Trivia
//
// Whitespace and comments are carried on tokens:
//
//	type Token struct {
//	    Kind     TokenKind
//	    Span     Span
//	    Literal  string // the token text
//	    Leading  string // trivia before the token
//	    Trailing string // trivia after the token
//	}
//
// Front ends may split trivia between Leading and Trailing however they
// like; the tree-sitter front end puts all inter-token text in Leading and
// the text after the last token on the Leading of the EOF token.
//
// # Shapes
//
// Interior nodes have a fixed shape that the dom factories rely on. Tokens
// are written by kind, nodes by Kind name, ? marks optional parts and *
// repetition:
//
//	CompilationUnit   UsingDirective* (NamespaceDecl | TypeDecl)* EOF
//	UsingDirective    using Name ;
//	NamespaceDecl     namespace Name { UsingDirective* (NamespaceDecl | TypeDecl)* }
//	ClassDecl         modifier* class Ident TypeParameterList? BaseList? { member* }
//	StructDecl        modifier* struct Ident TypeParameterList? BaseList? { member* }
//	InterfaceDecl     modifier* interface Ident TypeParameterList? BaseList? { member* }
//	EnumDecl          modifier* enum Ident BaseList? { (EnumMember (, EnumMember)* ,?)? }
//	EnumMember        Ident (= Expression)?
//	FieldDecl         modifier* Type Ident (= Expression)? ;
//	PropertyDecl      modifier* Type Ident AccessorList
//	MethodDecl        modifier* Type Ident TypeParameterList? ParameterList (Block | ;)
//	ConstructorDecl   modifier* Ident ParameterList Block
//	TypeParameterList < TypeParameter (, TypeParameter)* >
//	TypeParameter     Ident
//	BaseList          : Type (, Type)*
//	ParameterList     ( (Parameter (, Parameter)*)? )
//	Parameter         (ref | out | in | params | this)? Type Ident (= Expression)?
//	AccessorList      { token* }            opaque
//	Type, Name        token*                opaque
//	Expression        token*                opaque, classified by Expr
//
// Statements:
//
//	Block             { statement* }
//	ExprStmt          Expression ;
//	ReturnStmt        return Expression? ;
//	ThrowStmt         throw Expression? ;
//	BreakStmt         break ;
//	ContinueStmt      continue ;
//	EmptyStmt         ;
//	LocalDeclStmt     const? Type Ident (= Expression)? ;
//	IfStmt            if ( Expression ) body ElseClause?
//	ElseClause        else body
//	WhileStmt         while ( Expression ) body
//	DoStmt            do body while ( Expression ) ;
//	ForStmt           for ( Expression? ; Expression? ; Expression? ) body
//	ForEachStmt       foreach ( Type Ident in Expression ) body
//	TryStmt           try Block CatchClause* FinallyClause?
//	CatchClause       catch (( Type Ident? ))? Block
//	FinallyClause     finally Block
//
// where body is a Block or a single statement.
//
// Constructs a front end cannot map onto these shapes are handed over as
// KindUnknown nodes with Label set to the front end's own name, so that the
// dom layer can report them instead of silently dropping them.
//
// # Positions
//
// Span values identify nodes when looking up resolved symbols. Layout
// recomputes them from token text, which front ends call once the tree is
// complete and the build engine calls on regenerated trees.
package syntax
