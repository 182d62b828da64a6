package syntax

import "strconv"

type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

type Span struct {
	Start Position
	End   Position
}

func (s Span) IsZero() bool {
	return s == Span{}
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenText

	// Declaration keywords
	TokenNamespace
	TokenUsing
	TokenClass
	TokenStruct
	TokenInterface
	TokenEnum

	// Modifiers
	TokenPublic
	TokenPrivate
	TokenProtected
	TokenInternal
	TokenStatic
	TokenAbstract
	TokenSealed
	TokenVirtual
	TokenOverride
	TokenReadonly
	TokenConst
	TokenPartial
	TokenAsync
	TokenExtern
	TokenNew
	TokenUnsafe
	TokenVolatile

	// Parameter modifiers
	TokenRef
	TokenOut
	TokenParams
	TokenThis

	// Accessors
	TokenGet
	TokenSet

	// Statement keywords
	TokenIf
	TokenElse
	TokenWhile
	TokenDo
	TokenFor
	TokenForeach
	TokenIn
	TokenTry
	TokenCatch
	TokenFinally
	TokenReturn
	TokenBreak
	TokenContinue
	TokenThrow

	// Punctuation
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen
	TokenLT
	TokenGT
	TokenComma
	TokenColon
	TokenSemicolon
	TokenAssign
	TokenDot
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:       "EOF",
	TokenIdent:     "Identifier",
	TokenText:      "Text",
	TokenNamespace: "namespace",
	TokenUsing:     "using",
	TokenClass:     "class",
	TokenStruct:    "struct",
	TokenInterface: "interface",
	TokenEnum:      "enum",
	TokenPublic:    "public",
	TokenPrivate:   "private",
	TokenProtected: "protected",
	TokenInternal:  "internal",
	TokenStatic:    "static",
	TokenAbstract:  "abstract",
	TokenSealed:    "sealed",
	TokenVirtual:   "virtual",
	TokenOverride:  "override",
	TokenReadonly:  "readonly",
	TokenConst:     "const",
	TokenPartial:   "partial",
	TokenAsync:     "async",
	TokenExtern:    "extern",
	TokenNew:       "new",
	TokenUnsafe:    "unsafe",
	TokenVolatile:  "volatile",
	TokenRef:       "ref",
	TokenOut:       "out",
	TokenParams:    "params",
	TokenThis:      "this",
	TokenGet:       "get",
	TokenSet:       "set",
	TokenIf:        "if",
	TokenElse:      "else",
	TokenWhile:     "while",
	TokenDo:        "do",
	TokenFor:       "for",
	TokenForeach:   "foreach",
	TokenIn:        "in",
	TokenTry:       "try",
	TokenCatch:     "catch",
	TokenFinally:   "finally",
	TokenReturn:    "return",
	TokenBreak:     "break",
	TokenContinue:  "continue",
	TokenThrow:     "throw",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLT:        "<",
	TokenGT:        ">",
	TokenComma:     ",",
	TokenColon:     ":",
	TokenSemicolon: ";",
	TokenAssign:    "=",
	TokenDot:       ".",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Text returns the canonical source text of a keyword or punctuation kind,
// or "" for kinds whose text varies (identifiers, opaque text, EOF).
func (k TokenKind) Text() string {
	switch k {
	case TokenEOF, TokenIdent, TokenText:
		return ""
	}
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return ""
}

// Token is a single lexical element together with the trivia (whitespace
// and comments) attached to either side of it. Emitting Leading, Literal and
// Trailing for every token of a tree in order reproduces the source.
type Token struct {
	Kind     TokenKind
	Span     Span
	Literal  string
	Leading  string
	Trailing string
}

// Text returns the full text of the token including its trivia.
func (t *Token) Text() string {
	return t.Leading + t.Literal + t.Trailing
}

var keywords = map[string]TokenKind{
	"namespace": TokenNamespace,
	"using":     TokenUsing,
	"class":     TokenClass,
	"struct":    TokenStruct,
	"interface": TokenInterface,
	"enum":      TokenEnum,
	"public":    TokenPublic,
	"private":   TokenPrivate,
	"protected": TokenProtected,
	"internal":  TokenInternal,
	"static":    TokenStatic,
	"abstract":  TokenAbstract,
	"sealed":    TokenSealed,
	"virtual":   TokenVirtual,
	"override":  TokenOverride,
	"readonly":  TokenReadonly,
	"const":     TokenConst,
	"partial":   TokenPartial,
	"async":     TokenAsync,
	"extern":    TokenExtern,
	"new":       TokenNew,
	"unsafe":    TokenUnsafe,
	"volatile":  TokenVolatile,
	"ref":       TokenRef,
	"out":       TokenOut,
	"params":    TokenParams,
	"this":      TokenThis,
	"get":       TokenGet,
	"set":       TokenSet,
	"if":        TokenIf,
	"else":      TokenElse,
	"while":     TokenWhile,
	"do":        TokenDo,
	"for":       TokenFor,
	"foreach":   TokenForeach,
	"in":        TokenIn,
	"try":       TokenTry,
	"catch":     TokenCatch,
	"finally":   TokenFinally,
	"return":    TokenReturn,
	"break":     TokenBreak,
	"continue":  TokenContinue,
	"throw":     TokenThrow,
}

var punctuation = map[string]TokenKind{
	"{": TokenLBrace,
	"}": TokenRBrace,
	"(": TokenLParen,
	")": TokenRParen,
	"<": TokenLT,
	">": TokenGT,
	",": TokenComma,
	":": TokenColon,
	";": TokenSemicolon,
	"=": TokenAssign,
	".": TokenDot,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

// LookupPunct returns the punctuation kind for text, or TokenText when the
// text is not one of the structural punctuation marks.
func LookupPunct(text string) TokenKind {
	if kind, ok := punctuation[text]; ok {
		return kind
	}
	return TokenText
}
