package dom

import (
	"github.com/dhamidi/rdom/syntax"
	"github.com/tliron/commonlog"
)

// LanguageElement names a logical position in a construct where trivia can
// be captured and replayed.
type LanguageElement int

const (
	ElemNone LanguageElement = iota

	// Modifier keywords
	ElemPublic
	ElemPrivate
	ElemProtected
	ElemInternal
	ElemStatic
	ElemAbstract
	ElemSealed
	ElemVirtual
	ElemOverride
	ElemReadOnly
	ElemConst
	ElemPartial
	ElemAsync
	ElemExtern
	ElemNew
	ElemUnsafe
	ElemVolatile

	// Declaration keywords
	ElemNamespaceKeyword
	ElemUsingKeyword
	ElemClassKeyword
	ElemStructureKeyword
	ElemInterfaceKeyword
	ElemEnumKeyword

	ElemIdentifier
	ElemStartDelimiter
	ElemEndDelimiter
	ElemTypeParameterStart
	ElemTypeParameterEnd
	ElemTypeParameterSeparator
	ElemBaseListPrefix
	ElemBaseListSeparator
	ElemParameterStart
	ElemParameterEnd
	ElemParameterSeparator
	ElemParameterModifier
	ElemEqualsAssignment
	ElemEndOfStatement
	ElemEnumValueSeparator
	ElemConditionStart
	ElemConditionEnd
	ElemForSeparator

	// Statement keywords
	ElemIfKeyword
	ElemElseKeyword
	ElemWhileKeyword
	ElemDoKeyword
	ElemForKeyword
	ElemForEachKeyword
	ElemInKeyword
	ElemTryKeyword
	ElemCatchKeyword
	ElemFinallyKeyword
	ElemReturnKeyword
	ElemBreakKeyword
	ElemContinueKeyword
	ElemThrowKeyword

	// Accessor keywords
	ElemGetKeyword
	ElemSetKeyword

	ElemEndOfFile
)

var elementNames = map[LanguageElement]string{
	ElemNone:                   "None",
	ElemPublic:                 "Public",
	ElemPrivate:                "Private",
	ElemProtected:              "Protected",
	ElemInternal:               "Internal",
	ElemStatic:                 "Static",
	ElemAbstract:               "Abstract",
	ElemSealed:                 "Sealed",
	ElemVirtual:                "Virtual",
	ElemOverride:               "Override",
	ElemReadOnly:               "ReadOnly",
	ElemConst:                  "Const",
	ElemPartial:                "Partial",
	ElemAsync:                  "Async",
	ElemExtern:                 "Extern",
	ElemNew:                    "New",
	ElemUnsafe:                 "Unsafe",
	ElemVolatile:               "Volatile",
	ElemNamespaceKeyword:       "NamespaceKeyword",
	ElemUsingKeyword:           "UsingKeyword",
	ElemClassKeyword:           "ClassKeyword",
	ElemStructureKeyword:       "StructureKeyword",
	ElemInterfaceKeyword:       "InterfaceKeyword",
	ElemEnumKeyword:            "EnumKeyword",
	ElemIdentifier:             "Identifier",
	ElemStartDelimiter:         "StartDelimiter",
	ElemEndDelimiter:           "EndDelimiter",
	ElemTypeParameterStart:     "TypeParameterStart",
	ElemTypeParameterEnd:       "TypeParameterEnd",
	ElemTypeParameterSeparator: "TypeParameterSeparator",
	ElemBaseListPrefix:         "BaseListPrefix",
	ElemBaseListSeparator:      "BaseListSeparator",
	ElemParameterStart:         "ParameterStart",
	ElemParameterEnd:           "ParameterEnd",
	ElemParameterSeparator:     "ParameterSeparator",
	ElemParameterModifier:      "ParameterModifier",
	ElemEqualsAssignment:       "EqualsAssignment",
	ElemEndOfStatement:         "EndOfStatement",
	ElemEnumValueSeparator:     "EnumValueSeparator",
	ElemConditionStart:         "ConditionStart",
	ElemConditionEnd:           "ConditionEnd",
	ElemForSeparator:           "ForSeparator",
	ElemIfKeyword:              "IfKeyword",
	ElemElseKeyword:            "ElseKeyword",
	ElemWhileKeyword:           "WhileKeyword",
	ElemDoKeyword:              "DoKeyword",
	ElemForKeyword:             "ForKeyword",
	ElemForEachKeyword:         "ForEachKeyword",
	ElemInKeyword:              "InKeyword",
	ElemTryKeyword:             "TryKeyword",
	ElemCatchKeyword:           "CatchKeyword",
	ElemFinallyKeyword:         "FinallyKeyword",
	ElemReturnKeyword:          "ReturnKeyword",
	ElemBreakKeyword:           "BreakKeyword",
	ElemContinueKeyword:        "ContinueKeyword",
	ElemThrowKeyword:           "ThrowKeyword",
	ElemGetKeyword:             "GetKeyword",
	ElemSetKeyword:             "SetKeyword",
	ElemEndOfFile:              "EndOfFile",
}

func (e LanguageElement) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return "Unknown"
}

// Slot is one occurrence of a language element within a node. Separators
// repeat, so the Index tells the first comma from the second.
type Slot struct {
	Element LanguageElement
	Index   int
}

type Trivia struct {
	Leading  string
	Trailing string
}

// Whitespace holds the trivia captured for one node. The zero value is
// empty and ready to use.
type Whitespace struct {
	slots      map[Slot]Trivia
	leading    string
	hasLeading bool

	// first is the slot of the node's first token. Its leading trivia lives
	// in leading, so the slot replays with a default leading if the token
	// stops being first.
	first    Slot
	hasFirst bool
}

func (w *Whitespace) Get(slot Slot) (Trivia, bool) {
	t, ok := w.slots[slot]
	return t, ok
}

func (w *Whitespace) Set(slot Slot, t Trivia) {
	if w.slots == nil {
		w.slots = make(map[Slot]Trivia)
	}
	w.slots[slot] = t
}

// Leading returns the trivia captured before the node's first token.
func (w *Whitespace) Leading() (string, bool) {
	return w.leading, w.hasLeading
}

func (w *Whitespace) SetLeading(text string) {
	w.leading = text
	w.hasLeading = true
}

// Len returns the number of captured slots, not counting the node-level
// leading trivia.
func (w *Whitespace) Len() int {
	return len(w.slots)
}

// Clear drops everything captured, so the node builds with default
// formatting.
func (w *Whitespace) Clear() {
	*w = Whitespace{}
}

func (w *Whitespace) clone() Whitespace {
	c := *w
	if w.slots != nil {
		c.slots = make(map[Slot]Trivia, len(w.slots))
		for k, v := range w.slots {
			c.slots[k] = v
		}
	}
	return c
}

type lookupKey struct {
	token  syntax.TokenKind
	within syntax.Kind
}

// WhitespaceLookup maps the tokens of one node kind to language elements.
// A token is either direct (within is syntax.KindNone) or sits in a shell
// child of the given kind, such as the parameter list of a method.
//
// Lookups are built once and never mutated afterwards, so they can be shared
// by every node of a kind.
type WhitespaceLookup struct {
	elements map[lookupKey]LanguageElement
	shells   map[syntax.Kind]bool
}

func NewWhitespaceLookup() *WhitespaceLookup {
	return &WhitespaceLookup{
		elements: make(map[lookupKey]LanguageElement),
		shells:   make(map[syntax.Kind]bool),
	}
}

// Add maps a direct token of the node to element.
func (l *WhitespaceLookup) Add(element LanguageElement, token syntax.TokenKind) *WhitespaceLookup {
	return l.AddWithin(element, token, syntax.KindNone)
}

// AddWithin maps a token found in a direct child of kind within to element.
func (l *WhitespaceLookup) AddWithin(element LanguageElement, token syntax.TokenKind, within syntax.Kind) *WhitespaceLookup {
	l.elements[lookupKey{token, within}] = element
	if within != syntax.KindNone {
		l.shells[within] = true
	}
	return l
}

// AddRange copies every entry of other into l.
func (l *WhitespaceLookup) AddRange(other *WhitespaceLookup) *WhitespaceLookup {
	for k, v := range other.elements {
		l.elements[k] = v
	}
	for k := range other.shells {
		l.shells[k] = true
	}
	return l
}

func (l *WhitespaceLookup) Element(token syntax.TokenKind, within syntax.Kind) (LanguageElement, bool) {
	if l == nil {
		return ElemNone, false
	}
	e, ok := l.elements[lookupKey{token, within}]
	return e, ok
}

func (l *WhitespaceLookup) isShell(kind syntax.Kind) bool {
	return l != nil && l.shells[kind]
}

// modifierLookup covers every modifier keyword a declaration may carry.
func modifierLookup() *WhitespaceLookup {
	return NewWhitespaceLookup().
		Add(ElemPublic, syntax.TokenPublic).
		Add(ElemPrivate, syntax.TokenPrivate).
		Add(ElemProtected, syntax.TokenProtected).
		Add(ElemInternal, syntax.TokenInternal).
		Add(ElemStatic, syntax.TokenStatic).
		Add(ElemAbstract, syntax.TokenAbstract).
		Add(ElemSealed, syntax.TokenSealed).
		Add(ElemVirtual, syntax.TokenVirtual).
		Add(ElemOverride, syntax.TokenOverride).
		Add(ElemReadOnly, syntax.TokenReadonly).
		Add(ElemConst, syntax.TokenConst).
		Add(ElemPartial, syntax.TokenPartial).
		Add(ElemAsync, syntax.TokenAsync).
		Add(ElemExtern, syntax.TokenExtern).
		Add(ElemNew, syntax.TokenNew).
		Add(ElemUnsafe, syntax.TokenUnsafe).
		Add(ElemVolatile, syntax.TokenVolatile)
}

// captureWhitespace records the trivia of raw's own tokens on node. Tokens
// of DOM children are left for the children to capture.
func captureWhitespace(ws *Whitespace, raw *syntax.Node, lookup *WhitespaceLookup) {
	if raw == nil {
		return
	}
	first := raw.FirstToken()
	if first != nil {
		ws.SetLeading(first.Leading)
	}
	counts := make(map[LanguageElement]int)
	record := func(tok *syntax.Token, within syntax.Kind) {
		elem, ok := lookup.Element(tok.Kind, within)
		if !ok {
			return
		}
		slot := Slot{Element: elem, Index: counts[elem]}
		counts[elem]++
		trivia := Trivia{Leading: tok.Leading, Trailing: tok.Trailing}
		if tok == first {
			trivia.Leading = ""
			ws.first = slot
			ws.hasFirst = true
		}
		ws.Set(slot, trivia)
	}
	for _, child := range raw.Children {
		if child.IsToken() {
			record(child.Token, syntax.KindNone)
			continue
		}
		if !lookup.isShell(child.Kind) {
			continue
		}
		for _, inner := range child.Children {
			if inner.IsToken() {
				record(inner.Token, child.Kind)
			}
		}
	}
}

// TokenWriter produces the tokens of one node during build, replaying the
// node's captured trivia slot by slot.
type TokenWriter struct {
	node   Node
	ws     *Whitespace
	lookup *WhitespaceLookup
	log    commonlog.Logger
	counts map[LanguageElement]int
}

func newTokenWriter(n Node, lookup *WhitespaceLookup, log commonlog.Logger) *TokenWriter {
	return &TokenWriter{
		node:   n,
		ws:     n.Whitespace(),
		lookup: lookup,
		log:    log,
		counts: make(map[LanguageElement]int),
	}
}

// Token returns a token of the given kind. An empty literal means the
// kind's canonical text. def is used when no trivia was captured for the
// token's slot.
func (w *TokenWriter) Token(within syntax.Kind, kind syntax.TokenKind, literal string, def Trivia) *syntax.Node {
	if literal == "" {
		literal = kind.Text()
	}
	tok := syntax.NewToken(kind, literal)
	tok.Token.Leading = def.Leading
	tok.Token.Trailing = def.Trailing

	elem, ok := w.lookup.Element(kind, within)
	if !ok {
		return tok
	}
	slot := Slot{Element: elem, Index: w.counts[elem]}
	w.counts[elem]++
	captured, ok := w.ws.Get(slot)
	if !ok {
		if w.ws.Len() > 0 {
			w.log.Debugf("%s %q: no trivia captured for %s #%d", w.node.Kind(), w.node.Name(), elem, slot.Index)
		}
		return tok
	}
	if !(w.ws.hasFirst && w.ws.first == slot) {
		tok.Token.Leading = captured.Leading
	}
	tok.Token.Trailing = captured.Trailing
	return tok
}

// skip consumes the slot of a token that is replayed without the writer.
func (w *TokenWriter) skip(within syntax.Kind, kind syntax.TokenKind) {
	if elem, ok := w.lookup.Element(kind, within); ok {
		w.counts[elem]++
	}
}
