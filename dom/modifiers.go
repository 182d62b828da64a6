package dom

import (
	"strings"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
)

// Modifier is a set of declaration modifiers other than accessibility.
type Modifier uint32

const (
	ModStatic Modifier = 1 << iota
	ModAbstract
	ModSealed
	ModVirtual
	ModOverride
	ModReadOnly
	ModConst
	ModPartial
	ModAsync
	ModExtern
	ModNew
	ModUnsafe
	ModVolatile
)

// modifierTokens is the canonical emission order for synthesized modifiers.
var modifierTokens = []struct {
	mod   Modifier
	token syntax.TokenKind
}{
	{ModNew, syntax.TokenNew},
	{ModStatic, syntax.TokenStatic},
	{ModConst, syntax.TokenConst},
	{ModAbstract, syntax.TokenAbstract},
	{ModSealed, syntax.TokenSealed},
	{ModVirtual, syntax.TokenVirtual},
	{ModOverride, syntax.TokenOverride},
	{ModReadOnly, syntax.TokenReadonly},
	{ModExtern, syntax.TokenExtern},
	{ModUnsafe, syntax.TokenUnsafe},
	{ModVolatile, syntax.TokenVolatile},
	{ModAsync, syntax.TokenAsync},
	{ModPartial, syntax.TokenPartial},
}

func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

func (m Modifier) String() string {
	var words []string
	for _, mt := range modifierTokens {
		if m.Has(mt.mod) {
			words = append(words, mt.token.Text())
		}
	}
	return strings.Join(words, " ")
}

func modifierOf(token syntax.TokenKind) (Modifier, bool) {
	for _, mt := range modifierTokens {
		if mt.token == token {
			return mt.mod, true
		}
	}
	return 0, false
}

func accessTokens(a symbol.Accessibility) []syntax.TokenKind {
	switch a {
	case symbol.Public:
		return []syntax.TokenKind{syntax.TokenPublic}
	case symbol.Private:
		return []syntax.TokenKind{syntax.TokenPrivate}
	case symbol.Protected:
		return []syntax.TokenKind{syntax.TokenProtected}
	case symbol.Internal:
		return []syntax.TokenKind{syntax.TokenInternal}
	case symbol.ProtectedOrInternal:
		return []syntax.TokenKind{syntax.TokenProtected, syntax.TokenInternal}
	case symbol.ProtectedAndInternal:
		return []syntax.TokenKind{syntax.TokenPrivate, syntax.TokenProtected}
	}
	return nil
}

func isAccessToken(kind syntax.TokenKind) bool {
	switch kind {
	case syntax.TokenPublic, syntax.TokenPrivate, syntax.TokenProtected, syntax.TokenInternal:
		return true
	}
	return false
}

func accessFromTokens(seen map[syntax.TokenKind]bool) symbol.Accessibility {
	switch {
	case seen[syntax.TokenProtected] && seen[syntax.TokenInternal]:
		return symbol.ProtectedOrInternal
	case seen[syntax.TokenPrivate] && seen[syntax.TokenProtected]:
		return symbol.ProtectedAndInternal
	case seen[syntax.TokenPublic]:
		return symbol.Public
	case seen[syntax.TokenPrivate]:
		return symbol.Private
	case seen[syntax.TokenProtected]:
		return symbol.Protected
	case seen[syntax.TokenInternal]:
		return symbol.Internal
	}
	return symbol.NotApplicable
}

// declaration carries what every declaration knows about accessibility and
// modifiers. The written values and the semantic values are kept apart: a
// symbol may report a member as private or static although the source never
// says so, and rebuilding must not add those words.
type declaration struct {
	access         symbol.Accessibility
	declaredAccess symbol.Accessibility
	mods           Modifier
	implicit       Modifier
	order          []syntax.TokenKind
}

// AccessModifier is the semantic accessibility, from the symbol when one
// was resolved.
func (d *declaration) AccessModifier() symbol.Accessibility { return d.access }

// DeclaredAccessModifier is the accessibility as written in source.
func (d *declaration) DeclaredAccessModifier() symbol.Accessibility { return d.declaredAccess }

// SetAccessModifier changes both the semantic and the written accessibility.
func (d *declaration) SetAccessModifier(a symbol.Accessibility) {
	d.access = a
	d.declaredAccess = a
}

func (d *declaration) Modifiers() Modifier { return d.mods }

func (d *declaration) HasModifier(mod Modifier) bool { return d.mods.Has(mod) }

// SetModifier adds or removes mod. Added modifiers are always written.
func (d *declaration) SetModifier(mod Modifier, on bool) {
	if on {
		d.mods |= mod
		d.implicit &^= mod
		return
	}
	d.mods &^= mod
	d.implicit &^= mod
}

func (d *declaration) IsStatic() bool   { return d.mods.Has(ModStatic) }
func (d *declaration) IsAbstract() bool { return d.mods.Has(ModAbstract) }
func (d *declaration) IsSealed() bool   { return d.mods.Has(ModSealed) }

func (d *declaration) copyFrom(o *declaration) {
	*d = *o
	d.order = append([]syntax.TokenKind(nil), o.order...)
}

// readModifiers fills d from the modifier tokens of raw and the flags of sym.
func (d *declaration) readModifiers(raw *syntax.Node, sym symbol.Symbol) {
	seen := make(map[syntax.TokenKind]bool)
	var written Modifier
	for _, child := range raw.Children {
		if !child.IsToken() {
			continue
		}
		kind := child.Token.Kind
		if mod, ok := modifierOf(kind); ok {
			written |= mod
		} else if !isAccessToken(kind) {
			continue
		}
		seen[kind] = true
		d.order = append(d.order, kind)
	}
	d.declaredAccess = accessFromTokens(seen)
	d.access = d.declaredAccess

	var implied Modifier
	if sym != nil {
		if a := sym.DeclaredAccessibility(); a != symbol.NotApplicable {
			d.access = a
		}
		if sym.IsStatic() {
			implied |= ModStatic
		}
		if sym.IsAbstract() {
			implied |= ModAbstract
		}
		if sym.IsSealed() {
			implied |= ModSealed
		}
	}
	d.mods = written | implied
	d.implicit = implied &^ written
}

// modifierTokenKinds returns the modifier keywords to write: those written
// originally in their original order, then new ones in canonical order.
func (d *declaration) modifierTokenKinds() []syntax.TokenKind {
	want := make(map[syntax.TokenKind]bool)
	var canonical []syntax.TokenKind
	for _, tok := range accessTokens(d.declaredAccess) {
		want[tok] = true
		canonical = append(canonical, tok)
	}
	written := d.mods &^ d.implicit
	for _, mt := range modifierTokens {
		if written.Has(mt.mod) {
			want[mt.token] = true
			canonical = append(canonical, mt.token)
		}
	}

	out := make([]syntax.TokenKind, 0, len(want))
	for _, tok := range d.order {
		if want[tok] {
			out = append(out, tok)
			delete(want, tok)
		}
	}
	for _, tok := range canonical {
		if want[tok] {
			out = append(out, tok)
		}
	}
	return out
}

// Attributes reports the attribute lists of a declaration. Attribute
// systems are handled outside this package.
func Attributes(n Node) ([]string, error) {
	return nil, &NotImplementedError{Feature: "attributes", Kind: n.Kind()}
}
