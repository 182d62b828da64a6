package dom

import (
	"strings"

	"github.com/dhamidi/rdom/symbol"
)

// SameIntent reports whether a and b describe the same program, ignoring
// whitespace, comments and the order of methods, properties, fields and
// constructors within a type. Annotations take part only when
// includeAnnotations is set.
func SameIntent(a, b Node, includeAnnotations bool) bool {
	c := comparer{annotations: includeAnnotations}
	return c.node(a, b)
}

type comparer struct {
	annotations bool
}

func (c comparer) node(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.Name() != b.Name() {
		return false
	}
	if c.annotations && !a.Annotations().SameIntent(b.Annotations()) {
		return false
	}

	switch a := a.(type) {
	case *Root:
		return c.stem(&a.stemContainer, &b.(*Root).stemContainer)
	case *Namespace:
		return c.stem(&a.stemContainer, &b.(*Namespace).stemContainer)
	case *Using:
		return true

	case *Class:
		b := b.(*Class)
		return c.typeDecl(a, b, &a.declaration, &b.declaration, &a.typeParameterList, &b.typeParameterList,
			&a.interfaceList, &b.interfaceList, &a.typeContainer, &b.typeContainer) &&
			a.baseType.SameIntent(b.baseType)
	case *Structure:
		b := b.(*Structure)
		return c.typeDecl(a, b, &a.declaration, &b.declaration, &a.typeParameterList, &b.typeParameterList,
			&a.interfaceList, &b.interfaceList, &a.typeContainer, &b.typeContainer)
	case *Interface:
		b := b.(*Interface)
		return c.typeDecl(a, b, &a.declaration, &b.declaration, &a.typeParameterList, &b.typeParameterList,
			&a.interfaceList, &b.interfaceList, &a.typeContainer, &b.typeContainer)
	case *Enum:
		b := b.(*Enum)
		return sameDeclaration(a, b, &a.declaration, &b.declaration) &&
			a.underlying.SameIntent(b.underlying) &&
			c.ordered(a.members.items, b.members.items)
	case *EnumMember:
		return sameExpression(a.value, b.(*EnumMember).value)

	case *Field:
		b := b.(*Field)
		return sameDeclaration(a, b, &a.declaration, &b.declaration) &&
			a.typ.SameIntent(b.typ) &&
			sameExpression(a.initializer, b.initializer)
	case *Property:
		b := b.(*Property)
		return sameDeclaration(a, b, &a.declaration, &b.declaration) &&
			a.typ.SameIntent(b.typ) &&
			sameAccessor(a.getter, b.getter) &&
			sameAccessor(a.setter, b.setter)
	case *Method:
		b := b.(*Method)
		return sameDeclaration(a, b, &a.declaration, &b.declaration) &&
			a.returnType.SameIntent(b.returnType) &&
			a.HasBody() == b.HasBody() &&
			c.ordered(a.typeParams.items, b.typeParams.items) &&
			c.ordered(a.params.items, b.params.items) &&
			c.ordered(a.statements.items, b.statements.items)
	case *Constructor:
		b := b.(*Constructor)
		return sameDeclaration(a, b, &a.declaration, &b.declaration) &&
			c.ordered(a.params.items, b.params.items) &&
			c.ordered(a.statements.items, b.statements.items)
	case *Parameter:
		b := b.(*Parameter)
		return a.modifier == b.modifier &&
			a.typ.SameIntent(b.typ) &&
			sameExpression(a.def, b.def)
	case *TypeParameter:
		return true

	case *Block:
		return c.ordered(a.statements.items, b.(*Block).statements.items)
	case *ExpressionStatement:
		return sameExpression(a.expr, b.(*ExpressionStatement).expr)
	case *Return:
		return sameExpression(a.value, b.(*Return).value)
	case *Throw:
		return sameExpression(a.value, b.(*Throw).value)
	case *Break, *Continue, *Empty:
		return true
	case *Declaration:
		b := b.(*Declaration)
		return a.isConst == b.isConst &&
			a.typ.SameIntent(b.typ) &&
			sameExpression(a.initializer, b.initializer)
	case *If:
		b := b.(*If)
		if (a.elseClause == nil) != (b.elseClause == nil) {
			return false
		}
		if a.elseClause != nil && !c.node(a.elseClause, b.elseClause) {
			return false
		}
		return sameExpression(a.condition, b.condition) &&
			c.ordered(a.statements.items, b.statements.items)
	case *Else:
		return c.ordered(a.statements.items, b.(*Else).statements.items)
	case *While:
		b := b.(*While)
		return sameExpression(a.condition, b.condition) &&
			c.ordered(a.statements.items, b.statements.items)
	case *Do:
		b := b.(*Do)
		return sameExpression(a.condition, b.condition) &&
			c.ordered(a.statements.items, b.statements.items)
	case *For:
		b := b.(*For)
		return sameExpression(a.initializer, b.initializer) &&
			sameExpression(a.condition, b.condition) &&
			sameExpression(a.incrementor, b.incrementor) &&
			c.ordered(a.statements.items, b.statements.items)
	case *ForEach:
		b := b.(*ForEach)
		return a.variableType.SameIntent(b.variableType) &&
			sameExpression(a.condition, b.condition) &&
			c.ordered(a.statements.items, b.statements.items)
	case *Try:
		b := b.(*Try)
		if (a.finally == nil) != (b.finally == nil) {
			return false
		}
		if a.finally != nil && !c.node(a.finally, b.finally) {
			return false
		}
		return c.ordered(a.statements.items, b.statements.items) &&
			c.ordered(a.catches.items, b.catches.items)
	case *Catch:
		b := b.(*Catch)
		return a.exceptionType.SameIntent(b.exceptionType) &&
			c.ordered(a.statements.items, b.statements.items)
	case *Finally:
		return c.ordered(a.statements.items, b.(*Finally).statements.items)
	case *Expression:
		return sameExpression(a, b.(*Expression))
	}
	return false
}

func (c comparer) stem(a, b *stemContainer) bool {
	return c.ordered(only[*Using](a.members.items), only[*Using](b.members.items)) &&
		c.ordered(only[*Namespace](a.members.items), only[*Namespace](b.members.items)) &&
		c.ordered(only[TypeDecl](a.members.items), only[TypeDecl](b.members.items))
}

func only[T Node](items []Node) []Node {
	var out []Node
	for _, n := range items {
		if _, ok := n.(T); ok {
			out = append(out, n)
		}
	}
	return out
}

func (c comparer) typeDecl(a, b Node, da, db *declaration, tpa, tpb *typeParameterList, ia, ib *interfaceList, ma, mb *typeContainer) bool {
	if !sameDeclaration(a, b, da, db) ||
		!c.ordered(tpa.typeParams.items, tpb.typeParams.items) ||
		!sameTypes(ia.interfaces, ib.interfaces) {
		return false
	}
	return c.ordered(only[TypeDecl](ma.members.items), only[TypeDecl](mb.members.items)) &&
		c.unordered(notTypes(ma.members.items), notTypes(mb.members.items))
}

func notTypes(items []Node) []Node {
	var out []Node
	for _, n := range items {
		if _, ok := n.(TypeDecl); !ok {
			out = append(out, n)
		}
	}
	return out
}

func (c comparer) ordered(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !c.node(a[i], b[i]) {
			return false
		}
	}
	return true
}

// unordered pairs every node of a with a distinct node of b.
func (c comparer) unordered(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && c.node(x, y) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// sameDeclaration compares accessibility and modifiers as the language
// sees them, so a declaration that leaves them implied matches one whose
// symbol spelled them out.
func sameDeclaration(a, b Node, da, db *declaration) bool {
	return effectiveAccess(a, da) == effectiveAccess(b, db) &&
		effectiveModifiers(a, da) == effectiveModifiers(b, db)
}

func effectiveAccess(n Node, d *declaration) symbol.Accessibility {
	if d.access != symbol.NotApplicable {
		return d.access
	}
	parent := n.Parent()
	if _, ok := n.(TypeDecl); ok {
		if _, nested := parent.(TypeDecl); nested {
			return symbol.Private
		}
		return symbol.Internal
	}
	if _, ok := parent.(*Interface); ok {
		return symbol.Public
	}
	return symbol.Private
}

func effectiveModifiers(n Node, d *declaration) Modifier {
	mods := d.mods
	_, inInterface := n.Parent().(*Interface)
	switch n := n.(type) {
	case *Interface:
		mods |= ModAbstract
	case *Structure, *Enum:
		mods |= ModSealed
	case *Field:
		if mods.Has(ModConst) {
			mods |= ModStatic
		}
	case *Method:
		if inInterface && !n.HasBody() && !mods.Has(ModStatic) {
			mods |= ModAbstract
		}
	case *Property:
		if inInterface && !mods.Has(ModStatic) {
			mods |= ModAbstract
		}
	}
	return mods
}

func sameAccessor(a, b *Accessor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Access == b.Access && normalizeCode(a.Body) == normalizeCode(b.Body)
}

func sameTypes(a, b []*ReferencedType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].SameIntent(b[i]) {
			return false
		}
	}
	return true
}

func sameExpression(a, b *Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.kind == b.kind && normalizeCode(a.text) == normalizeCode(b.text)
}

// normalizeCode drops comments and every run of whitespace that does not
// separate two identifier characters or two operator characters that would
// read as one operator. String and character literals are kept verbatim.
func normalizeCode(s string) string {
	var out strings.Builder
	pending := false
	write := func(piece string) {
		if pending && out.Len() > 0 {
			last := out.String()[out.Len()-1]
			if isIdentByte(last) && isIdentByte(piece[0]) || fusedOperators[string([]byte{last, piece[0]})] {
				out.WriteByte(' ')
			}
		}
		pending = false
		out.WriteString(piece)
	}
	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case strings.HasPrefix(s[i:], "//"):
			end := strings.IndexByte(s[i:], '\n')
			if end < 0 {
				end = len(s) - i
			}
			i += end
			pending = true
		case strings.HasPrefix(s[i:], "/*"):
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				i = len(s)
			} else {
				i += end + 4
			}
			pending = true
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v':
			i++
			pending = true
		case strings.HasPrefix(s[i:], `@"`):
			end := verbatimEnd(s, i+2)
			write(s[i:end])
			i = end
		case ch == '"' || ch == '\'':
			end := literalEnd(s, i+1, ch)
			write(s[i:end])
			i = end
		default:
			write(s[i : i+1])
			i++
		}
	}
	return out.String()
}

// fusedOperators are the character pairs that form a single operator when
// written without a space.
var fusedOperators = map[string]bool{
	"++": true, "--": true, "&&": true, "||": true, "<<": true, ">>": true,
	"==": true, "!=": true, "<=": true, ">=": true, "=>": true, "->": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true, "&=": true,
	"|=": true, "^=": true, "??": true, "?.": true, "::": true,
	"//": true, "/*": true,
}

func isIdentByte(b byte) bool {
	return b == '_' || b >= 0x80 ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// literalEnd returns the index just past the literal closed by quote,
// starting the scan at i.
func literalEnd(s string, i int, quote byte) int {
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case quote, '\n':
			return i + 1
		}
		i++
	}
	return len(s)
}

// verbatimEnd is literalEnd for @"..." strings, where "" is an escaped
// quote.
func verbatimEnd(s string, i int) int {
	for i < len(s) {
		if s[i] == '"' {
			if i+1 < len(s) && s[i+1] == '"' {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return len(s)
}
