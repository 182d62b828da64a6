package symbol

import "strings"

// Name returns the simple display name of sym. Arrays render as their
// element name followed by [].
func Name(sym Symbol) string {
	if sym == nil {
		return ""
	}
	if sym.Kind() == KindArray {
		if elem := sym.ElementType(); elem != nil {
			return Name(elem) + "[]"
		}
	}
	return sym.Name()
}

// OuterName returns the containing-type chain and the name, dot-joined.
// Namespaces are not part of it.
func OuterName(sym Symbol) string {
	if sym == nil {
		return ""
	}
	return joinNonEmpty(containingTypeName(containingTypeOf(sym)), Name(sym))
}

// QualifiedName returns the namespace chain, the containing-type chain and
// the name, dot-joined with empty segments omitted.
func QualifiedName(sym Symbol) string {
	if sym == nil {
		return ""
	}
	return joinNonEmpty(
		containingNamespaceName(containingNamespaceOf(sym)),
		containingTypeName(containingTypeOf(sym)),
		Name(sym),
	)
}

// Namespace returns the dotted name of the namespace that contains sym.
func Namespace(sym Symbol) string {
	if sym == nil {
		return ""
	}
	return containingNamespaceName(containingNamespaceOf(sym))
}

// Arrays live where their element type lives.
func containingTypeOf(sym Symbol) Symbol {
	if sym.Kind() == KindArray {
		if elem := sym.ElementType(); elem != nil {
			return containingTypeOf(elem)
		}
	}
	return sym.ContainingType()
}

func containingNamespaceOf(sym Symbol) Symbol {
	if sym.Kind() == KindArray {
		if elem := sym.ElementType(); elem != nil {
			return containingNamespaceOf(elem)
		}
	}
	// Nested types may only record their containing type.
	if ns := sym.ContainingNamespace(); ns != nil {
		return ns
	}
	if t := sym.ContainingType(); t != nil {
		return containingNamespaceOf(t)
	}
	return nil
}

func containingNamespaceName(ns Symbol) string {
	if ns == nil {
		return ""
	}
	return joinNonEmpty(containingNamespaceName(ns.ContainingNamespace()), ns.Name())
}

func containingTypeName(t Symbol) string {
	if t == nil {
		return ""
	}
	return joinNonEmpty(containingTypeName(t.ContainingType()), t.Name())
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}
