// Package symbol describes the resolved semantic information a front end
// hands to the dom layer, and computes display and qualified names from it.
package symbol

import "github.com/dhamidi/rdom/syntax"

type Kind int

const (
	KindUnknown Kind = iota
	KindNamespace
	KindClass
	KindStruct
	KindInterface
	KindEnum
	KindArray
	KindTypeParameter
	KindMethod
	KindField
	KindProperty
	KindParameter
	KindEnumMember
	KindLocal
)

var kindNames = map[Kind]string{
	KindUnknown:       "unknown",
	KindNamespace:     "namespace",
	KindClass:         "class",
	KindStruct:        "struct",
	KindInterface:     "interface",
	KindEnum:          "enum",
	KindArray:         "array",
	KindTypeParameter: "type parameter",
	KindMethod:        "method",
	KindField:         "field",
	KindProperty:      "property",
	KindParameter:     "parameter",
	KindEnumMember:    "enum member",
	KindLocal:         "local",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsType reports whether symbols of this kind name a type.
func (k Kind) IsType() bool {
	switch k {
	case KindClass, KindStruct, KindInterface, KindEnum, KindArray, KindTypeParameter:
		return true
	}
	return false
}

type Accessibility int

const (
	NotApplicable Accessibility = iota
	Private
	ProtectedAndInternal
	Protected
	Internal
	ProtectedOrInternal
	Public
)

var accessibilityNames = map[Accessibility]string{
	NotApplicable:        "",
	Private:              "private",
	ProtectedAndInternal: "private protected",
	Protected:            "protected",
	Internal:             "internal",
	ProtectedOrInternal:  "protected internal",
	Public:               "public",
}

// String renders the accessibility the way it is written in source.
func (a Accessibility) String() string {
	return accessibilityNames[a]
}

// Symbol is a resolved declaration. Accessors that have no meaningful value
// for a kind return their zero value; ContainingNamespace, ContainingType
// and ElementType return nil when there is nothing to return.
type Symbol interface {
	Name() string
	Kind() Kind
	ContainingNamespace() Symbol
	ContainingType() Symbol
	DeclaredAccessibility() Accessibility
	IsAbstract() bool
	IsSealed() bool
	IsStatic() bool
	ElementType() Symbol
}

// Resolver maps tree positions to symbols. SymbolAt returns nil when the
// construct at span has no resolved symbol.
type Resolver interface {
	SymbolAt(span syntax.Span) Symbol
}
