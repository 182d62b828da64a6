package format

import (
	"strings"

	"github.com/dhamidi/rdom/dom"
	"github.com/dhamidi/rdom/symbol"
)

// domNode is the serialized form of one DOM node, shared by the JSON and
// YAML encoders.
type domNode struct {
	Kind           string     `json:"kind" yaml:"kind"`
	Name           string     `json:"name,omitempty" yaml:"name,omitempty"`
	QualifiedName  string     `json:"qualifiedName,omitempty" yaml:"qualifiedName,omitempty"`
	Access         string     `json:"access,omitempty" yaml:"access,omitempty"`
	Modifiers      []string   `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Type           string     `json:"type,omitempty" yaml:"type,omitempty"`
	ReturnType     string     `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	BaseType       string     `json:"baseType,omitempty" yaml:"baseType,omitempty"`
	Interfaces     []string   `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Text           string     `json:"text,omitempty" yaml:"text,omitempty"`
	ExpressionKind string     `json:"expressionKind,omitempty" yaml:"expressionKind,omitempty"`
	Children       []*domNode `json:"children,omitempty" yaml:"children,omitempty"`
}

type qualified interface {
	QualifiedName() string
}

type accessible interface {
	AccessModifier() symbol.Accessibility
	Modifiers() dom.Modifier
}

type typed interface {
	Type() *dom.ReferencedType
}

type implementing interface {
	ImplementedInterfaces() []*dom.ReferencedType
}

func describe(n dom.Node) *domNode {
	dn := &domNode{
		Kind: n.Kind().String(),
		Name: n.Name(),
	}
	if q, ok := n.(qualified); ok {
		dn.QualifiedName = q.QualifiedName()
	}
	if a, ok := n.(accessible); ok {
		dn.Access = a.AccessModifier().String()
		dn.Modifiers = strings.Fields(a.Modifiers().String())
	}
	if t, ok := n.(typed); ok {
		dn.Type = typeName(t.Type())
	}
	if impl, ok := n.(implementing); ok {
		for _, t := range impl.ImplementedInterfaces() {
			dn.Interfaces = append(dn.Interfaces, typeName(t))
		}
	}

	switch n := n.(type) {
	case *dom.Method:
		dn.ReturnType = typeName(n.ReturnType())
	case *dom.Class:
		dn.BaseType = typeName(n.BaseType())
	case *dom.Enum:
		dn.BaseType = typeName(n.UnderlyingType())
	case *dom.Expression:
		dn.Text = n.Text()
		dn.ExpressionKind = n.ExpressionKind().String()
	}

	for _, child := range n.Children() {
		dn.Children = append(dn.Children, describe(child))
	}
	return dn
}

func typeName(t *dom.ReferencedType) string {
	if t == nil {
		return ""
	}
	return t.QualifiedName()
}
