package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/rdom/dom"
)

// LineEncoder writes one tab-separated line per declaration: kind, path,
// accessibility and modifiers. Statements and expressions are skipped.
type LineEncoder struct {
	w    io.Writer
	node dom.Node
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(n dom.Node) error {
	e.node = n
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	dom.Walk(e.node, func(n dom.Node) bool {
		switch n.Kind() {
		case dom.KindRoot:
			return true
		case dom.KindUsing:
			fmt.Fprintf(&sb, "using\t%s\t\t\n", n.Name())
			return false
		case dom.KindNamespace, dom.KindClass, dom.KindStructure, dom.KindInterface, dom.KindEnum:
			e.declaration(&sb, n)
			return true
		case dom.KindField, dom.KindProperty, dom.KindMethod, dom.KindConstructor, dom.KindEnumMember:
			e.declaration(&sb, n)
		}
		return false
	})
	return []byte(sb.String()), nil
}

func (e *LineEncoder) declaration(sb *strings.Builder, n dom.Node) {
	var access, mods string
	if a, ok := n.(accessible); ok {
		access = a.AccessModifier().String()
		mods = a.Modifiers().String()
	}
	fmt.Fprintf(sb, "%s\t%s\t%s\t%s\n", strings.ToLower(n.Kind().String()), path(n), access, mods)
}

// path names n by its qualified name, or by the path of its parent and its
// own name for members.
func path(n dom.Node) string {
	if q, ok := n.(qualified); ok {
		return q.QualifiedName()
	}
	p := n.Parent()
	if p == nil || p.Kind() == dom.KindRoot {
		return n.Name()
	}
	return path(p) + "." + n.Name()
}
