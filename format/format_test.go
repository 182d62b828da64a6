package format

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/dhamidi/rdom/dom"
	"github.com/dhamidi/rdom/frontend/csharp"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const source = `using System;

namespace Acme
{
    public class Widget : IGadget
    {
        private int count;
        public void Spin(int times) { count = times; }
    }

    interface IGadget { }
}
`

func parseDom(t *testing.T) dom.Node {
	t.Helper()
	f, err := csharp.Parse(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := dom.CreateFrom(f.Syntax, f.Symbols)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return root
}

func find(n *domNode, kind, name string) *domNode {
	if n.Kind == kind && n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := find(child, kind, name); found != nil {
			return found
		}
	}
	return nil
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(parseDom(t)); err != nil {
		t.Fatal(err)
	}
	want := "using\tSystem\t\t\n" +
		"namespace\tAcme\t\t\n" +
		"class\tAcme.Widget\tpublic\t\n" +
		"field\tAcme.Widget.count\tprivate\t\n" +
		"method\tAcme.Widget.Spin\tpublic\t\n" +
		"interface\tAcme.IGadget\tinternal\tabstract\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("line output mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(parseDom(t)); err != nil {
		t.Fatal(err)
	}
	var root domNode
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	tests := []struct {
		kind, name string
		want       domNode
	}{
		{"Class", "Widget", domNode{
			QualifiedName: "Acme.Widget",
			Access:        "public",
			Interfaces:    []string{"Acme.IGadget"},
		}},
		{"Field", "count", domNode{Access: "private", Type: "int"}},
		{"Method", "Spin", domNode{Access: "public", ReturnType: "void"}},
		{"Parameter", "times", domNode{Type: "int"}},
		{"Interface", "IGadget", domNode{
			QualifiedName: "Acme.IGadget",
			Access:        "internal",
			Modifiers:     []string{"abstract"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			got := find(&root, tt.kind, tt.name)
			if got == nil {
				t.Fatalf("no %s %s in output", tt.kind, tt.name)
			}
			tt.want.Kind = tt.kind
			tt.want.Name = tt.name
			if diff := cmp.Diff(&tt.want, got, ignoreChildren); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

var ignoreChildren = cmp.FilterPath(func(p cmp.Path) bool {
	sf, ok := p.Last().(cmp.StructField)
	return ok && sf.Name() == "Children"
}, cmp.Ignore())

func TestYAMLEncoderMatchesJSON(t *testing.T) {
	root := parseDom(t)

	var jbuf, ybuf bytes.Buffer
	if err := NewJSONEncoder(&jbuf).Encode(root); err != nil {
		t.Fatal(err)
	}
	if err := NewYAMLEncoder(&ybuf).Encode(root); err != nil {
		t.Fatal(err)
	}

	var fromJSON, fromYAML domNode
	if err := json.Unmarshal(jbuf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}
	if err := yaml.Unmarshal(ybuf.Bytes(), &fromYAML); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Errorf("yaml and json disagree (-json +yaml):\n%s", diff)
	}
}

func TestExpressionsCarryText(t *testing.T) {
	dn := describe(parseDom(t))
	expr := find(dn, "Expression", "")
	if expr == nil {
		t.Fatal("no expression in output")
	}
	if expr.Text != "count = times" || expr.ExpressionKind != "Assignment" {
		t.Errorf("got %q (%s)", expr.Text, expr.ExpressionKind)
	}
}

func TestNewEncoder(t *testing.T) {
	for _, name := range []string{"json", "yaml", "line"} {
		if _, ok := NewEncoder(name, &bytes.Buffer{}); !ok {
			t.Errorf("no encoder %q", name)
		}
	}
	if _, ok := NewEncoder("xml", &bytes.Buffer{}); ok {
		t.Error("unexpected encoder xml")
	}
}

func TestSyntaxJSONEncoder(t *testing.T) {
	f, err := csharp.Parse(context.Background(), []byte("class A { }\n"))
	if err != nil {
		t.Fatal(err)
	}
	text, err := NewSyntaxJSONEncoder(nil).MarshalText(f.Syntax)
	if err != nil {
		t.Fatal(err)
	}
	var unit syntaxJSONNode
	if err := json.Unmarshal(text, &unit); err != nil {
		t.Fatal(err)
	}
	if unit.Kind != "CompilationUnit" || len(unit.Children) != 2 {
		t.Fatalf("unexpected unit: %s with %d children", unit.Kind, len(unit.Children))
	}
	class := unit.Children[0]
	if class.Kind != "ClassDecl" || class.Span == nil {
		t.Fatalf("unexpected first child: %+v", class)
	}
	want := &syntaxJSONToken{Kind: "Identifier", Literal: "A", Leading: " "}
	if diff := cmp.Diff(want, class.Children[1].Token); diff != "" {
		t.Errorf("identifier mismatch (-want +got):\n%s", diff)
	}
	eof := unit.Children[1].Token
	if eof == nil || eof.Kind != "EOF" || eof.Leading != "\n" {
		t.Errorf("unexpected EOF token: %+v", eof)
	}
}
