package dom

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
	"github.com/google/go-cmp/cmp"
	"github.com/tliron/commonlog"
)

func TestParentsFollowContainment(t *testing.T) {
	root := widgetRoot(t)
	Walk(root, func(n Node) bool {
		for _, child := range n.Children() {
			if child.Parent() != n {
				t.Errorf("%s %q: parent = %v, want %s %q", child.Kind(), child.Name(), child.Parent(), n.Kind(), n.Name())
			}
		}
		return true
	})
	if root.Parent() != nil {
		t.Errorf("root has a parent")
	}
}

func TestMoveBetweenContainers(t *testing.T) {
	root := widgetRoot(t)
	widget := widgetClass(t, root)
	spin := widget.Methods()[0]

	other := NewClass("Other")
	root.Namespaces()[0].AddMember(other)
	other.AddMember(spin)

	if spin.Parent() != other {
		t.Errorf("parent after move = %v, want Other", spin.Parent())
	}
	if got := len(widget.Methods()); got != 0 {
		t.Errorf("Widget still has %d methods", got)
	}
	if got := len(other.Methods()); got != 1 {
		t.Errorf("Other has %d methods, want 1", got)
	}

	other.RemoveMember(spin)
	if spin.Parent() != nil {
		t.Errorf("removed method still has parent %v", spin.Parent())
	}
}

func TestDetach(t *testing.T) {
	root := widgetRoot(t)
	field := widgetClass(t, root).Fields()[0]
	value := field.Initializer()

	Detach(value)
	if field.Initializer() != nil {
		t.Errorf("initializer still set after Detach")
	}
	if value.Parent() != nil {
		t.Errorf("detached expression has parent %v", value.Parent())
	}

	Detach(NewClass("Loose"))
}

func TestInsertAndMove(t *testing.T) {
	class := NewClass("C")
	a := NewField("a", NewReferencedType("int"))
	b := NewField("b", NewReferencedType("int"))
	c := NewField("c", NewReferencedType("int"))
	class.AddMember(a)
	class.AddMember(c)
	class.InsertMember(1, b)

	names := func() []string {
		var out []string
		for _, f := range class.Fields() {
			out = append(out, f.Name())
		}
		return out
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names()); diff != "" {
		t.Errorf("after insert (-want +got):\n%s", diff)
	}

	class.MoveMember(a, 2)
	if diff := cmp.Diff([]string{"b", "c", "a"}, names()); diff != "" {
		t.Errorf("after move (-want +got):\n%s", diff)
	}

	class.AddMember(b)
	if diff := cmp.Diff([]string{"c", "a", "b"}, names()); diff != "" {
		t.Errorf("re-adding a member moves it (-want +got):\n%s", diff)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	root := widgetRoot(t)
	original := widgetClass(t, root)
	before := emit(t, root)

	dup := original.Copy()
	if dup.Parent() != nil {
		t.Errorf("copy has parent %v", dup.Parent())
	}
	if !SameIntent(original, dup, true) {
		t.Errorf("copy does not have the same intent as the original")
	}
	for _, m := range dup.Members() {
		if m.Parent() != dup {
			t.Errorf("%s %q in copy: parent = %v, want the copy", m.Kind(), m.Name(), m.Parent())
		}
	}

	dup.SetName("Gadget")
	dup.Methods()[0].AddStatement(NewBreak())
	dup.Fields()[0].Initializer().SetText("7")
	dup.Annotations().Add("copied", nil)

	if diff := cmp.Diff(before, emit(t, root)); diff != "" {
		t.Errorf("editing the copy changed the original (-want +got):\n%s", diff)
	}
	if original.Annotations().Len() != 0 {
		t.Errorf("annotation leaked into the original")
	}
}

func TestCopyKeepsWhitespace(t *testing.T) {
	root := widgetRoot(t)
	dup, ok := Copy(root).(*Root)
	if !ok {
		t.Fatalf("Copy(root) is %T", Copy(root))
	}
	if diff := cmp.Diff(widgetSource, emit(t, dup)); diff != "" {
		t.Errorf("copy builds differently (-want +got):\n%s", diff)
	}
}

func TestNames(t *testing.T) {
	outer := NewNamespace("Acme")
	inner := NewNamespace("Tools")
	outer.AddMember(inner)
	class := NewClass("Widget")
	inner.AddMember(class)
	nested := NewClass("Part")
	class.AddMember(nested)

	tests := []struct {
		what string
		got  string
		want string
	}{
		{"namespace", inner.QualifiedName(), "Acme.Tools"},
		{"class qualified", class.QualifiedName(), "Acme.Tools.Widget"},
		{"nested qualified", nested.QualifiedName(), "Acme.Tools.Widget.Part"},
		{"nested outer", nested.OuterName(), "Widget.Part"},
		{"detached", NewEnum("Color").QualifiedName(), "Color"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.what, tt.got, tt.want)
		}
	}
}

func TestReferencedTypeNames(t *testing.T) {
	ns := symbol.NewNamespace("Acme.Tools")
	widget := &symbol.Def{SymName: "Widget", SymKind: symbol.KindClass, Namespace: ns}
	part := &symbol.Def{SymName: "Part", SymKind: symbol.KindClass, Namespace: ns, Type: widget}

	tests := []struct {
		ref                          *ReferencedType
		name, outer, qualified, nsOf string
	}{
		{ReferencedTypeOf(widget), "Widget", "Widget", "Acme.Tools.Widget", "Acme.Tools"},
		{ReferencedTypeOf(part), "Part", "Widget.Part", "Acme.Tools.Widget.Part", "Acme.Tools"},
		{ReferencedTypeOf(symbol.ArrayOf(widget)), "Widget[]", "Widget[]", "Acme.Tools.Widget[]", "Acme.Tools"},
		{NewReferencedType("List<int>"), "List<int>", "List<int>", "List<int>", ""},
	}
	for _, tt := range tests {
		got := []string{tt.ref.Name(), tt.ref.OuterName(), tt.ref.QualifiedName(), tt.ref.Namespace()}
		want := []string{tt.name, tt.outer, tt.qualified, tt.nsOf}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s names (-want +got):\n%s", tt.ref, diff)
		}
	}
}

func TestAnnotations(t *testing.T) {
	var a Annotations
	a.Add("owner", map[string]any{"team": "core"})
	a.Add("todo", nil)
	a.Add("owner", map[string]any{"team": "tools"})

	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if v, ok := a.Value("owner", "team"); !ok || v != "tools" {
		t.Errorf("Value(owner, team) = %v, %v; want tools, true", v, ok)
	}
	if got := a.All()[0].Name; got != "owner" {
		t.Errorf("replaced annotation moved; first is %q", got)
	}
	if !a.Remove("todo") || a.Remove("todo") {
		t.Errorf("Remove(todo) should succeed exactly once")
	}
	if _, ok := a.Get("todo"); ok {
		t.Errorf("todo still present")
	}
}

func TestSymbolsDriveSemanticAccessibility(t *testing.T) {
	raw := widgetSyntax(t, widgetSource)
	ns := raw.FirstChildOfKind(syntax.KindNamespaceDecl)
	iface := ns.FirstChildOfKind(syntax.KindInterfaceDecl)
	spin := iface.FirstChildOfKind(syntax.KindMethodDecl)
	class := ns.FirstChildOfKind(syntax.KindClassDecl)
	base := class.FirstChildOfKind(syntax.KindBaseList).ChildrenOfKind(syntax.KindType)[0]

	acme := symbol.NewNamespace("Acme.Tools")
	gadget := &symbol.Def{SymName: "IGadget", SymKind: symbol.KindInterface, Namespace: acme, Access: symbol.Public, Abstract: true}
	table := symbol.NewTable()
	table.Bind(iface.Span, gadget)
	table.Bind(spin.Span, &symbol.Def{SymName: "Spin", SymKind: symbol.KindMethod, Type: gadget, Access: symbol.Public, Abstract: true})
	table.Bind(base.Span, &symbol.Def{SymName: "Base", SymKind: symbol.KindClass, Namespace: symbol.NewNamespace("Acme.Core")})

	root, err := CreateFrom(raw, table)
	if err != nil {
		t.Fatalf("CreateFrom() error = %v", err)
	}
	method := root.Namespaces()[0].Interfaces()[0].Methods()[0]
	if got := method.AccessModifier(); got != symbol.Public {
		t.Errorf("AccessModifier() = %v, want public", got)
	}
	if got := method.DeclaredAccessModifier(); got != symbol.NotApplicable {
		t.Errorf("DeclaredAccessModifier() = %v, want none", got)
	}
	if !method.IsAbstract() {
		t.Errorf("IsAbstract() = false for an interface method")
	}
	if got := widgetClass(t, root).BaseType().QualifiedName(); got != "Acme.Core.Base" {
		t.Errorf("BaseType().QualifiedName() = %q", got)
	}
	if diff := cmp.Diff(widgetSource, emit(t, root)); diff != "" {
		t.Errorf("implied modifiers were written (-want +got):\n%s", diff)
	}
}

func TestUnsupportedSyntax(t *testing.T) {
	s := newSource(t, "class C { event E; }")
	raw := s.unit(node(syntax.KindClassDecl,
		s.tok(syntax.TokenClass), s.ident(), s.tok(syntax.TokenLBrace),
		&syntax.Node{Kind: syntax.KindUnknown, Label: "event_field_declaration", Children: []*syntax.Node{
			s.tok(syntax.TokenIdent), s.tok(syntax.TokenIdent), s.tok(syntax.TokenSemicolon),
		}},
		s.tok(syntax.TokenRBrace)))

	_, err := CreateFrom(raw, nil)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("CreateFrom() error = %v, want %v", err, ErrUnsupported)
	}
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) || unsupported.Label != "event_field_declaration" {
		t.Errorf("error does not name the construct: %v", err)
	}
}

func TestStatementInTypeBodyIsUnsupported(t *testing.T) {
	s := newSource(t, "class C { ; }")
	raw := s.unit(node(syntax.KindClassDecl,
		s.tok(syntax.TokenClass), s.ident(), s.tok(syntax.TokenLBrace),
		node(syntax.KindEmptyStmt, s.tok(syntax.TokenSemicolon)),
		s.tok(syntax.TokenRBrace)))

	if _, err := CreateFrom(raw, nil); !errors.Is(err, ErrUnsupported) {
		t.Errorf("CreateFrom() error = %v, want %v", err, ErrUnsupported)
	}
}

func TestLastRegistrationWins(t *testing.T) {
	corp := NewCorporation()
	corp.Register(Factory{
		SyntaxKind: syntax.KindUsingDirective,
		DomKind:    KindUsing,
		Create: func(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error) {
			return NewUsing("Replaced"), nil
		},
		Build: func(bx *BuildContext, n Node) (*syntax.Node, error) {
			return syntax.NewNode(syntax.KindUsingDirective, syntax.NewToken(syntax.TokenText, "// "+n.Name())), nil
		},
	})

	s := newSource(t, "using System;")
	raw := s.unit(node(syntax.KindUsingDirective, s.tok(syntax.TokenUsing), s.name(1), s.tok(syntax.TokenSemicolon)))
	root, err := CreateFrom(raw, nil, WithCorporation(corp))
	if err != nil {
		t.Fatalf("CreateFrom() error = %v", err)
	}
	if got := root.Usings()[0].Name(); got != "Replaced" {
		t.Errorf("using name = %q, want Replaced", got)
	}

	out, err := BuildSyntax(root, WithCorporation(corp))
	if err != nil {
		t.Fatalf("BuildSyntax() error = %v", err)
	}
	if got := syntax.Emit(out); got != "// Replaced" {
		t.Errorf("Emit() = %q", got)
	}

	if root, err := CreateFrom(raw, nil); err != nil || root.Usings()[0].Name() != "System" {
		t.Errorf("registering into a new corporation changed the default one")
	}
}

func TestRegisteredLookupDrivesWhitespace(t *testing.T) {
	builtin, ok := DefaultCorporation().ForDom(KindClass)
	if !ok {
		t.Fatalf("no class factory")
	}
	swapped := *builtin
	swapped.Lookup = func() *WhitespaceLookup {
		return NewWhitespaceLookup().
			Add(ElemClassKeyword, syntax.TokenClass).
			Add(ElemIdentifier, syntax.TokenIdent).
			Add(ElemEndDelimiter, syntax.TokenLBrace).
			Add(ElemStartDelimiter, syntax.TokenRBrace)
	}
	corp := NewCorporation()
	corp.Register(swapped)

	src := "class C  {\n}"
	s := newSource(t, src)
	raw := s.unit(node(syntax.KindClassDecl,
		s.tok(syntax.TokenClass), s.ident(), s.tok(syntax.TokenLBrace), s.tok(syntax.TokenRBrace)))
	root, err := CreateFrom(raw, nil, WithCorporation(corp))
	if err != nil {
		t.Fatalf("CreateFrom() error = %v", err)
	}
	c := root.Classes()[0]
	if tr, _ := c.Whitespace().Get(Slot{ElemStartDelimiter, 0}); tr.Leading != "\n" {
		t.Errorf("start delimiter leading = %q, want the closing brace's", tr.Leading)
	}

	out, err := BuildSyntax(root, WithCorporation(corp))
	if err != nil {
		t.Fatalf("BuildSyntax() error = %v", err)
	}
	if got := syntax.Emit(out); got != src {
		t.Errorf("Emit() = %q, want %q", got, src)
	}
}

type recordingLogger struct {
	commonlog.MockLogger
	messages []string
}

func (l *recordingLogger) Debugf(format string, values ...any) {
	l.messages = append(l.messages, fmt.Sprintf(format, values...))
}

func TestLoggerSeesUnsupportedDispatch(t *testing.T) {
	s := newSource(t, "goto done;")
	stmt := s.opaque(syntax.KindUnknown, 3)
	stmt.Label = "goto_statement"
	raw := s.unit(stmt)

	l := &recordingLogger{}
	_, err := CreateFrom(raw, nil, WithLogger(l))
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) || unsupported.Label != "goto_statement" {
		t.Fatalf("CreateFrom() error = %v, want unsupported goto_statement", err)
	}
	if len(l.messages) == 0 || !strings.Contains(l.messages[0], "goto_statement") {
		t.Errorf("logged %q, want a message naming goto_statement", l.messages)
	}

	l.messages = nil
	corp := &Corporation{bySyntax: map[syntax.Kind]*Factory{}, byDom: map[Kind]*Factory{}}
	if _, err := BuildSyntax(NewBreak(), WithCorporation(corp), WithLogger(l)); err == nil {
		t.Fatalf("BuildSyntax() succeeded without a factory")
	}
	if len(l.messages) == 0 || !strings.Contains(l.messages[0], "no factory builds") {
		t.Errorf("logged %q, want a build dispatch message", l.messages)
	}
}

func TestBuildUnregisteredKind(t *testing.T) {
	corp := &Corporation{bySyntax: map[syntax.Kind]*Factory{}, byDom: map[Kind]*Factory{}}
	_, err := BuildSyntax(NewBreak(), WithCorporation(corp))
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) || unsupported.DomKind != KindBreak {
		t.Errorf("BuildSyntax() error = %v, want unsupported Break", err)
	}
}

func TestAttributesNotImplemented(t *testing.T) {
	_, err := Attributes(NewClass("C"))
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Attributes() error = %v, want %v", err, ErrNotImplemented)
	}
}

func TestWhitespaceClearRestoresDefaults(t *testing.T) {
	root := widgetRoot(t)
	Walk(root.Namespaces()[0].Enums()[0], func(n Node) bool {
		n.Whitespace().Clear()
		return true
	})
	old := "\n\n    enum Color { Red, Green = 2, }\n"
	if !strings.Contains(widgetSource, old) {
		t.Fatalf("fixture does not contain %q", old)
	}
	want := strings.Replace(widgetSource, old,
		"\n    enum Color\n    {\n        Red,\n        Green = 2,\n    }\n", 1)
	if diff := cmp.Diff(want, emit(t, root)); diff != "" {
		t.Errorf("cleared enum mismatch (-want +got):\n%s", diff)
	}
}
