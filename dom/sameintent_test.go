package dom

import (
	"testing"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
)

func TestSameIntentIgnoresFormatting(t *testing.T) {
	a := widgetRoot(t)
	b, err := CreateFrom(widgetSyntax(t, widgetReformatted), nil)
	if err != nil {
		t.Fatalf("CreateFrom() error = %v", err)
	}
	if !SameIntent(a, b, true) {
		t.Errorf("SameIntent(formatted, reformatted) = false, want true")
	}
}

func TestSameIntent(t *testing.T) {
	tests := []struct {
		name string
		edit func(t *testing.T, root *Root)
		want bool
	}{
		{
			name: "unchanged",
			edit: func(t *testing.T, root *Root) {},
			want: true,
		},
		{
			name: "methods reordered",
			edit: func(t *testing.T, root *Root) {
				c := widgetClass(t, root)
				c.MoveMember(c.Methods()[0], 0)
			},
			want: true,
		},
		{
			name: "fields reordered",
			edit: func(t *testing.T, root *Root) {
				c := widgetClass(t, root)
				c.MoveMember(c.Fields()[0], len(c.Members())-1)
			},
			want: true,
		},
		{
			name: "usings reordered",
			edit: func(t *testing.T, root *Root) {
				root.MoveMember(root.Usings()[1], 0)
			},
			want: false,
		},
		{
			name: "statements reordered",
			edit: func(t *testing.T, root *Root) {
				m := widgetClass(t, root).Methods()[0]
				m.MoveStatement(m.Statements()[1], 0)
			},
			want: false,
		},
		{
			name: "interfaces reordered",
			edit: func(t *testing.T, root *Root) {
				c := widgetClass(t, root)
				c.SetBaseType(nil)
				c.SetImplementedInterfaces([]*ReferencedType{NewReferencedType("IGadget"), NewReferencedType("Base")})
			},
			want: false,
		},
		{
			name: "expression respaced",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Fields()[0].Initializer().SetText(" 0 /* zero */")
			},
			want: true,
		},
		{
			name: "expression changed",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Fields()[0].Initializer().SetText("1")
			},
			want: false,
		},
		{
			name: "expression kind changed",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Fields()[0].Initializer().SetExpressionKind(syntax.ExprIdentifier)
			},
			want: false,
		},
		{
			name: "getter body written",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Properties()[0].Getter().Body = "{ return 1; }"
			},
			want: false,
		},
		{
			name: "setter made private",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Properties()[0].Setter().Access = symbol.Private
			},
			want: false,
		},
		{
			name: "setter dropped",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Properties()[0].SetCanSet(false)
			},
			want: false,
		},
		{
			name: "implied access written out",
			edit: func(t *testing.T, root *Root) {
				gadget := root.Namespaces()[0].Interfaces()[0]
				gadget.Methods()[0].SetAccessModifier(symbol.Public)
				gadget.Methods()[0].SetModifier(ModAbstract, true)
			},
			want: true,
		},
		{
			name: "modifier added",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).SetModifier(ModAbstract, true)
			},
			want: false,
		},
		{
			name: "parameter renamed",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Methods()[0].Parameters()[0].SetName("n")
			},
			want: false,
		},
		{
			name: "braces dropped",
			edit: func(t *testing.T, root *Root) {
				m := widgetClass(t, root).Methods()[0]
				loop := m.Statements()[0].(*For)
				loop.Statements()[0].(*If).Else().SetHasBlock(false)
			},
			want: true,
		},
		{
			name: "annotation ignored",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Annotations().Add("reviewed", nil)
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := widgetRoot(t)
			edited := widgetRoot(t)
			tt.edit(t, edited)
			if got := SameIntent(original, edited, false); got != tt.want {
				t.Errorf("SameIntent() = %v, want %v", got, tt.want)
			}
			if got := SameIntent(edited, original, false); got != tt.want {
				t.Errorf("SameIntent() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameIntentAnnotations(t *testing.T) {
	a := widgetRoot(t)
	b := widgetRoot(t)
	widgetClass(t, b).Annotations().Add("generated", map[string]any{"by": "tool"})

	if !SameIntent(a, b, false) {
		t.Errorf("SameIntent(includeAnnotations=false) = false, want true")
	}
	if SameIntent(a, b, true) {
		t.Errorf("SameIntent(includeAnnotations=true) = true, want false")
	}

	widgetClass(t, a).Annotations().Add("generated", map[string]any{"by": "tool"})
	if !SameIntent(a, b, true) {
		t.Errorf("SameIntent() with equal annotations = false, want true")
	}
}

func TestSameIntentDifferentKinds(t *testing.T) {
	if SameIntent(NewClass("A"), NewStructure("A"), false) {
		t.Errorf("class and structure compare equal")
	}
	if !SameIntent(nil, nil, false) {
		t.Errorf("SameIntent(nil, nil) = false")
	}
	if SameIntent(NewClass("A"), nil, false) {
		t.Errorf("SameIntent(node, nil) = true")
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a + b", "a+b"},
		{"a  +\n\tb", "a+b"},
		{"new  Widget ( 1 )", "new Widget(1)"},
		{"x /* note */ + y // trailing", "x+y"},
		{`Say( "a  b" )`, `Say("a  b")`},
		{`Say("a \" b")`, `Say("a \" b")`},
		{`@"c:\dir  ""x"""`, `@"c:\dir  ""x"""`},
		{"'a' + ' '", "'a'+' '"},
		{"return  value", "return value"},
		{"i++ + j", "i++ +j"},
		{"i + ++j", "i+ ++j"},
		{"a - -b", "a- -b"},
		{"x = -1", "x=-1"},
		{"a => b", "a=>b"},
	}
	for _, tt := range tests {
		if got := normalizeCode(tt.in); got != tt.want {
			t.Errorf("normalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReferencedTypeSameIntent(t *testing.T) {
	a := NewReferencedType("List<int>")
	b := NewReferencedType("List< int >")
	if !a.SameIntent(b) {
		t.Errorf("%v.SameIntent(%v) = false", a, b)
	}
	if a.SameIntent(NewReferencedType("List<long>")) {
		t.Errorf("different type arguments compare equal")
	}
	var none *ReferencedType
	if !none.SameIntent(nil) {
		t.Errorf("nil.SameIntent(nil) = false")
	}
	if a.SameIntent(nil) {
		t.Errorf("a.SameIntent(nil) = true")
	}
}
