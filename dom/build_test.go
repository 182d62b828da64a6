package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	for name, src := range map[string]string{
		"formatted":   widgetSource,
		"reformatted": widgetReformatted,
	} {
		t.Run(name, func(t *testing.T) {
			raw := widgetSyntax(t, src)
			if got := syntax.Emit(raw); got != src {
				t.Fatalf("fixture does not reproduce its source:\n%s", cmp.Diff(src, got))
			}
			root, err := CreateFrom(raw, nil)
			if err != nil {
				t.Fatalf("CreateFrom() error = %v", err)
			}
			if diff := cmp.Diff(src, emit(t, root)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	root := widgetRoot(t)
	first := emit(t, root)
	if second := emit(t, root); second != first {
		t.Errorf("second build differs:\n%s", cmp.Diff(first, second))
	}

	out, err := BuildSyntax(root)
	if err != nil {
		t.Fatalf("BuildSyntax() error = %v", err)
	}
	again, err := CreateFrom(out, nil)
	if err != nil {
		t.Fatalf("CreateFrom(built) error = %v", err)
	}
	if diff := cmp.Diff(first, emit(t, again)); diff != "" {
		t.Errorf("recreated graph builds differently (-want +got):\n%s", diff)
	}
}

func TestEditsRegenerateOnlyWhatChanged(t *testing.T) {
	tests := []struct {
		name string
		edit func(t *testing.T, root *Root)
		old  string
		new  string
	}{
		{
			name: "remove modifier",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).SetModifier(ModSealed, false)
			},
			old: "public sealed class Widget",
			new: "public class Widget",
		},
		{
			name: "add modifier",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).SetModifier(ModStatic, true)
			},
			old: "public sealed class Widget",
			new: "public sealed static class Widget",
		},
		{
			name: "drop accessibility of first token",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Fields()[0].SetAccessModifier(symbol.NotApplicable)
			},
			old: "        private readonly int count",
			new: "        readonly int count",
		},
		{
			name: "add accessibility before first token",
			edit: func(t *testing.T, root *Root) {
				root.Namespaces()[0].Enums()[0].SetAccessModifier(symbol.Internal)
			},
			old: "    enum Color",
			new: "    internal enum Color",
		},
		{
			name: "rename method",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Methods()[0].SetName("Rotate")
			},
			old: "public void Spin",
			new: "public void Rotate",
		},
		{
			name: "append statement",
			edit: func(t *testing.T, root *Root) {
				ctor := widgetClass(t, root).Constructors()[0]
				ctor.AddStatement(NewExpressionStatement(NewExpression("Reset()", syntax.ExprInvocation)))
			},
			old: "this.count = count;\n",
			new: "this.count = count;\n            Reset();\n",
		},
		{
			name: "append field",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).AddMember(NewField("label", NewReferencedType("string")))
			},
			old: "            return;\n        }\n    }\n",
			new: "            return;\n        }\n        string label;\n    }\n",
		},
		{
			name: "change expression",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Fields()[0].Initializer().SetText("42")
			},
			old: "int count = 0;",
			new: "int count = 42;",
		},
		{
			name: "drop setter",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).Properties()[0].SetCanSet(false)
			},
			old: "public int Size { get; set; }",
			new: "public int Size { get; }",
		},
		{
			name: "change base type",
			edit: func(t *testing.T, root *Root) {
				widgetClass(t, root).SetBaseType(NewReferencedType("Gizmo"))
			},
			old: ": Base, IGadget",
			new: ": Gizmo, IGadget",
		},
		{
			name: "remove else",
			edit: func(t *testing.T, root *Root) {
				m := widgetClass(t, root).Methods()[0]
				loop := m.Statements()[0].(*For)
				loop.Statements()[0].(*If).SetElse(nil)
			},
			old: "                    Log(i);\n                else\n                {\n                    continue;\n                }\n",
			new: "                    Log(i);\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(widgetSource, tt.old) {
				t.Fatalf("fixture does not contain %q", tt.old)
			}
			root := widgetRoot(t)
			tt.edit(t, root)
			want := strings.Replace(widgetSource, tt.old, tt.new, 1)
			if diff := cmp.Diff(want, emit(t, root)); diff != "" {
				t.Errorf("build after edit mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultFormatting(t *testing.T) {
	root := NewRoot()
	root.AddMember(NewUsing("System"))
	ns := NewNamespace("Acme")
	root.AddMember(ns)

	class := NewClass("Widget")
	class.SetAccessModifier(symbol.Public)
	class.AddImplementedInterface(NewReferencedType("IGadget"))
	ns.AddMember(class)

	method := NewMethod("Run", NewReferencedType("void"))
	method.SetAccessModifier(symbol.Public)
	method.AddParameter(NewParameter("times", NewReferencedType("int")))
	guard := NewIf(NewExpression("times > 0", syntax.ExprBinary), NewReturn(nil))
	guard.SetHasBlock(false)
	method.AddStatement(guard)
	method.AddStatement(NewWhile(NewExpression("Busy()", syntax.ExprInvocation),
		NewExpressionStatement(NewExpression("Wait()", syntax.ExprInvocation)),
		NewBreak()))
	class.AddMember(method)

	want := `using System;
namespace Acme
{
    public class Widget : IGadget
    {
        public void Run(int times)
        {
            if (times > 0)
                return;
            while (Busy())
            {
                Wait();
                break;
            }
        }
    }
}
`
	if diff := cmp.Diff(want, emit(t, root)); diff != "" {
		t.Errorf("synthesized build mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultFormattingStatements(t *testing.T) {
	expr := func(text string) *Expression { return NewExpression(text, syntax.ExprOther) }
	tests := []struct {
		name string
		stmt Statement
		want string
	}{
		{"return value", NewReturn(expr("x")), "return x;"},
		{"throw", NewThrow(expr("new Oops()")), "throw new Oops();"},
		{"empty", NewEmpty(), ";"},
		{"declaration", NewDeclaration("n", NewReferencedType("int"), expr("1")), "int n = 1;"},
		{
			"do",
			NewDo(expr("More()"), NewContinue()),
			"do\n{\n    continue;\n} while (More());",
		},
		{
			"for",
			NewFor(expr("var i = 0"), expr("i < n"), expr("i++"), NewBreak()),
			"for (var i = 0; i < n; i++)\n{\n    break;\n}",
		},
		{
			"empty for header",
			NewFor(nil, nil, nil),
			"for (;;)\n{\n}",
		},
		{
			"foreach",
			func() Statement {
				loop := NewForEach("item", NewReferencedType("string"), expr("items"),
					NewExpressionStatement(expr("Use(item)")))
				loop.SetHasBlock(false)
				return loop
			}(),
			"foreach (string item in items)\n    Use(item);",
		},
		{
			"try",
			func() Statement {
				try := NewTry(NewExpressionStatement(expr("Open()")))
				try.AddCatch(NewCatch(NewReferencedType("IOException"), "e", NewThrow(nil)))
				try.SetFinally(NewFinally(NewExpressionStatement(expr("Close()"))))
				return try
			}(),
			"try\n{\n    Open();\n}\ncatch (IOException e)\n{\n    throw;\n}\nfinally\n{\n    Close();\n}",
		},
		{
			"else if",
			func() Statement {
				s := NewIf(expr("a"), NewReturn(expr("1")))
				s.SetHasBlock(false)
				inner := NewIf(expr("b"), NewReturn(expr("2")))
				inner.SetHasBlock(false)
				chained := NewElse(inner)
				chained.SetHasBlock(false)
				s.SetElse(chained)
				return s
			}(),
			"if (a)\n    return 1;\nelse if (b)\n    return 2;",
		},
		{
			"nested block",
			NewBlock(NewEmpty()),
			"{\n    ;\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, emit(t, tt.stmt)); diff != "" {
				t.Errorf("build mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildReportsInvariantViolations(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"namespace without name", NewNamespace("")},
		{"field without type", NewField("x", nil)},
		{"while without condition", NewWhile(nil, NewBreak())},
		{"foreach without collection", NewForEach("x", NewReferencedType("int"), nil)},
		{"try without handlers", NewTry()},
		{"declaration without name", NewDeclaration("", NewReferencedType("int"), nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSyntax(tt.node)
			if !errors.Is(err, ErrInvariant) {
				t.Errorf("BuildSyntax() error = %v, want %v", err, ErrInvariant)
			}
		})
	}
}
