package csharp

import (
	"testing"

	"github.com/dhamidi/rdom/dom"
	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const symbolsSource = `using Acme.Core;

namespace Acme.Tools
{
    class Widget : Base, Gadget
    {
        class Part { }
        Part[] parts;
        const int Limit = 3;
        protected internal abstract void Spin();
    }

    interface Gadget
    {
        void Spin();
        int Size { get; }
    }

    struct Point { }
}

namespace Acme.Core
{
    public class Base { }
}
`

func TestSymbols(t *testing.T) {
	f := parse(t, symbolsSource)
	root, err := dom.CreateFrom(f.Syntax, f.Symbols)
	require.NoError(t, err)

	tools := root.Namespaces()[0]
	widget := tools.Classes()[0]
	assert.Equal(t, symbol.Internal, widget.AccessModifier())
	assert.Equal(t, symbol.NotApplicable, widget.DeclaredAccessModifier())

	require.NotNil(t, widget.BaseType())
	assert.Equal(t, "Acme.Core.Base", widget.BaseType().QualifiedName())
	require.Len(t, widget.ImplementedInterfaces(), 1)
	assert.Equal(t, "Acme.Tools.Gadget", widget.ImplementedInterfaces()[0].QualifiedName())

	part := widget.Classes()[0]
	assert.Equal(t, symbol.Private, part.AccessModifier())
	assert.Equal(t, "Acme.Tools.Widget.Part", part.QualifiedName())

	fields := widget.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "Acme.Tools.Widget.Part[]", fields[0].Type().QualifiedName())
	assert.Equal(t, "Widget.Part[]", fields[0].Type().OuterName())
	assert.Equal(t, symbol.Private, fields[0].AccessModifier())
	assert.True(t, fields[1].IsStatic(), "const fields are static")

	spin := widget.Methods()[0]
	assert.Equal(t, symbol.ProtectedOrInternal, spin.AccessModifier())
	assert.True(t, spin.IsAbstract())

	gadget := tools.Interfaces()[0]
	assert.True(t, gadget.IsAbstract())
	for _, m := range gadget.Members() {
		decl, ok := m.(interface {
			AccessModifier() symbol.Accessibility
			DeclaredAccessModifier() symbol.Accessibility
			IsAbstract() bool
		})
		require.True(t, ok, "%s has no accessibility", m.Name())
		assert.Equal(t, symbol.Public, decl.AccessModifier(), m.Name())
		assert.Equal(t, symbol.NotApplicable, decl.DeclaredAccessModifier(), m.Name())
		assert.True(t, decl.IsAbstract(), m.Name())
	}

	point := tools.Structures()[0]
	assert.True(t, point.IsSealed())

	out, err := dom.BuildSyntax(root)
	require.NoError(t, err)
	assert.Equal(t, symbolsSource, syntax.Emit(out), "implied modifiers must not be written")
}

func TestSymbolsDecideBaseClass(t *testing.T) {
	// Without symbols, IService would be taken for an interface and Service
	// for the base class.
	f := parse(t, "class IService { }\ninterface Service { }\nclass Impl : IService, Service { }\n")
	root, err := dom.CreateFrom(f.Syntax, f.Symbols)
	require.NoError(t, err)
	impl := root.Classes()[1]
	require.NotNil(t, impl.BaseType())
	assert.Equal(t, "IService", impl.BaseType().Name())
	require.Len(t, impl.ImplementedInterfaces(), 1)
	assert.Equal(t, "Service", impl.ImplementedInterfaces()[0].Name())

	root, err = dom.CreateFrom(f.Syntax, nil)
	require.NoError(t, err)
	impl = root.Classes()[1]
	assert.Nil(t, impl.BaseType())
	assert.Len(t, impl.ImplementedInterfaces(), 2)
}

func TestResolveCandidates(t *testing.T) {
	root := &scope{usings: []string{"System"}}
	ns := root.namespace("Acme.Tools")
	typ := ns.inType(&symbol.Def{SymName: "Widget", SymKind: symbol.KindClass, Namespace: ns.ns})

	want := []string{
		"Acme.Tools.Widget.Part",
		"Acme.Tools.Part",
		"Acme.Part",
		"System.Part",
		"Part",
	}
	assert.Equal(t, want, typ.candidates("Part"))
}
