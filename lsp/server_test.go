package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const uri = "file:///src/Widget.cs"

const widget = `namespace Acme
{
    public class Widget
    {
        private int count;
        public int Size { get; set; }
        public Widget() { }
        public void Spin(int times) { }
    }

    enum Color { Red, Green }
}
`

type notification struct {
	method string
	params any
}

func recorder(out *[]notification) *glsp.Context {
	return &glsp.Context{Notify: func(method string, params any) {
		*out = append(*out, notification{method, params})
	}}
}

func open(t *testing.T, ls *Server, text string) []protocol.Diagnostic {
	t.Helper()
	var sent []notification
	err := ls.textDocumentDidOpen(recorder(&sent), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "csharp", Text: text},
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, sent[0].method)
	params, ok := sent[0].params.(protocol.PublishDiagnosticsParams)
	require.True(t, ok)
	assert.Equal(t, uri, params.URI)
	return params.Diagnostics
}

func outline(syms []protocol.DocumentSymbol) []string {
	var out []string
	for _, s := range syms {
		out = append(out, s.Name)
		for _, name := range outline(s.Children) {
			out = append(out, s.Name+"/"+name)
		}
	}
	return out
}

func TestDocumentSymbols(t *testing.T) {
	ls := NewServer("test")
	assert.Empty(t, open(t, ls, widget))

	result, err := ls.textDocumentDocumentSymbol(nil, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	syms, ok := result.([]protocol.DocumentSymbol)
	require.True(t, ok)

	want := []string{
		"Acme",
		"Acme/Widget",
		"Acme/Widget/count",
		"Acme/Widget/Size",
		"Acme/Widget/Widget",
		"Acme/Widget/Spin",
		"Acme/Color",
		"Acme/Color/Red",
		"Acme/Color/Green",
	}
	assert.Equal(t, want, outline(syms))

	class := syms[0].Children[0]
	assert.Equal(t, protocol.SymbolKindClass, class.Kind)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 2, Character: 4},
		End:   protocol.Position{Line: 8, Character: 5},
	}, class.Range)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 2, Character: 17},
		End:   protocol.Position{Line: 2, Character: 23},
	}, class.SelectionRange)

	field := class.Children[0]
	assert.Equal(t, protocol.SymbolKindField, field.Kind)
	require.NotNil(t, field.Detail)
	assert.Equal(t, "int", *field.Detail)

	assert.Equal(t, protocol.SymbolKindConstructor, class.Children[2].Kind)
	assert.Equal(t, protocol.SymbolKindEnumMember, syms[0].Children[1].Children[0].Kind)
}

func TestSyntaxErrorsAreReported(t *testing.T) {
	ls := NewServer("test")
	diags := open(t, ls, "class A { }\n)\n")
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.UInteger(1), diags[0].Range.Start.Line)
	require.NotNil(t, diags[0].Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)

	result, err := ls.textDocumentDocumentSymbol(nil, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestUnsupportedConstructsAreReported(t *testing.T) {
	ls := NewServer("test")
	diags := open(t, ls, "class A { event System.Action E; }\n")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "event_field_declaration")
}

func TestChangeAndClose(t *testing.T) {
	ls := NewServer("test")
	open(t, ls, "class A { }\n")

	var sent []notification
	err := ls.textDocumentDidChange(recorder(&sent), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "class B { }\n"}},
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	doc := ls.workspace.Get(uri)
	require.NotNil(t, doc)
	require.NotNil(t, doc.Root)
	assert.Equal(t, "B", doc.Root.Classes()[0].Name())

	err = ls.textDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Nil(t, ls.workspace.Get(uri))
}

func TestInitializeAdvertisesSymbols(t *testing.T) {
	ls := NewServer("1.0")
	result, err := ls.initialize(nil, &protocol.InitializeParams{})
	require.NoError(t, err)
	res, ok := result.(protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, true, res.Capabilities.DocumentSymbolProvider)
	assert.Equal(t, "rdom", res.ServerInfo.Name)
}
