package lsp

import (
	"context"
	"fmt"
	"sync"

	"github.com/dhamidi/rdom/dom"
	"github.com/dhamidi/rdom/frontend/csharp"
)

// Workspace holds the open documents and their DOM graphs.
type Workspace struct {
	mu     sync.RWMutex
	parser *csharp.Parser
	files  map[string]*Document
}

// Document is one open file. Root is nil when the text could not be
// turned into a DOM graph; Err says why.
type Document struct {
	URI     string
	Content []byte
	Root    *dom.Root
	Err     error
}

func NewWorkspace() *Workspace {
	return &Workspace{
		parser: csharp.NewParser(),
		files:  make(map[string]*Document),
	}
}

// Update replaces the text of uri and rebuilds its graph.
func (w *Workspace) Update(ctx context.Context, uri string, content []byte) *Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := &Document{URI: uri, Content: content}
	f, err := w.parser.Parse(ctx, content)
	if err != nil {
		doc.Err = err
	} else if doc.Root, err = dom.CreateFrom(f.Syntax, f.Symbols); err != nil {
		doc.Err = fmt.Errorf("building graph: %w", err)
	}
	if doc.Err != nil {
		log.Infof("%s: %s", uri, doc.Err)
	}
	w.files[uri] = doc
	return doc
}

func (w *Workspace) Get(uri string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[uri]
}

func (w *Workspace) Close(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, uri)
}
