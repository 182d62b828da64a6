package dom

import (
	"sync"

	"github.com/dhamidi/rdom/symbol"
	"github.com/dhamidi/rdom/syntax"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("rdom.dom")

// CreateFunc turns syntax of one kind into a node. parent is the node that
// will hold the result; it is context only, the caller attaches the node.
type CreateFunc func(cx *CreateContext, raw *syntax.Node, parent Node) (Node, error)

// BuildFunc turns a node back into syntax.
type BuildFunc func(bx *BuildContext, n Node) (*syntax.Node, error)

// Factory knows how to create and build one construct. SyntaxKind and
// DomKind are its dispatch keys; either may be left at its zero value to
// register only one direction.
type Factory struct {
	SyntaxKind syntax.Kind
	DomKind    Kind

	// Lookup returns the whitespace lookup of the construct. It is called
	// on every create and build, so it should hand out a shared table.
	Lookup func() *WhitespaceLookup

	Create CreateFunc
	Build  BuildFunc
}

func (f *Factory) lookup() *WhitespaceLookup {
	if f.Lookup == nil {
		return nil
	}
	return f.Lookup()
}

// Corporation is the dispatch table from syntax kinds and dom kinds to
// factories. Register everything before the first create or build; lookups
// take no locks.
type Corporation struct {
	bySyntax map[syntax.Kind]*Factory
	byDom    map[Kind]*Factory
}

var (
	defaultCorporation     *Corporation
	defaultCorporationOnce sync.Once
)

// DefaultCorporation returns the shared table of built-in factories. It is
// built on first use and must not be registered into.
func DefaultCorporation() *Corporation {
	defaultCorporationOnce.Do(func() {
		defaultCorporation = NewCorporation()
	})
	return defaultCorporation
}

// NewCorporation returns a table holding the built-in factories, for hosts
// that register their own on top.
func NewCorporation() *Corporation {
	c := &Corporation{
		bySyntax: make(map[syntax.Kind]*Factory),
		byDom:    make(map[Kind]*Factory),
	}
	for _, f := range builtinFactories() {
		c.Register(f)
	}
	return c
}

// Register adds f to the table. A factory registered later for the same
// kind replaces the earlier one.
func (c *Corporation) Register(f Factory) {
	factory := &f
	if f.SyntaxKind != syntax.KindNone {
		if _, ok := c.bySyntax[f.SyntaxKind]; ok {
			log.Debugf("replacing factory for syntax kind %s", f.SyntaxKind)
		}
		c.bySyntax[f.SyntaxKind] = factory
	}
	if f.DomKind != KindNone {
		if _, ok := c.byDom[f.DomKind]; ok {
			log.Debugf("replacing factory for dom kind %s", f.DomKind)
		}
		c.byDom[f.DomKind] = factory
	}
}

func (c *Corporation) ForSyntax(kind syntax.Kind) (*Factory, bool) {
	f, ok := c.bySyntax[kind]
	return f, ok
}

func (c *Corporation) ForDom(kind Kind) (*Factory, bool) {
	f, ok := c.byDom[kind]
	return f, ok
}

// Create builds the node for raw and all of its descendants. The result is
// detached; parent only informs the factory.
func (c *Corporation) Create(raw *syntax.Node, parent Node, symbols symbol.Resolver) (Node, error) {
	cx := &CreateContext{corp: c, symbols: symbols, log: log}
	return cx.Create(raw, parent)
}

func builtinFactories() []Factory {
	var out []Factory
	out = append(out, stemFactories()...)
	out = append(out, typeFactories()...)
	out = append(out, memberFactories()...)
	return append(out, statementFactories()...)
}
