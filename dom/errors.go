package dom

import (
	"errors"
	"fmt"

	"github.com/dhamidi/rdom/syntax"
)

var (
	// ErrUnsupported marks a syntax or dom kind with no registered factory.
	ErrUnsupported = errors.New("unsupported construct")

	// ErrNotImplemented marks an attribute that deliberately has no behavior
	// for a variant. It is a feature gap, not an absent value.
	ErrNotImplemented = errors.New("not implemented for this feature")

	// ErrInvariant marks a graph that cannot be built or mutated as asked,
	// such as a declaration without a name.
	ErrInvariant = errors.New("invariant violation")
)

// UnsupportedError identifies the construct that could not be handled.
// Exactly one of SyntaxKind and DomKind is set.
type UnsupportedError struct {
	SyntaxKind syntax.Kind
	Label      string
	DomKind    Kind
}

func (e *UnsupportedError) Error() string {
	if e.DomKind != KindNone {
		return fmt.Sprintf("%s: dom kind %s", ErrUnsupported, e.DomKind)
	}
	if e.Label != "" {
		return fmt.Sprintf("%s: syntax kind %s (%s)", ErrUnsupported, e.SyntaxKind, e.Label)
	}
	return fmt.Sprintf("%s: syntax kind %s", ErrUnsupported, e.SyntaxKind)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

type NotImplementedError struct {
	Feature string
	Kind    Kind
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s %s on %s", e.Feature, ErrNotImplemented, e.Kind)
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

type InvariantError struct {
	Kind   Kind
	Name   string
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s %q: %s", ErrInvariant, e.Kind, e.Name, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvariant, e.Kind, e.Reason)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

func invariant(n Node, reason string) error {
	return &InvariantError{Kind: n.Kind(), Name: n.Name(), Reason: reason}
}
