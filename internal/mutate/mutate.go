// Package mutate applies per-symbol metadata to accessor declarations.
//
// Назначение: a fixed chain of independent, side-effect-free declaration
// transformers, each keyed by symbol name.
// Не делает: catalog loading, rendering, or symbol filtering.
// Зависимости: internal/ir, internal/ident.
package mutate

import (
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
)

// Mutator transforms a symbol's declaration. Implementations must be free of
// side effects: a lookup miss returns the declaration unchanged.
type Mutator interface {
	Apply(decl ir.Decl, symbol string) ir.Decl
}

// Chain applies its mutators in order.
type Chain []Mutator

func (c Chain) Apply(decl ir.Decl, symbol string) ir.Decl {
	for _, m := range c {
		decl = m.Apply(decl, symbol)
	}
	return decl
}

// WithAttribute wraps decl in attr, tunnelling beneath any leading comment so
// the comment always renders above every attribute. Attributes stack: the
// attribute applied last wraps outermost and renders first.
func WithAttribute(decl ir.Decl, attr ir.Attr) ir.Decl {
	if c, ok := decl.(*ir.Commented); ok {
		return &ir.Commented{Comment: c.Comment, Decl: WithAttribute(c.Decl, attr)}
	}
	return &ir.Attributed{Attr: attr, Decl: decl}
}
