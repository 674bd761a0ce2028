package mutate

import (
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ident"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
)

// DeprecationMessage is the fixed advisory attached to every renamed symbol.
const DeprecationMessage = "This symbol was renamed in a later SF Symbols release; use the suggested replacement."

// Deprecation wraps declarations of renamed symbols in an
// `@available(*, deprecated, ...)` attribute carrying the replacement's
// derived identifier.
type Deprecation struct {
	// Renames maps a legacy symbol name to its current raw name.
	Renames map[string]string
}

func (m *Deprecation) Apply(decl ir.Decl, symbol string) ir.Decl {
	target, ok := m.Renames[symbol]
	if !ok {
		return decl
	}
	return WithAttribute(decl, &ir.Deprecated{
		Message: DeprecationMessage,
		Renamed: ident.Derive(target),
	})
}
