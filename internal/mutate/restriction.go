package mutate

import (
	"strings"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
)

// Restriction appends an "Important" callout to the doc comment of symbols
// carrying usage-restriction prose.
type Restriction struct {
	// Restrictions maps a symbol name to free-text restriction prose.
	Restrictions map[string]string
}

func (m *Restriction) Apply(decl ir.Decl, symbol string) ir.Decl {
	prose, ok := m.Restrictions[symbol]
	if !ok {
		return decl
	}
	callout := "- Important: " + prose

	// Append a blank line plus the callout to an existing doc comment, or
	// synthesize a comment holding only the callout.
	if c, ok := decl.(*ir.Commented); ok && c.Comment.Kind == ir.CommentDoc {
		body := strings.TrimRight(c.Comment.Text, "\n") + "\n\n" + callout
		return &ir.Commented{
			Comment: ir.Comment{Kind: ir.CommentDoc, Text: body},
			Decl:    c.Decl,
		}
	}
	return &ir.Commented{
		Comment: ir.Comment{Kind: ir.CommentDoc, Text: callout},
		Decl:    decl,
	}
}
