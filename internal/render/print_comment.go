package render

import (
	"fmt"
	"strings"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
)

func (p *printer) printComment(c ir.Comment) {
	switch c.Kind {
	case ir.CommentLine:
		p.prefixedLines("//", c.Text)
	case ir.CommentDoc:
		p.prefixedLines("///", c.Text)
	case ir.CommentMark:
		marker := "// MARK:"
		if c.SectionBreak {
			marker = "// MARK: -"
		}
		if c.Text == "" {
			p.w.Line(marker)
			return
		}
		p.w.Line(marker + " " + c.Text)
	default:
		panic(fmt.Sprintf("render: unknown comment kind %d", c.Kind))
	}
}

// prefixedLines applies marker to every line of text independently. Blank
// lines receive the bare marker with no trailing space.
func (p *printer) prefixedLines(marker, text string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			p.w.Line(marker)
			continue
		}
		p.w.Line(marker + " " + line)
	}
}

func (p *printer) printAttr(a ir.Attr) {
	switch a := a.(type) {
	case *ir.Available:
		parts := make([]string, 0, len(a.Platforms)+1)
		for _, pv := range a.Platforms {
			parts = append(parts, pv.Platform+" "+pv.Version)
		}
		parts = append(parts, "*")
		p.w.Line("@available(" + strings.Join(parts, ", ") + ")")
	case *ir.Deprecated:
		var b strings.Builder
		b.WriteString("@available(*, deprecated")
		if a.Message != "" {
			b.WriteString(", message: ")
			b.WriteString(stringLiteral(a.Message))
		}
		if a.Renamed != "" {
			b.WriteString(", renamed: ")
			b.WriteString(stringLiteral(a.Renamed))
		}
		b.WriteString(")")
		p.w.Line(b.String())
	default:
		panic(fmt.Sprintf("render: unknown attribute %T", a))
	}
}
