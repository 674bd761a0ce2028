package render

import (
	"fmt"
	"strings"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
)

func (p *printer) printDecl(d ir.Decl) {
	switch d := d.(type) {
	case *ir.Commented:
		p.printComment(d.Comment)
		p.printDecl(d.Decl)
	case *ir.Attributed:
		p.printAttr(d.Attr)
		p.printDecl(d.Decl)
	case *ir.Variable:
		p.printVariable(d)
	case *ir.Extension:
		p.printBlock(declHeader(d.Access, "extension", d.Extended, d.Conformances), d.Decls)
	case *ir.Struct:
		p.printBlock(declHeader(d.Access, "struct", d.Name, d.Conformances), d.Decls)
	case *ir.Protocol:
		p.printBlock(declHeader(d.Access, "protocol", d.Name, d.Inherits), d.Decls)
	case *ir.Enum:
		p.printBlock(declHeader(d.Access, "enum", d.Name, d.Conformances), d.Decls)
	case *ir.TypeAlias:
		p.w.Line(accessPrefix(d.Access) + "typealias " + d.Name + " = " + d.Target)
	case *ir.Function:
		p.printFunction(d)
	case *ir.EnumCase:
		p.printEnumCase(d)
	case *ir.Guarded:
		p.printGuarded(d)
	default:
		panic(fmt.Sprintf("render: unknown declaration %T", d))
	}
}

func accessPrefix(access string) string {
	if access == "" {
		return ""
	}
	return access + " "
}

func declHeader(access, keyword, name string, conformances []string) string {
	header := accessPrefix(access) + keyword + " " + name
	if len(conformances) > 0 {
		header += ": " + strings.Join(conformances, ", ")
	}
	return header
}

func (p *printer) printBlock(header string, decls []ir.Decl) {
	p.w.Line(header + " {")
	p.w.Indented(func() {
		for i, d := range decls {
			if i > 0 {
				p.w.Blank()
			}
			p.printDecl(d)
		}
	})
	p.w.Line("}")
}

func (p *printer) printVariable(v *ir.Variable) {
	var b strings.Builder
	b.WriteString(accessPrefix(v.Access))
	if v.Static {
		b.WriteString("static ")
	}
	if v.Let {
		b.WriteString("let ")
	} else {
		b.WriteString("var ")
	}
	b.WriteString(v.Name)
	if v.Type != "" {
		b.WriteString(": ")
		b.WriteString(v.Type)
	}
	switch {
	case v.Computed && v.Value != nil:
		p.w.Line(b.String() + " { ")
		p.w.Continue()
		p.printExpr(v.Value)
		p.w.Continue()
		p.w.Line(" }")
	case v.Value != nil:
		p.w.Line(b.String() + " = ")
		p.w.Continue()
		p.printExpr(v.Value)
	default:
		p.w.Line(b.String())
	}
}

func (p *printer) printFunction(fn *ir.Function) {
	var b strings.Builder
	b.WriteString(accessPrefix(fn.Access))
	if fn.Static {
		b.WriteString("static ")
	}
	if fn.Name != "init" {
		b.WriteString("func ")
	}
	b.WriteString(fn.Name)
	b.WriteString("(")
	p.w.Line(b.String())
	for i, param := range fn.Params {
		if i > 0 {
			p.frag(", ")
		}
		p.printParam(param)
	}
	tail := ")"
	if fn.Throws {
		tail += " throws"
	}
	if fn.Result != "" {
		tail += " -> " + fn.Result
	}
	p.frag(tail + " {")
	p.w.Indented(func() {
		for _, stmt := range fn.Body {
			p.stmt(stmt)
		}
	})
	p.w.Line("}")
}

func (p *printer) printParam(param ir.Param) {
	var b strings.Builder
	if param.Label != "" && param.Label != param.Name {
		b.WriteString(param.Label)
		b.WriteString(" ")
	}
	b.WriteString(param.Name)
	b.WriteString(": ")
	b.WriteString(param.Type)
	p.frag(b.String())
	if param.Default != nil {
		p.frag(" = ")
		p.printExpr(param.Default)
	}
}

func (p *printer) printEnumCase(c *ir.EnumCase) {
	p.w.Line("case " + c.Name)
	if c.RawValue != nil {
		p.frag(" = ")
		p.printExpr(c.RawValue)
	}
}

// printGuarded renders a conditional-compilation block. The guarded body
// stays at the same indent depth as its container.
func (p *printer) printGuarded(g *ir.Guarded) {
	p.w.Line("#if " + g.Condition)
	if len(g.Imports) > 0 {
		p.w.Blank()
		for _, imp := range g.Imports {
			p.w.Line("import " + imp)
		}
	}
	for _, d := range g.Decls {
		p.w.Blank()
		p.printDecl(d)
	}
	p.w.Blank()
	p.w.Line("#endif")
}
