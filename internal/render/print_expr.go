package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
)

// frag writes one fragment of the line currently being composed.
func (p *printer) frag(s string) {
	p.w.Continue()
	p.w.Line(s)
}

// stmt renders e on a fresh line at the current depth.
func (p *printer) stmt(e ir.Expr) {
	p.w.Line("")
	p.printExpr(e)
}

// printExpr emits e as continuation fragments: the first fragment extends the
// line being composed, and multi-line constructs leave their final line open
// for further continuation by the caller.
func (p *printer) printExpr(e ir.Expr) {
	switch e := e.(type) {
	case *ir.StringLit:
		p.frag(stringLiteral(e.Value))
	case *ir.FloatLit:
		p.frag(strconv.FormatFloat(e.Value, 'f', e.Precision, 64))
	case *ir.IntLit:
		p.frag(strconv.FormatInt(e.Value, 10))
	case *ir.BoolLit:
		p.frag(strconv.FormatBool(e.Value))
	case *ir.NilLit:
		p.frag("nil")
	case *ir.ArrayLit:
		p.printArray(e)
	case *ir.IdentRef:
		p.frag(e.Name)
	case *ir.Member:
		if e.Base != nil {
			p.printExpr(e.Base)
		}
		p.frag("." + e.Name)
	case *ir.Call:
		p.printCall(e)
	case *ir.Assign:
		p.printExpr(e.Target)
		p.frag(" = ")
		p.printExpr(e.Value)
	case *ir.Switch:
		p.printSwitch(e)
	case *ir.If:
		p.printIf(e)
	case *ir.Do:
		p.printDo(e)
	case *ir.Binding:
		p.printBinding(e)
	case *ir.Keyword:
		p.frag(keywordWord(e.Op))
		if e.Operand != nil {
			p.frag(" ")
			p.printExpr(e.Operand)
		}
	case *ir.Closure:
		p.printClosure(e)
	case *ir.Binary:
		p.printExpr(e.Left)
		p.frag(" " + e.Op + " ")
		p.printExpr(e.Right)
	case *ir.AddressOf:
		p.frag("&")
		p.printExpr(e.X)
	case *ir.OptionalChain:
		p.printExpr(e.X)
		p.frag("?")
	case *ir.ForceUnwrap:
		p.printExpr(e.X)
		p.frag("!")
	case *ir.Tuple:
		p.frag("(")
		p.printArgs(e.Elems)
		p.frag(")")
	default:
		panic(fmt.Sprintf("render: unknown expression %T", e))
	}
}

func keywordWord(op ir.KeywordOp) string {
	switch op {
	case ir.KwReturn:
		return "return"
	case ir.KwTry:
		return "try"
	case ir.KwAwait:
		return "await"
	case ir.KwThrow:
		return "throw"
	case ir.KwYield:
		return "yield"
	}
	panic(fmt.Sprintf("render: unknown keyword op %d", op))
}

// printArray renders an empty collection with no interior whitespace and a
// non-empty one with one element per line, comma-separated, no trailing
// comma.
func (p *printer) printArray(a *ir.ArrayLit) {
	if len(a.Elems) == 0 {
		p.frag("[]")
		return
	}
	p.frag("[")
	p.w.Indented(func() {
		for i, elem := range a.Elems {
			p.w.Line("")
			p.printExpr(elem)
			if i < len(a.Elems)-1 {
				p.frag(",")
			}
		}
	})
	p.w.Line("]")
}

func (p *printer) printCall(c *ir.Call) {
	p.printExpr(c.Callee)
	p.frag("(")
	p.printArgs(c.Args)
	p.frag(")")
	if c.Trailing != nil {
		p.frag(" ")
		p.printClosure(c.Trailing)
	}
}

func (p *printer) printArgs(args []ir.Arg) {
	for i, arg := range args {
		if i > 0 {
			p.frag(", ")
		}
		if arg.Label != "" {
			p.frag(arg.Label + ": ")
		}
		p.printExpr(arg.Value)
	}
}

func (p *printer) printSwitch(s *ir.Switch) {
	p.frag("switch ")
	p.printExpr(s.Subject)
	p.frag(" {")
	for _, arm := range s.Cases {
		if arm.Default {
			p.w.Line("default:")
		} else {
			p.w.Line("case ")
			for i, pattern := range arm.Patterns {
				if i > 0 {
					p.frag(", ")
				}
				p.printExpr(pattern)
			}
			p.frag(":")
		}
		p.w.Indented(func() {
			for _, stmt := range arm.Body {
				p.stmt(stmt)
			}
		})
	}
	p.w.Line("}")
}

func (p *printer) printIf(e *ir.If) {
	p.frag("if ")
	p.printExpr(e.Cond)
	p.frag(" {")
	p.w.Indented(func() {
		for _, stmt := range e.Then {
			p.stmt(stmt)
		}
	})
	if len(e.Else) > 0 {
		p.w.Line("} else {")
		p.w.Indented(func() {
			for _, stmt := range e.Else {
				p.stmt(stmt)
			}
		})
	}
	p.w.Line("}")
}

func (p *printer) printDo(e *ir.Do) {
	p.frag("do {")
	p.w.Indented(func() {
		for _, stmt := range e.Body {
			p.stmt(stmt)
		}
	})
	if e.HasCatch {
		p.w.Line("} catch {")
		p.w.Indented(func() {
			for _, stmt := range e.Catch {
				p.stmt(stmt)
			}
		})
	}
	p.w.Line("}")
}

func (p *printer) printBinding(b *ir.Binding) {
	var sb strings.Builder
	if b.Let {
		sb.WriteString("let ")
	} else {
		sb.WriteString("var ")
	}
	sb.WriteString(b.Name)
	if b.Type != "" {
		sb.WriteString(": ")
		sb.WriteString(b.Type)
	}
	p.frag(sb.String())
	if b.Value != nil {
		p.frag(" = ")
		p.printExpr(b.Value)
	}
}

func (p *printer) printClosure(c *ir.Closure) {
	header := "{"
	if len(c.Params) > 0 {
		header += " " + strings.Join(c.Params, ", ") + " in"
	}
	p.frag(header)
	p.w.Indented(func() {
		for _, stmt := range c.Body {
			p.stmt(stmt)
		}
	})
	p.w.Line("}")
}
