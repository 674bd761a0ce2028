package render

import (
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

type printer struct {
	w *Writer
}

// File renders a complete source file. Rendering is total over well-formed
// IR; an unknown or malformed node is a programming error and panics.
func File(f *ir.File, opt Options) string {
	w := NewWriter(opt)
	p := printer{w: w}
	p.printFile(f)
	return w.String()
}

func (p *printer) printFile(f *ir.File) {
	for _, c := range f.Header {
		p.printComment(c)
	}
	if len(f.Header) > 0 && (len(f.Imports) > 0 || len(f.Decls) > 0) {
		p.w.Blank()
	}
	for _, imp := range f.Imports {
		p.w.Line("import " + imp)
	}
	if len(f.Imports) > 0 && len(f.Decls) > 0 {
		p.w.Blank()
	}
	for i, d := range f.Decls {
		if i > 0 {
			p.w.Blank()
		}
		p.printDecl(d)
	}
}
