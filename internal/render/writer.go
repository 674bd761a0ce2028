package render

import "strings"

// Writer accumulates completed output lines at the current indent depth.
//
// A single-shot continuation flag lets independently written fragments share
// one visual line: after Continue, the next write concatenates onto the last
// stored line instead of opening a new one, and the flag clears. Rendering
// routines for sub-expressions can each perform their own writes without
// returning strings to their caller.
type Writer struct {
	opt   Options
	lines []string
	depth int
	cont  bool
}

// NewWriter creates a writer with the given options.
func NewWriter(opt Options) *Writer {
	return &Writer{opt: opt.withDefaults()}
}

// Line emits s as a new line at the current depth. When a continuation is
// pending, s is appended to the last stored line instead, without
// re-indenting.
func (w *Writer) Line(s string) {
	if w.cont {
		w.cont = false
		if len(w.lines) > 0 {
			w.lines[len(w.lines)-1] += s
			return
		}
	}
	w.lines = append(w.lines, w.prefix()+s)
}

// Continue makes the next write extend the previous line.
func (w *Writer) Continue() {
	w.cont = true
}

// Blank emits an empty line and discards any pending continuation.
func (w *Writer) Blank() {
	w.cont = false
	w.lines = append(w.lines, "")
}

// Indented runs fn one indent level deeper, restoring the previous depth on
// every exit path.
func (w *Writer) Indented(fn func()) {
	w.depth++
	defer func() { w.depth-- }()
	fn()
}

// Depth returns the current indent level.
func (w *Writer) Depth() int {
	return w.depth
}

func (w *Writer) prefix() string {
	if w.depth == 0 {
		return ""
	}
	if w.opt.UseTabs {
		return strings.Repeat("\t", w.depth)
	}
	return strings.Repeat(" ", w.depth*w.opt.IndentWidth)
}

// String returns the accumulated output, newline-terminated.
func (w *Writer) String() string {
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}
