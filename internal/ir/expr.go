package ir

// Expr is one expression or statement node. Same ownership rule as Decl:
// children are exclusively owned, arbitrary nesting depth.
type Expr interface {
	isExpr()
}

// StringLit renders as `"..."`, or as a raw `#"..."#` literal when the
// content contains a quote or backslash.
type StringLit struct {
	Value string
}

// FloatLit renders Value with exactly Precision digits after the decimal
// point.
type FloatLit struct {
	Value     float64
	Precision int
}

type IntLit struct {
	Value int64
}

type BoolLit struct {
	Value bool
}

type NilLit struct{}

// ArrayLit renders `[]` when empty, otherwise one element per line inside an
// indented block.
type ArrayLit struct {
	Elems []Expr
}

// IdentRef is a bare identifier reference.
type IdentRef struct {
	Name string
}

// Member is `Base.Name`. A nil Base renders the implicit-member form `.Name`.
type Member struct {
	Base Expr
	Name string
}

// Arg is a labeled call argument or tuple element; an empty Label renders the
// value alone.
type Arg struct {
	Label string
	Value Expr
}

// Call is `Callee(args...)`, optionally followed by a trailing closure.
type Call struct {
	Callee   Expr
	Args     []Arg
	Trailing *Closure
}

type Assign struct {
	Target Expr
	Value  Expr
}

// SwitchCase is one `case` (or `default` when Default is set) arm.
type SwitchCase struct {
	Patterns []Expr
	Default  bool
	Body     []Expr
}

type Switch struct {
	Subject Expr
	Cases   []SwitchCase
}

type If struct {
	Cond Expr
	Then []Expr
	Else []Expr
}

// Do is a do block with an optional catch clause.
type Do struct {
	Body  []Expr
	Catch []Expr
	// HasCatch distinguishes `do { } catch { }` from a bare do block with an
	// empty catch body.
	HasCatch bool
}

// Binding is a `let`/`var` value binding.
type Binding struct {
	Let   bool
	Name  string
	Type  string
	Value Expr
}

type KeywordOp uint8

const (
	KwReturn KeywordOp = iota
	KwTry
	KwAwait
	KwThrow
	KwYield
)

// Keyword prefixes Operand with a statement/effect keyword. Operand may be
// nil (bare `return`).
type Keyword struct {
	Op      KeywordOp
	Operand Expr
}

// Closure is `{ params in body }`; Params may be empty.
type Closure struct {
	Params []string
	Body   []Expr
}

type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

// AddressOf renders `&X`.
type AddressOf struct {
	X Expr
}

// OptionalChain renders `X?`.
type OptionalChain struct {
	X Expr
}

// ForceUnwrap renders `X!`.
type ForceUnwrap struct {
	X Expr
}

// Tuple renders `(elem, elem, ...)` with optional labels.
type Tuple struct {
	Elems []Arg
}

func (*StringLit) isExpr()     {}
func (*FloatLit) isExpr()      {}
func (*IntLit) isExpr()        {}
func (*BoolLit) isExpr()       {}
func (*NilLit) isExpr()        {}
func (*ArrayLit) isExpr()      {}
func (*IdentRef) isExpr()      {}
func (*Member) isExpr()        {}
func (*Call) isExpr()          {}
func (*Assign) isExpr()        {}
func (*Switch) isExpr()        {}
func (*If) isExpr()            {}
func (*Do) isExpr()            {}
func (*Binding) isExpr()       {}
func (*Keyword) isExpr()       {}
func (*Closure) isExpr()       {}
func (*Binary) isExpr()        {}
func (*AddressOf) isExpr()     {}
func (*OptionalChain) isExpr() {}
func (*ForceUnwrap) isExpr()   {}
func (*Tuple) isExpr()         {}
