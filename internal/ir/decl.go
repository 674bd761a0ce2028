package ir

// Decl is one top-level or nested declaration. Every node exclusively owns
// its children: the tree is never shared and never cyclic.
type Decl interface {
	isDecl()
}

// Commented attaches a comment above a declaration.
type Commented struct {
	Comment Comment
	Decl    Decl
}

// Attributed attaches an attribute above a declaration. Stacked attributes
// nest: the outermost Attributed renders first.
type Attributed struct {
	Attr Attr
	Decl Decl
}

// Variable is a stored or computed variable declaration.
//
// With Computed set, Value renders as a single-line accessor body:
//
//	public static var circle: SFSymbol { SFSymbol(rawValue: "circle") }
//
// otherwise Value renders as an `= value` initializer (nil for none).
type Variable struct {
	Access   string
	Static   bool
	Let      bool
	Name     string
	Type     string
	Value    Expr
	Computed bool
}

// Extension extends an existing nominal type.
type Extension struct {
	Access       string
	Extended     string
	Conformances []string
	Decls        []Decl
}

// Struct is a struct type declaration.
type Struct struct {
	Access       string
	Name         string
	Conformances []string
	Decls        []Decl
}

// Protocol is a protocol type declaration.
type Protocol struct {
	Access   string
	Name     string
	Inherits []string
	Decls    []Decl
}

// Enum is an enum type declaration. Conformances includes the raw type, if
// any, in first position.
type Enum struct {
	Access       string
	Name         string
	Conformances []string
	Decls        []Decl
}

// TypeAlias renders as `typealias Name = Target`.
type TypeAlias struct {
	Access string
	Name   string
	Target string
}

// Param is a single function parameter. Label is the external argument label;
// "_" suppresses it.
type Param struct {
	Label   string
	Name    string
	Type    string
	Default Expr
}

// Function is a function, method, or initializer (Name "init") declaration.
// A Function with an empty Result has no return arrow.
type Function struct {
	Access string
	Static bool
	Name   string
	Params []Param
	Throws bool
	Result string
	Body   []Expr
}

// EnumCase is a single `case` inside an Enum. RawValue may be nil.
type EnumCase struct {
	Name     string
	RawValue Expr
}

// Guarded is a conditional-compilation block: `#if <condition>` ... `#endif`.
// Its imports and declarations render at the same indent depth as the block's
// container.
type Guarded struct {
	Condition string
	Imports   []string
	Decls     []Decl
}

func (*Commented) isDecl()  {}
func (*Attributed) isDecl() {}
func (*Variable) isDecl()   {}
func (*Extension) isDecl()  {}
func (*Struct) isDecl()     {}
func (*Protocol) isDecl()   {}
func (*Enum) isDecl()       {}
func (*TypeAlias) isDecl()  {}
func (*Function) isDecl()   {}
func (*EnumCase) isDecl()   {}
func (*Guarded) isDecl()    {}

// File is the root of the generated source: header comments, imports, then
// declarations in order.
type File struct {
	Header  []Comment
	Imports []string
	Decls   []Decl
}
