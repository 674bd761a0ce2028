package ident

// reservedWords is the fixed table of Swift keywords a derived identifier
// must not spell bare. It covers always-reserved keywords and the contextual
// ones, because a generated accessor name can appear in any position. A match
// is escaped with backticks rather than respelt.
var reservedWords = map[string]struct{}{
	// Declaration keywords.
	"actor":            {},
	"associatedtype":   {},
	"borrowing":        {},
	"class":            {},
	"consuming":        {},
	"deinit":           {},
	"distributed":      {},
	"enum":             {},
	"extension":        {},
	"fileprivate":      {},
	"func":             {},
	"import":           {},
	"init":             {},
	"inout":            {},
	"internal":         {},
	"let":              {},
	"macro":            {},
	"open":             {},
	"operator":         {},
	"package":          {},
	"precedencegroup":  {},
	"private":          {},
	"protocol":         {},
	"public":           {},
	"rethrows":         {},
	"static":           {},
	"struct":           {},
	"subscript":        {},
	"typealias":        {},
	"var":              {},

	// Statement keywords.
	"break":       {},
	"case":        {},
	"catch":       {},
	"continue":    {},
	"default":     {},
	"defer":       {},
	"do":          {},
	"else":        {},
	"fallthrough": {},
	"for":         {},
	"guard":       {},
	"if":          {},
	"in":          {},
	"repeat":      {},
	"return":      {},
	"switch":      {},
	"where":       {},
	"while":       {},

	// Expression and type keywords.
	"Any":    {},
	"Self":   {},
	"Type":   {},
	"as":     {},
	"await":  {},
	"false":  {},
	"is":     {},
	"nil":    {},
	"self":   {},
	"super":  {},
	"throw":  {},
	"throws": {},
	"true":   {},
	"try":    {},

	// Pattern keyword.
	"_": {},

	// Contextual keywords, reserved wholesale.
	"any":           {},
	"associativity": {},
	"async":         {},
	"convenience":   {},
	"didSet":        {},
	"dynamic":       {},
	"each":          {},
	"final":         {},
	"get":           {},
	"indirect":      {},
	"infix":         {},
	"isolated":      {},
	"lazy":          {},
	"left":          {},
	"mutating":      {},
	"none":          {},
	"nonisolated":   {},
	"nonmutating":   {},
	"optional":      {},
	"override":      {},
	"postfix":       {},
	"precedence":    {},
	"prefix":        {},
	"required":      {},
	"right":         {},
	"sending":       {},
	"set":           {},
	"some":          {},
	"unowned":       {},
	"weak":          {},
	"willSet":       {},
}
