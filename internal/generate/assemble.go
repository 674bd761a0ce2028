package generate

import (
	"fmt"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ident"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
)

// accessorDecl builds the base declaration for one symbol: a documented
// computed accessor returning the symbol keyed by its raw name. Legacy alias
// entries forward to the current symbol's accessor instead.
func accessorDecl(e entry, access string) ir.Decl {
	var value ir.Expr
	if e.LegacyOf != "" {
		value = &ir.Member{Name: ident.Derive(e.LegacyOf)}
	} else {
		value = &ir.Call{
			Callee: &ir.IdentRef{Name: "SFSymbol"},
			Args: []ir.Arg{
				{Label: "rawValue", Value: &ir.StringLit{Value: e.Name}},
			},
		}
	}
	return &ir.Commented{
		Comment: docComment(e.Name),
		Decl: &ir.Variable{
			Access:   access,
			Static:   true,
			Name:     e.Ident,
			Type:     "SFSymbol",
			Value:    value,
			Computed: true,
		},
	}
}

// imageTarget is one companion image-extension framework.
type imageTarget struct {
	Condition string
	Import    string
	Type      string
	Construct func(e entry) ir.Expr
}

func imageTargets(tokens []string) ([]imageTarget, error) {
	targets := make([]imageTarget, 0, len(tokens))
	for _, token := range tokens {
		switch token {
		case "uikit":
			targets = append(targets, imageTarget{
				Condition: "canImport(UIKit)",
				Import:    "UIKit",
				Type:      "UIImage",
				Construct: func(e entry) ir.Expr {
					return &ir.ForceUnwrap{X: &ir.Call{
						Callee: &ir.IdentRef{Name: "UIImage"},
						Args: []ir.Arg{
							{Label: "systemName", Value: &ir.StringLit{Value: e.Name}},
						},
					}}
				},
			})
		case "appkit":
			targets = append(targets, imageTarget{
				Condition: "canImport(AppKit)",
				Import:    "AppKit",
				Type:      "NSImage",
				Construct: func(e entry) ir.Expr {
					return &ir.ForceUnwrap{X: &ir.Call{
						Callee: &ir.IdentRef{Name: "NSImage"},
						Args: []ir.Arg{
							{Label: "systemSymbolName", Value: &ir.StringLit{Value: e.Name}},
							{Label: "accessibilityDescription", Value: &ir.NilLit{}},
						},
					}}
				},
			})
		default:
			return nil, fmt.Errorf("generate: unknown image extension %q (want uikit or appkit)", token)
		}
	}
	return targets, nil
}

// imageDecl mirrors a symbol accessor as an image-construction accessor for
// one framework target.
func imageDecl(e entry, access string, target imageTarget) ir.Decl {
	var value ir.Expr
	if e.LegacyOf != "" {
		value = &ir.Member{Name: ident.Derive(e.LegacyOf)}
	} else {
		value = target.Construct(e)
	}
	return &ir.Commented{
		Comment: docComment(e.Name),
		Decl: &ir.Variable{
			Access:   access,
			Static:   true,
			Name:     e.Ident,
			Type:     target.Type,
			Value:    value,
			Computed: true,
		},
	}
}

func guardedExtension(target imageTarget, accessors []ir.Decl) ir.Decl {
	return &ir.Guarded{
		Condition: target.Condition,
		Imports:   []string{target.Import},
		Decls: []ir.Decl{
			&ir.Commented{
				Comment: ir.Comment{Kind: ir.CommentMark, Text: target.Type + " symbols", SectionBreak: true},
				Decl:    &ir.Extension{Extended: target.Type, Decls: accessors},
			},
		},
	}
}

// docComment is the per-symbol documentation block. The trailing newline
// keeps one blank doc line between the text and whatever follows.
func docComment(name string) ir.Comment {
	return ir.Comment{
		Kind: ir.CommentDoc,
		Text: fmt.Sprintf("A symbol named %q.\n", name),
	}
}

// assembleFile lays out the complete generated source: header, Foundation
// import, the fixed support type, the accessor extension, then any guarded
// image extensions.
func assembleFile(access string, accessors []ir.Decl, guarded []ir.Decl) *ir.File {
	decls := []ir.Decl{
		&ir.Commented{
			Comment: ir.Comment{Kind: ir.CommentMark, Text: "Support", SectionBreak: true},
			Decl:    supportStruct(access),
		},
		&ir.Commented{
			Comment: ir.Comment{Kind: ir.CommentMark, Text: "Symbols", SectionBreak: true},
			Decl:    &ir.Extension{Extended: "SFSymbol", Decls: accessors},
		},
	}
	decls = append(decls, guarded...)

	return &ir.File{
		Header: []ir.Comment{
			{Kind: ir.CommentLine, Text: "Generated by sfsymgen; do not edit.\nhttps://github.com/theoriginalbit/SFSymbolsGenerator"},
		},
		Imports: []string{"Foundation"},
		Decls:   decls,
	}
}

func supportStruct(access string) ir.Decl {
	return &ir.Struct{
		Access:       access,
		Name:         "SFSymbol",
		Conformances: []string{"Equatable", "Hashable", "RawRepresentable"},
		Decls: []ir.Decl{
			&ir.Variable{
				Access: access,
				Let:    true,
				Name:   "rawValue",
				Type:   "String",
			},
			&ir.Function{
				Access: access,
				Name:   "init",
				Params: []ir.Param{{Label: "rawValue", Name: "rawValue", Type: "String"}},
				Body: []ir.Expr{
					&ir.Assign{
						Target: &ir.Member{Base: &ir.IdentRef{Name: "self"}, Name: "rawValue"},
						Value:  &ir.IdentRef{Name: "rawValue"},
					},
				},
			},
		},
	}
}
