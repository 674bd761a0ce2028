// Package generate orchestrates one full generation run: filter the catalog,
// derive identifiers, build per-symbol IR through the mutator chain, and
// render the assembled file.
//
// Назначение: the batch map-then-render over the loaded catalog.
// Не делает: catalog IO, flag parsing, or output writing.
// Зависимости: internal/catalog, internal/diag, internal/ident, internal/ir,
// internal/mutate, internal/render, golang.org/x/sync.
package generate

import (
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/catalog"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/diag"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ident"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/mutate"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/render"
)

type Options struct {
	// Access is the modifier applied uniformly to every generated
	// declaration.
	Access string
	// ImageExtensions selects companion image extensions to emit:
	// "uikit" and/or "appkit".
	ImageExtensions []string
	// EmitAliases adds deprecated accessors for legacy alias names.
	EmitAliases bool
	// IncludeLocalized keeps symbols whose final dotted segment is a
	// language code; IncludeRTL keeps right-to-left variants.
	IncludeLocalized bool
	IncludeRTL       bool
	// Workers bounds per-symbol IR construction; zero means GOMAXPROCS.
	Workers int
	// MaxDiagnostics caps the diagnostic bag; zero means 100.
	MaxDiagnostics int
}

func (o Options) withDefaults() Options {
	if o.Access == "" {
		o.Access = "public"
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MaxDiagnostics == 0 {
		o.MaxDiagnostics = 100
	}
	return o
}

// entry is one resolved symbol scheduled for generation.
type entry struct {
	// Name is the raw symbol name; it stays the semantic payload of the
	// accessor regardless of how the identifier is derived.
	Name  string
	Ident string
	// LegacyOf names the current symbol when Name is a legacy alias.
	LegacyOf string
	Versions catalog.Platforms
}

// Generate produces the complete source file for cat under opts. Symbols
// whose availability key has no version record are skipped and reported in
// the returned bag; the error is reserved for unusable options.
func Generate(cat *catalog.Catalog, opts Options) (string, *diag.Bag, error) {
	opts = opts.withDefaults()

	targets, err := imageTargets(opts.ImageExtensions)
	if err != nil {
		return "", nil, err
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	entries := collect(cat, opts, bag)

	versions := make(map[string]catalog.Platforms, len(entries))
	for _, e := range entries {
		versions[e.Name] = e.Versions
	}
	chain := mutate.Chain{
		&mutate.Restriction{Restrictions: cat.Restrictions},
		&mutate.Deprecation{Renames: cat.Aliases},
		&mutate.Availability{Versions: versions},
	}

	accessors := buildAll(entries, opts.Workers, func(e entry) ir.Decl {
		return chain.Apply(accessorDecl(e, opts.Access), e.Name)
	})

	guarded := make([]ir.Decl, 0, len(targets))
	for _, target := range targets {
		images := buildAll(entries, opts.Workers, func(e entry) ir.Decl {
			return chain.Apply(imageDecl(e, opts.Access, target), e.Name)
		})
		guarded = append(guarded, guardedExtension(target, images))
	}

	file := assembleFile(opts.Access, accessors, guarded)
	return render.File(file, render.Options{}), bag, nil
}

// collect filters, resolves, and sorts the symbols to generate. Ordering is
// fixed by name so output never depends on map iteration order.
func collect(cat *catalog.Catalog, opts Options, bag *diag.Bag) []entry {
	var entries []entry
	for _, name := range cat.Names() {
		if !include(name, opts) {
			continue
		}
		versions, ok := cat.Lookup(name)
		if !ok {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.CatMissingAvailability,
				Symbol:   name,
				Message:  "no availability record for key " + quoteKey(cat, name),
			})
			continue
		}
		entries = append(entries, entry{
			Name:     name,
			Ident:    ident.Derive(name),
			Versions: versions,
		})
	}

	if opts.EmitAliases {
		kept := make(map[string]catalog.Platforms, len(entries))
		for _, e := range entries {
			kept[e.Name] = e.Versions
		}
		legacies := make([]string, 0, len(cat.Aliases))
		for legacy := range cat.Aliases {
			legacies = append(legacies, legacy)
		}
		sort.Strings(legacies)
		for _, legacy := range legacies {
			if _, shipped := cat.Symbols[legacy]; shipped {
				continue
			}
			current := cat.Aliases[legacy]
			versions, ok := kept[current]
			if !ok {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevWarning,
					Code:     diag.CatDanglingAlias,
					Symbol:   legacy,
					Message:  fmt.Sprintf("alias target %q is not part of the generated set", current),
				})
				continue
			}
			entries = append(entries, entry{
				Name:     legacy,
				Ident:    ident.Derive(legacy),
				LegacyOf: current,
				Versions: versions,
			})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}

	return entries
}

func quoteKey(cat *catalog.Catalog, name string) string {
	if key, ok := cat.Symbols[name]; ok {
		return fmt.Sprintf("%q", key)
	}
	return "(none)"
}

// buildAll constructs one declaration per entry on a bounded worker pool.
// Results land in an indexed slice, so output order matches the entries'
// stable order regardless of scheduling.
func buildAll(entries []entry, workers int, build func(entry) ir.Decl) []ir.Decl {
	decls := make([]ir.Decl, len(entries))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			decls[i] = build(e)
			return nil
		})
	}
	// Builders never return errors; Wait only fences the pool.
	_ = g.Wait()
	return decls
}
