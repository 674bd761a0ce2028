// Package catalog loads the symbol catalog and the auxiliary name tables.
//
// Назначение: read-only in-memory view of the on-disk property-list data.
// Не делает: filtering, identifier derivation, or code generation.
// Зависимости: howett.net/plist.
package catalog

import "sort"

// Platforms holds the minimum versions a symbol is available from. Version
// strings are free-form and are not validated ahead of rendering.
type Platforms struct {
	IOS      string `plist:"iOS"`
	MacOS    string `plist:"macOS"`
	TvOS     string `plist:"tvOS"`
	WatchOS  string `plist:"watchOS"`
	VisionOS string `plist:"visionOS"`
}

// Catalog is the full symbol catalog plus the auxiliary name-keyed tables.
// It is built once per run and treated as read-only afterwards.
type Catalog struct {
	// Symbols maps a symbol name to its availability key.
	Symbols map[string]string
	// Availability maps an availability key to per-platform minimum versions.
	Availability map[string]Platforms
	// Aliases maps a legacy symbol name to its current name.
	Aliases map[string]string
	// FillVariants and DescriptiveNames are loaded for forward compatibility;
	// the generation pipeline does not consume them yet.
	FillVariants     map[string]string
	DescriptiveNames map[string]string
	// Restrictions maps a symbol name to usage-restriction prose.
	Restrictions map[string]string
}

// Names returns every symbol name in sorted order. Iteration over the
// catalog must never depend on map order, so this is the only way the
// pipeline enumerates symbols.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Symbols))
	for name := range c.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a symbol name to its platform availability. The second
// result reports whether both the symbol's availability key and the key's
// version record exist.
func (c *Catalog) Lookup(name string) (Platforms, bool) {
	key, ok := c.Symbols[name]
	if !ok {
		return Platforms{}, false
	}
	versions, ok := c.Availability[key]
	return versions, ok
}
