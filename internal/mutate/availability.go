package mutate

import (
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/catalog"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/ir"
)

// Availability wraps declarations of symbols with a known version record in
// an `@available(platform version, ..., *)` attribute.
type Availability struct {
	// Versions is keyed directly by symbol name; the orchestrator resolves
	// availability keys (and reports unresolvable ones) before the chain
	// runs.
	Versions map[string]catalog.Platforms
}

func (m *Availability) Apply(decl ir.Decl, symbol string) ir.Decl {
	versions, ok := m.Versions[symbol]
	if !ok {
		return decl
	}
	return WithAttribute(decl, PlatformAttr(versions))
}

// PlatformAttr builds the platform-versions attribute in the fixed canonical
// platform order. macCatalyst mirrors the iOS version; platforms without a
// version are omitted. The order never changes across runs, so regenerated
// output stays diffable.
func PlatformAttr(v catalog.Platforms) *ir.Available {
	pairs := []ir.PlatformVersion{
		{Platform: "iOS", Version: v.IOS},
		{Platform: "macOS", Version: v.MacOS},
		{Platform: "macCatalyst", Version: v.IOS},
		{Platform: "tvOS", Version: v.TvOS},
		{Platform: "visionOS", Version: v.VisionOS},
		{Platform: "watchOS", Version: v.WatchOS},
	}
	kept := pairs[:0]
	for _, pv := range pairs {
		if pv.Version != "" {
			kept = append(kept, pv)
		}
	}
	return &ir.Available{Platforms: kept}
}
