package generate

import (
	"strings"
	"testing"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/catalog"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/diag"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/mutate"
)

var release2019 = catalog.Platforms{
	IOS:      "13.0",
	MacOS:    "10.15",
	TvOS:     "13.0",
	WatchOS:  "6.0",
	VisionOS: "1.0",
}

func testCatalog(symbols ...string) *catalog.Catalog {
	cat := &catalog.Catalog{
		Symbols:      make(map[string]string),
		Availability: map[string]catalog.Platforms{"2019": release2019},
		Aliases:      make(map[string]string),
		Restrictions: make(map[string]string),
	}
	for _, name := range symbols {
		cat.Symbols[name] = "2019"
	}
	return cat
}

func mustGenerate(t *testing.T, cat *catalog.Catalog, opts Options) (string, *diag.Bag) {
	t.Helper()
	out, bag, err := Generate(cat, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return out, bag
}

func TestGenerateGolden(t *testing.T) {
	out, bag := mustGenerate(t, testCatalog("message.circle"), Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	want := strings.Join([]string{
		"// Generated by sfsymgen; do not edit.",
		"// https://github.com/theoriginalbit/SFSymbolsGenerator",
		"",
		"import Foundation",
		"",
		"// MARK: - Support",
		"public struct SFSymbol: Equatable, Hashable, RawRepresentable {",
		"    public let rawValue: String",
		"",
		"    public init(rawValue: String) {",
		"        self.rawValue = rawValue",
		"    }",
		"}",
		"",
		"// MARK: - Symbols",
		"extension SFSymbol {",
		`    /// A symbol named "message.circle".`,
		"    ///",
		"    @available(iOS 13.0, macOS 10.15, macCatalyst 13.0, tvOS 13.0, visionOS 1.0, watchOS 6.0, *)",
		`    public static var messageCircle: SFSymbol { SFSymbol(rawValue: "message.circle") }`,
		"}",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("golden mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, out)
	}
}

func TestGenerateDocCommentTrailer(t *testing.T) {
	out, _ := mustGenerate(t, testCatalog("c.square"), Options{})
	want := strings.Join([]string{
		`    /// A symbol named "c.square".`,
		"    ///",
		"    @available(",
	}, "\n")
	if !strings.Contains(out, want) {
		t.Fatalf("doc comment must end with exactly one blank trailer line:\n%s", out)
	}
	if strings.Contains(out, "- Important:") {
		t.Fatal("no restriction entry, but output carries an Important callout")
	}
}

func TestGenerateRestrictionCallout(t *testing.T) {
	cat := testCatalog("c.square")
	cat.Restrictions["c.square"] = "May only be used to refer to X"
	out, _ := mustGenerate(t, cat, Options{})

	want := strings.Join([]string{
		`    /// A symbol named "c.square".`,
		"    ///",
		"    /// - Important: May only be used to refer to X",
	}, "\n")
	if !strings.Contains(out, want) {
		t.Fatalf("missing restriction callout:\n%s", out)
	}
}

func TestGenerateLocalizationFiltering(t *testing.T) {
	cat := testCatalog("record.circle.fill", "record.circle.fill.ja", "arrow.left", "arrow.left.rtl")

	out, _ := mustGenerate(t, cat, Options{})
	if strings.Contains(out, "record.circle.fill.ja") {
		t.Error("language-code variant leaked with localization disabled")
	}
	if strings.Contains(out, "arrow.left.rtl") {
		t.Error("rtl variant leaked with rtl disabled")
	}

	out, _ = mustGenerate(t, cat, Options{IncludeLocalized: true})
	if !strings.Contains(out, `rawValue: "record.circle.fill.ja"`) {
		t.Error("language-code variant missing with localization enabled")
	}
	if strings.Contains(out, "arrow.left.rtl") {
		t.Error("rtl flag must stay independent of localization flag")
	}

	out, _ = mustGenerate(t, cat, Options{IncludeRTL: true})
	if !strings.Contains(out, `rawValue: "arrow.left.rtl"`) {
		t.Error("rtl variant missing with rtl enabled")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cat := testCatalog("b.circle", "a.circle", "c.circle", "42.circle", "message.circle.fill")
	cat.Restrictions["a.circle"] = "Careful"
	opts := Options{ImageExtensions: []string{"uikit", "appkit"}, EmitAliases: true, Workers: 4}
	cat.Aliases["old.circle"] = "a.circle"

	first, _ := mustGenerate(t, cat, opts)
	for i := 0; i < 5; i++ {
		again, _ := mustGenerate(t, cat, opts)
		if again != first {
			t.Fatal("re-running generation over an unchanged catalog must be byte-identical")
		}
	}

	// Accessors appear in sorted symbol order regardless of worker count.
	if strings.Index(first, "var aCircle") > strings.Index(first, "var bCircle") {
		t.Fatal("symbol order is not sorted")
	}
}

func TestGenerateMissingAvailabilitySkipsAndReports(t *testing.T) {
	cat := testCatalog("good.circle")
	cat.Symbols["bad.circle"] = "2099" // no version record
	out, bag := mustGenerate(t, cat, Options{})

	if strings.Contains(out, "bad.circle") {
		t.Error("symbol with missing availability must be skipped")
	}
	if !strings.Contains(out, "good.circle") {
		t.Error("healthy symbols must still generate")
	}
	if !bag.HasErrors() {
		t.Fatal("missing availability must be reported as an error diagnostic")
	}
	d := bag.Items()[0]
	if d.Code != diag.CatMissingAvailability || d.Symbol != "bad.circle" {
		t.Errorf("diagnostic = %+v", d)
	}
}

func TestGenerateAliases(t *testing.T) {
	cat := testCatalog("new.circle")
	cat.Aliases["old.circle"] = "new.circle"
	cat.Aliases["dangling.circle"] = "gone.circle"

	out, bag := mustGenerate(t, cat, Options{EmitAliases: true})

	want := strings.Join([]string{
		`    @available(*, deprecated, message: "` + mutate.DeprecationMessage + `", renamed: "newCircle")`,
		"    public static var oldCircle: SFSymbol { .newCircle }",
	}, "\n")
	if !strings.Contains(out, want) {
		t.Fatalf("missing deprecated alias accessor:\n%s", out)
	}

	if !bag.HasWarnings() {
		t.Fatal("dangling alias must produce a warning")
	}
	if strings.Contains(out, "danglingCircle") {
		t.Error("dangling alias must not generate an accessor")
	}
}

func TestGenerateAliasAttributeOrder(t *testing.T) {
	cat := testCatalog("new.circle")
	cat.Aliases["old.circle"] = "new.circle"
	out, _ := mustGenerate(t, cat, Options{EmitAliases: true})

	// Comment, then availability, then deprecation, then the accessor.
	want := strings.Join([]string{
		`    /// A symbol named "old.circle".`,
		"    ///",
		"    @available(iOS 13.0, macOS 10.15, macCatalyst 13.0, tvOS 13.0, visionOS 1.0, watchOS 6.0, *)",
		`    @available(*, deprecated, message: "` + mutate.DeprecationMessage + `", renamed: "newCircle")`,
		"    public static var oldCircle: SFSymbol { .newCircle }",
	}, "\n")
	if !strings.Contains(out, want) {
		t.Fatalf("alias accessor block mismatch:\n%s", out)
	}
}

func TestGenerateImageExtensions(t *testing.T) {
	cat := testCatalog("message.circle")
	out, _ := mustGenerate(t, cat, Options{ImageExtensions: []string{"uikit", "appkit"}})

	for _, want := range []string{
		"#if canImport(UIKit)",
		"import UIKit",
		"// MARK: - UIImage symbols",
		"extension UIImage {",
		`    public static var messageCircle: UIImage { UIImage(systemName: "message.circle")! }`,
		"#if canImport(AppKit)",
		"import AppKit",
		"extension NSImage {",
		`    public static var messageCircle: NSImage { NSImage(systemSymbolName: "message.circle", accessibilityDescription: nil)! }`,
		"#endif",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateUnknownImageExtension(t *testing.T) {
	_, _, err := Generate(testCatalog("a"), Options{ImageExtensions: []string{"swiftui"}})
	if err == nil {
		t.Fatal("unknown image extension token must be rejected")
	}
}

func TestGenerateAccessModifier(t *testing.T) {
	out, _ := mustGenerate(t, testCatalog("message.circle"), Options{Access: "internal"})
	if !strings.Contains(out, "internal static var messageCircle") {
		t.Error("access modifier not applied to accessors")
	}
	if !strings.Contains(out, "internal struct SFSymbol") {
		t.Error("access modifier not applied to the support type")
	}
}

func TestIncludeFilter(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		want bool
	}{
		{"record.circle.fill.ja", Options{}, false},
		{"record.circle.fill.ja", Options{IncludeLocalized: true}, true},
		{"arrow.left.rtl", Options{}, false},
		{"arrow.left.rtl", Options{IncludeRTL: true}, true},
		{"character.book.closed.he", Options{}, false},
		{"message.circle", Options{}, true},
		{"rtl", Options{}, true},
	}
	for _, tc := range cases {
		if got := include(tc.name, tc.opts); got != tc.want {
			t.Errorf("include(%q, %+v) = %v, want %v", tc.name, tc.opts, got, tc.want)
		}
	}
}
