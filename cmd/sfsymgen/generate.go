package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/catalog"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/config"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/diag"
	"github.com/theoriginalbit/SFSymbolsGenerator/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "Generate the Swift accessor source file",
	Long:  "Generate one complete Swift source file exposing an accessor per catalog symbol",
	Args:  cobra.ExactArgs(0),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("catalog", "", "catalog directory holding the availability plists")
	generateCmd.Flags().String("access", "public", "access modifier for generated declarations")
	generateCmd.Flags().StringSlice("images", nil, "companion image extensions to emit (uikit, appkit)")
	generateCmd.Flags().Bool("aliases", false, "emit deprecated accessors for legacy alias names")
	generateCmd.Flags().Bool("localized", false, "include language-code symbol variants")
	generateCmd.Flags().Bool("rtl", false, "include right-to-left symbol variants")
	generateCmd.Flags().String("output", "", "write to file instead of stdout")
	generateCmd.Flags().Int("workers", 0, "parallel symbol builders (0 = GOMAXPROCS)")
	generateCmd.Flags().Bool("strict", false, "exit nonzero when symbols were skipped")
}

// generateSettings is the merged view of manifest values and flags; flags
// win whenever they were set explicitly.
type generateSettings struct {
	CatalogDir string
	Output     string
	Options    generate.Options
}

func resolveSettings(cmd *cobra.Command) (generateSettings, error) {
	var s generateSettings

	path, found, err := config.Find(".")
	if err != nil {
		return s, err
	}
	if found {
		manifest, err := config.Load(path)
		if err != nil {
			return s, err
		}
		base := filepath.Dir(path)
		if manifest.Generate.Catalog != "" {
			s.CatalogDir = resolvePath(base, manifest.Generate.Catalog)
		}
		if manifest.Generate.Output != "" {
			s.Output = resolvePath(base, manifest.Generate.Output)
		}
		s.Options.Access = manifest.Generate.Access
		s.Options.ImageExtensions = manifest.Generate.Images
		s.Options.EmitAliases = manifest.Generate.Aliases
		s.Options.IncludeLocalized = manifest.Generate.Localized
		s.Options.IncludeRTL = manifest.Generate.RTL
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		s.CatalogDir, _ = flags.GetString("catalog")
	}
	if flags.Changed("output") {
		s.Output, _ = flags.GetString("output")
	}
	if flags.Changed("access") || s.Options.Access == "" {
		s.Options.Access, _ = flags.GetString("access")
	}
	if flags.Changed("images") {
		s.Options.ImageExtensions, _ = flags.GetStringSlice("images")
	}
	if flags.Changed("aliases") {
		s.Options.EmitAliases, _ = flags.GetBool("aliases")
	}
	if flags.Changed("localized") {
		s.Options.IncludeLocalized, _ = flags.GetBool("localized")
	}
	if flags.Changed("rtl") {
		s.Options.IncludeRTL, _ = flags.GetBool("rtl")
	}
	s.Options.Workers, _ = flags.GetInt("workers")
	s.Options.MaxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	if s.CatalogDir == "" {
		return s, fmt.Errorf("generate: --catalog is required (or set catalog in %s)", config.FileName)
	}
	return s, nil
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	applyColorMode(colorMode)

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(settings.CatalogDir); err != nil {
		return fmt.Errorf("generate: catalog directory %q: %w", settings.CatalogDir, err)
	}

	cat, err := catalog.LoadDir(settings.CatalogDir)
	if err != nil {
		return err
	}

	out, bag, err := generate.Generate(cat, settings.Options)
	if err != nil {
		return err
	}

	if settings.Output == "" {
		if _, err := os.Stdout.WriteString(out); err != nil {
			return err
		}
	} else if err := os.WriteFile(settings.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("generate: write %s: %w", settings.Output, err)
	}

	bag.Sort()
	if bag.Len() > 0 && (!quiet || bag.HasErrors()) {
		diag.Write(os.Stderr, bag)
	}

	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}
	if strict && bag.HasErrors() {
		return fmt.Errorf("generate: %d symbol(s) skipped", bag.Len())
	}
	return nil
}
