package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"
)

// File names inside a catalog directory. Only the availability file is
// required; the auxiliary tables default to empty when absent.
const (
	AvailabilityFile     = "name_availability.plist"
	AliasesFile          = "name_aliases.plist"
	FillVariantsFile     = "symbol_fill_variants.plist"
	DescriptiveNamesFile = "symbol_descriptive_names.plist"
	RestrictionsFile     = "symbol_restrictions.plist"
)

type availabilityFile struct {
	Symbols       map[string]string    `plist:"symbols"`
	YearToRelease map[string]Platforms `plist:"year_to_release"`
}

// LoadDir reads a catalog directory. A malformed or missing availability
// file is fatal; a malformed auxiliary table is fatal too, but a missing one
// is not.
func LoadDir(dir string) (*Catalog, error) {
	var avail availabilityFile
	if err := decodeFile(filepath.Join(dir, AvailabilityFile), &avail); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if avail.Symbols == nil {
		return nil, fmt.Errorf("catalog: %s has no symbols table", AvailabilityFile)
	}

	cat := &Catalog{
		Symbols:      avail.Symbols,
		Availability: avail.YearToRelease,
	}

	var err error
	if cat.Aliases, err = optionalTable(filepath.Join(dir, AliasesFile)); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if cat.FillVariants, err = optionalTable(filepath.Join(dir, FillVariantsFile)); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if cat.DescriptiveNames, err = optionalTable(filepath.Join(dir, DescriptiveNamesFile)); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if cat.Restrictions, err = optionalTable(filepath.Join(dir, RestrictionsFile)); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return cat, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := plist.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func optionalTable(path string) (map[string]string, error) {
	table := make(map[string]string)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return table, nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := plist.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return table, nil
}
