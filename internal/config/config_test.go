package config

import (
	"os"
	"path/filepath"
	"testing"
)

const manifestFixture = `
[generate]
catalog = "catalog"
access = "internal"
images = ["uikit"]
aliases = true
localized = true
rtl = false
output = "Sources/SFSymbol.swift"
`

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte(manifestFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	found, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if found != path {
		t.Fatalf("found %q, want %q", found, path)
	}
}

func TestFindMissing(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Fatal("found a manifest where none exists")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(manifestFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Path != path {
		t.Errorf("Path = %q, want %q", m.Path, path)
	}
	g := m.Generate
	if g.Catalog != "catalog" || g.Access != "internal" || !g.Aliases || !g.Localized || g.RTL {
		t.Errorf("unexpected generate config: %+v", g)
	}
	if len(g.Images) != 1 || g.Images[0] != "uikit" {
		t.Errorf("images = %v", g.Images)
	}
	if g.Output != "Sources/SFSymbol.swift" {
		t.Errorf("output = %q", g.Output)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("[generate\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a decode error")
	}
}
