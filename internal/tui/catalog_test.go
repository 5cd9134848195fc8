package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daptify14/keynav/internal/config"
	"github.com/daptify14/keynav/internal/selection"
)

// --- normalizePath tests ---

func TestNormalizePathCleansTrailingSlash(t *testing.T) {
	got := normalizePath("/home/user/")
	want := filepath.Clean("/home/user/")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizePathEmptyReturnsEmpty(t *testing.T) {
	if got := normalizePath(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

// --- newCatalog tests ---

func sectionNames(c *Catalog) map[string][]string {
	out := make(map[string][]string)
	for s := range c.NumberOfSections() {
		sec := c.Section(s)
		for _, e := range sec.Entries {
			out[sec.Dir] = append(out[sec.Dir], e.Name)
		}
	}
	return out
}

func TestNewCatalogGroupsByDirectoryAndSorts(t *testing.T) {
	c := newCatalog("/proj", []string{
		"/proj/main.go",
		"/proj/docs/z.md",
		"/proj/README.md",
		"/proj/docs/a.md",
		"/proj/.env",
		"/elsewhere/x.go",
		"/proj",
	})

	if c.NumberOfSections() != 2 {
		t.Fatalf("expected 2 sections, got %d", c.NumberOfSections())
	}
	if dir := c.Section(0).Dir; dir != "." {
		t.Fatalf("root section should sort first as %q, got %q", ".", dir)
	}
	if dir := c.Section(1).Dir; dir != "docs" {
		t.Fatalf("second section = %q, want docs", dir)
	}

	got := sectionNames(c)
	if strings.Join(got["."], ",") != ".env,README.md,main.go" {
		t.Fatalf("root entries = %v", got["."])
	}
	if strings.Join(got["docs"], ",") != "a.md,z.md" {
		t.Fatalf("docs entries = %v", got["docs"])
	}
	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5 (paths outside root are dropped)", c.Len())
	}
}

func TestNewCatalogHiddenEntriesAreNotSelectable(t *testing.T) {
	c := newCatalog("/proj", []string{
		"/proj/.env",
		"/proj/.config/app.yaml",
		"/proj/main.go",
	})

	for s := range c.NumberOfSections() {
		for i := range c.NumberOfItems(s) {
			p := selection.IndexPath{Section: s, Item: i}
			e := c.Entry(p)
			wantHidden := e.Name == ".env" || c.Section(s).Dir == ".config"
			if e.Hidden != wantHidden {
				t.Fatalf("%s/%s hidden = %t, want %t", c.Section(s).Dir, e.Name, e.Hidden, wantHidden)
			}
			if c.Selectable(p) == wantHidden {
				t.Fatalf("%s selectable = %t", e.Name, c.Selectable(p))
			}
		}
	}
}

func TestCatalogRemoveKeepsEmptySections(t *testing.T) {
	c := newCatalog("/proj", []string{"/proj/a.go", "/proj/docs/guide.md", "/proj/z/last.txt"})

	if !c.Remove(selection.IndexPath{Section: 1, Item: 0}) {
		t.Fatal("expected Remove to succeed")
	}
	if c.NumberOfSections() != 3 {
		t.Fatalf("sections = %d, want 3", c.NumberOfSections())
	}
	if c.NumberOfItems(1) != 0 {
		t.Fatalf("docs section should be empty, has %d", c.NumberOfItems(1))
	}
	if got := c.Entry(selection.IndexPath{Section: 2, Item: 0}).Name; got != "last.txt" {
		t.Fatalf("later section moved: got %q", got)
	}
	if c.Remove(selection.IndexPath{Section: 1, Item: 0}) {
		t.Fatal("removing from an empty section should fail")
	}
}

// --- walkCatalog tests ---

// buildTestTree creates a temporary directory tree for testing.
// Returns the root path. Tree structure:
//
//	root/
//	  a.txt
//	  .env
//	  dir1/
//	    b.txt
//	    dir1a/
//	      c.txt
//	      deep/
//	        d.txt
//	  dir2/
//	    e.txt
//	  .git/
//	    config
//	  node_modules/
//	    pkg/
//	      index.js
func buildTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	dirs := []string{
		"dir1/dir1a/deep",
		"dir2",
		".git",
		"node_modules/pkg",
	}
	files := map[string]string{
		"a.txt":                     "a",
		".env":                      "SECRET=1",
		"dir1/b.txt":                "b",
		"dir1/dir1a/c.txt":          "c",
		"dir1/dir1a/deep/d.txt":     "d",
		"dir2/e.txt":                "e",
		".git/config":               "gitconfig",
		"node_modules/pkg/index.js": "module",
	}

	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	for f, content := range files {
		if err := os.WriteFile(filepath.Join(root, f), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}

	return root
}

func testWalk() config.Walk {
	return config.Walk{MaxDepth: 10, MaxItems: 1000, Skip: []string{".git", "node_modules"}}
}

func catalogPaths(c *Catalog) []string {
	var out []string
	for s := range c.NumberOfSections() {
		for i := range c.NumberOfItems(s) {
			rel, _ := filepath.Rel(c.Root, c.Entry(selection.IndexPath{Section: s, Item: i}).Path)
			out = append(out, filepath.ToSlash(rel))
		}
	}
	return out
}

func TestWalkCatalogBasicTraversal(t *testing.T) {
	root := buildTestTree(t)

	c, stats, err := walkCatalog(context.Background(), root, testWalk())
	if err != nil {
		t.Fatalf("walk error: %v", err)
	}

	got := strings.Join(catalogPaths(c), ",")
	want := "a.txt,dir1/b.txt,dir1/dir1a/c.txt,dir1/dir1a/deep/d.txt,dir2/e.txt"
	if got != want {
		t.Fatalf("catalog paths:\n got %s\nwant %s", got, want)
	}
	if stats.terminated != "complete" || stats.files != 5 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestWalkCatalogHiddenIncludesDotEntriesButNotSkipDirs(t *testing.T) {
	root := buildTestTree(t)
	walk := testWalk()
	walk.Hidden = true

	c, _, err := walkCatalog(context.Background(), root, walk)
	if err != nil {
		t.Fatalf("walk error: %v", err)
	}

	paths := catalogPaths(c)
	if paths[0] != ".env" {
		t.Fatalf("expected .env first, got %v", paths)
	}
	if c.Selectable(selection.IndexPath{Section: 0, Item: 0}) {
		t.Fatal(".env should not be selectable")
	}
	for _, p := range paths {
		if strings.HasPrefix(p, ".git/") || strings.HasPrefix(p, "node_modules/") {
			t.Fatalf("%q should have been skipped", p)
		}
	}
}

func TestWalkCatalogDepthThree(t *testing.T) {
	root := buildTestTree(t)
	walk := testWalk()
	walk.MaxDepth = 3

	c, _, err := walkCatalog(context.Background(), root, walk)
	if err != nil {
		t.Fatalf("walk error: %v", err)
	}

	got := strings.Join(catalogPaths(c), ",")
	if !strings.Contains(got, "dir1/dir1a/c.txt") {
		t.Fatalf("expected dir1/dir1a/c.txt at depth 3, got %s", got)
	}
	if strings.Contains(got, "d.txt") {
		t.Fatalf("dir1/dir1a/deep/d.txt at depth 4 should be excluded, got %s", got)
	}
}

func TestWalkCatalogMaxItemsCap(t *testing.T) {
	root := buildTestTree(t)
	walk := testWalk()
	walk.MaxItems = 2

	c, stats, err := walkCatalog(context.Background(), root, walk)
	if err != nil {
		t.Fatalf("max-items cap should not surface as error, got: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected exactly 2 items, got %d", c.Len())
	}
	if stats.terminated != "max-items" {
		t.Fatalf("terminated = %q, want max-items", stats.terminated)
	}
}

func TestWalkCatalogContextCancellation(t *testing.T) {
	root := buildTestTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, stats, err := walkCatalog(ctx, root, testWalk())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if c == nil {
		t.Fatal("a canceled walk still returns a catalog")
	}
	if stats.terminated != "canceled" {
		t.Fatalf("terminated = %q, want canceled", stats.terminated)
	}
}

func TestWalkCatalogEmptyRoot(t *testing.T) {
	c, _, err := walkCatalog(context.Background(), "", testWalk())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d items", c.Len())
	}
}
