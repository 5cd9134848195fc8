package tui

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/daptify14/keynav/internal/config"
	"github.com/daptify14/keynav/internal/selection"
)

// walkMaxWorkers is the default concurrency for fastwalk.
const walkMaxWorkers = 4

// walkTimeout bounds a single catalog load.
const walkTimeout = 10 * time.Second

// errWalkMaxItems stops the walk once the item cap is reached. It is
// filtered from the returned error so callers never see it as a failure.
var errWalkMaxItems = errors.New("max items reached")

// errWalkCanceled signals context cancellation inside the walk callback and
// is converted back into ctx.Err() for callers.
var errWalkCanceled = errors.New("walk canceled")

type catalogEntry struct {
	Name string
	Path string
	// Hidden entries are shown but can never be selected.
	Hidden bool
}

type catalogSection struct {
	Dir     string // relative to the root; "." for the root itself
	Entries []catalogEntry
}

// Catalog groups the files under a root by directory. Sections and the
// entries within them are sorted by name.
type Catalog struct {
	Root     string
	sections []catalogSection
}

// walkStats summarizes one catalog walk for the debug log.
type walkStats struct {
	elapsed    time.Duration
	files      int
	terminated string // "complete", "max-items", "canceled", "deadline"
}

func (c *Catalog) NumberOfSections() int              { return len(c.sections) }
func (c *Catalog) NumberOfItems(section int) int      { return len(c.sections[section].Entries) }
func (c *Catalog) Section(section int) catalogSection { return c.sections[section] }

func (c *Catalog) Entry(p selection.IndexPath) catalogEntry {
	return c.sections[p.Section].Entries[p.Item]
}

// Selectable is the selection predicate for catalog items.
func (c *Catalog) Selectable(p selection.IndexPath) bool {
	return !c.Entry(p).Hidden
}

// Len returns the number of entries across all sections.
func (c *Catalog) Len() int {
	n := 0
	for _, s := range c.sections {
		n += len(s.Entries)
	}
	return n
}

// Remove drops the entry at p. The section stays even when it empties so
// later section indexes do not move.
func (c *Catalog) Remove(p selection.IndexPath) bool {
	if !selection.Contains(c, p) {
		return false
	}
	s := &c.sections[p.Section]
	s.Entries = slices.Delete(s.Entries, p.Item, p.Item+1)
	return true
}

// newCatalog builds a catalog from absolute file paths under root.
func newCatalog(root string, paths []string) *Catalog {
	root = normalizePath(root)
	byDir := make(map[string][]catalogEntry)
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		dir := filepath.Dir(rel)
		byDir[dir] = append(byDir[dir], catalogEntry{
			Name:   filepath.Base(rel),
			Path:   path,
			Hidden: isHiddenPath(rel),
		})
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)

	c := &Catalog{Root: root, sections: make([]catalogSection, 0, len(dirs))}
	for _, dir := range dirs {
		entries := byDir[dir]
		slices.SortFunc(entries, func(a, b catalogEntry) int {
			return strings.Compare(a.Name, b.Name)
		})
		c.sections = append(c.sections, catalogSection{Dir: dir, Entries: entries})
	}
	return c
}

// isHiddenPath reports whether any element of a relative path is a dot
// entry.
func isHiddenPath(rel string) bool {
	for part := range strings.SplitSeq(filepath.ToSlash(rel), "/") {
		if isDotName(part) {
			return true
		}
	}
	return false
}

func isDotName(name string) bool {
	return len(name) > 1 && name[0] == '.' && name != ".."
}

// normalizePath applies filepath.Clean with an empty guard.
func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// walkCatalog performs a bounded, concurrent walk of root and returns its
// files as a catalog.
//
// Context cancellation, the item cap and the skip-directory policy all end
// the walk early. Because fastwalk runs callbacks concurrently a few extra
// files may arrive after a stop signal; newCatalog sorts them into place.
func walkCatalog(ctx context.Context, root string, opts config.Walk) (*Catalog, walkStats, error) {
	startedAt := time.Now()
	stats := func(files []string, terminated string) walkStats {
		return walkStats{elapsed: time.Since(startedAt), files: len(files), terminated: terminated}
	}

	rootClean := normalizePath(root)
	if rootClean == "" || opts.MaxItems <= 0 {
		return newCatalog(rootClean, nil), stats(nil, "complete"), nil
	}

	skip := make(map[string]struct{}, len(opts.Skip))
	for _, name := range opts.Skip {
		skip[name] = struct{}{}
	}

	var (
		mu      sync.Mutex
		files   = make([]string, 0, 256)
		stopped bool
	)

	conf := &fastwalk.Config{
		NumWorkers: walkMaxWorkers,
		Follow:     false,
		Sort:       fastwalk.SortNone,
		MaxDepth:   opts.MaxDepth,
	}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return errWalkCanceled
		default:
		}

		if path == rootClean {
			return nil
		}
		base := filepath.Base(path)
		if d.IsDir() {
			if _, ok := skip[base]; ok {
				return fs.SkipDir
			}
			if !opts.Hidden && isDotName(base) {
				return fs.SkipDir
			}
			return nil
		}
		if !opts.Hidden && isDotName(base) {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return errWalkMaxItems
		}
		files = append(files, normalizePath(path))
		if len(files) >= opts.MaxItems {
			stopped = true
			return errWalkMaxItems
		}
		return nil
	}

	err := fastwalk.Walk(conf, rootClean, fastwalk.IgnorePermissionErrors(walkFn))

	// The cap is read from the flag; fastwalk does not always hand the
	// callback's sentinel back to the caller.
	mu.Lock()
	full := stopped
	mu.Unlock()

	switch {
	case full && !errors.Is(err, errWalkCanceled):
		return newCatalog(rootClean, files), stats(files, "max-items"), nil
	case err == nil, errors.Is(err, errWalkMaxItems):
		return newCatalog(rootClean, files), stats(files, "complete"), nil
	case errors.Is(err, errWalkCanceled):
		cat := newCatalog(rootClean, files)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return cat, stats(files, "deadline"), ctx.Err()
		}
		if ctx.Err() != nil {
			return cat, stats(files, "canceled"), ctx.Err()
		}
		return cat, stats(files, "canceled"), context.Canceled
	default:
		return newCatalog(rootClean, files), stats(files, "error"), err
	}
}
