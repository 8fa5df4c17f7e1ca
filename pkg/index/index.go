// Package index maintains the mapping from short package names to the import
// paths that provide them, along with its persisted on-disk form.
package index

import "sort"

// Record is a single (name, import path) definition.
type Record struct {
	// Name is the short package name.
	Name string
	// Path is the fully-qualified import path.
	Path string
}

// Index maps package names to the set of distinct import paths that declare
// them.  Re-adding an existing (name, path) pair is a no-op.
type Index struct {
	entries map[string][]string
	seen    map[Record]bool
}

// New constructs an empty index.
func New() *Index {
	return &Index{
		entries: make(map[string][]string),
		seen:    make(map[Record]bool),
	}
}

// Put records that path provides a package named name.  Returns false if the
// pair was already present.
func (ix *Index) Put(name, path string) bool {
	rec := Record{Name: name, Path: path}
	if ix.seen[rec] {
		return false
	}
	ix.seen[rec] = true
	ix.entries[name] = append(ix.entries[name], path)
	return true
}

// Lookup returns the import paths known for the given name, in sorted order.
func (ix *Index) Lookup(name string) []string {
	paths := ix.entries[name]
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	copy(out, paths)
	sort.Strings(out)
	return out
}

// Len returns the number of distinct package names in the index.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Names returns all package names in sorted order.
func (ix *Index) Names() []string {
	names := make([]string, 0, len(ix.entries))
	for name := range ix.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Records returns every definition sorted by name, then path.  The sorted
// order makes persisted output reproducible: building twice from the same
// filesystem state yields byte-identical files.
func (ix *Index) Records() []Record {
	recs := make([]Record, 0, len(ix.seen))
	for _, name := range ix.Names() {
		for _, path := range ix.Lookup(name) {
			recs = append(recs, Record{Name: name, Path: path})
		}
	}
	return recs
}
