// Package importpath converts physical directory paths into the logical
// import paths a source file would use.
package importpath

import (
	"strings"

	"github.com/dghubble/trie"
)

const vendorSegment = "/vendor/"

// Normalizer rewrites absolute directory paths to import paths relative to a
// set of known source roots.
type Normalizer struct {
	// prefixes maps each root's source subdirectory to the root itself.
	prefixes *trie.PathTrie
}

// NewNormalizer constructs a normalizer for the given roots.  Each root is
// expected to hold its package tree under a "src" subdirectory.
func NewNormalizer(roots []string) *Normalizer {
	prefixes := trie.NewPathTrie()
	for _, root := range roots {
		prefixes.Put(strings.TrimSuffix(root, "/")+"/src", root)
	}
	return &Normalizer{prefixes: prefixes}
}

// Normalize returns the import path for the given absolute directory.
//
// A vendored directory is re-exposed under its logical path: everything after
// the last "vendor/" segment.  Otherwise the deepest known root source prefix
// is stripped.  If nothing matches, the directory is returned unchanged; a
// misconfigured root must not fail the whole scan.
func (n *Normalizer) Normalize(dir string) string {
	if i := strings.LastIndex(dir, vendorSegment); i >= 0 {
		return dir[i+len(vendorSegment):]
	}

	var prefix string
	n.prefixes.WalkPath(dir, func(key string, value interface{}) error {
		if value != nil {
			prefix = key
		}
		return nil
	})
	if prefix != "" && len(dir) > len(prefix) {
		return strings.TrimPrefix(dir[len(prefix):], "/")
	}

	return dir
}
