// Package walker implements the directory traversal that discovers package
// declarations under a source root.
package walker

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"pkgindex/pkg/srcpkg"
)

// PackageDecl associates a directory with the package name its source files
// declare.  A directory contributes at most one declaration.
type PackageDecl struct {
	// Dir is the absolute directory path.
	Dir string
	// Name is the declared package name.
	Name string
}

// WalkFunc is invoked once per directory that declares a qualifying package.
type WalkFunc func(decl PackageDecl) error

// Option configures a Walker.
type Option func(*Walker)

// WithExcludes adds doublestar glob patterns matched against directory base
// names; matching directories are pruned from the walk.
func WithExcludes(patterns ...string) Option {
	return func(w *Walker) {
		w.excludes = append(w.excludes, patterns...)
	}
}

// NewWalker constructs a walker with the given logger and options.
func NewWalker(logger zerolog.Logger, options ...Option) *Walker {
	w := &Walker{logger: logger}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// Walker performs a depth-first traversal of a source root.  Hidden entries,
// build-output directories, and testdata are skipped.  Directory identity is
// tracked by device+inode during a walk so that symlink cycles terminate.
type Walker struct {
	logger   zerolog.Logger
	excludes []string
}

// fileID is the canonical identity of a directory.
type fileID struct {
	dev uint64
	ino uint64
}

// Walk traverses root depth-first, calling fn for each directory that yields
// a qualifying package declaration.  Transient per-directory and per-file
// errors are logged and skipped; an error from fn aborts the walk.
func (w *Walker) Walk(root string, fn WalkFunc) error {
	visited := make(map[fileID]bool)
	return w.walkDir(root, visited, fn)
}

func (w *Walker) walkDir(dir string, visited map[fileID]bool, fn WalkFunc) error {
	info, err := os.Stat(dir)
	if err != nil {
		w.logger.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable directory")
		return nil
	}
	if !info.IsDir() {
		return nil
	}

	id, ok := identityOf(info)
	if ok {
		if visited[id] {
			return nil
		}
		visited[id] = true
	}

	// os.ReadDir sorts by filename, so the first qualifying file per
	// directory is deterministic regardless of filesystem order.
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Debug().Err(err).Str("dir", dir).Msg("skipping unlistable directory")
		return nil
	}

	for _, entry := range entries {
		if entry.IsDir() || w.skip(entry.Name()) || !srcpkg.IsSourceFile(entry.Name()) {
			continue
		}
		name, ok := srcpkg.ExtractPackage(filepath.Join(dir, entry.Name()))
		if !ok || !srcpkg.Qualifies(name) {
			continue
		}
		if err := fn(PackageDecl{Dir: dir, Name: name}); err != nil {
			return err
		}
		break
	}

	for _, entry := range entries {
		if w.skip(entry.Name()) {
			continue
		}
		sub := filepath.Join(dir, entry.Name())
		if !entry.IsDir() {
			// Symlinked directories are followed; the visited set
			// guards against cycles.
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			target, err := os.Stat(sub)
			if err != nil || !target.IsDir() {
				continue
			}
		}
		if err := w.walkDir(sub, visited, fn); err != nil {
			return err
		}
	}

	return nil
}

// skip reports whether the named entry should be pruned from the walk.
func (w *Walker) skip(basename string) bool {
	if strings.HasPrefix(basename, ".") || strings.HasPrefix(basename, "_") {
		return true
	}
	if basename == "testdata" {
		return true
	}
	for _, pattern := range w.excludes {
		if ok, err := doublestar.Match(pattern, basename); err == nil && ok {
			return true
		}
	}
	return false
}

// identityOf returns the device+inode identity of a file, if available on
// this platform.
func identityOf(info os.FileInfo) (fileID, bool) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
	}
	return fileID{}, false
}
