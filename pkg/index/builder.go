package index

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"
)

// DefaultIndexBasename is the persisted index filename, created under the
// first configured root unless overridden.
const DefaultIndexBasename = ".pkgindex"

// Scanner produces definition records for a set of source roots.  The
// production implementations live in pkg/scanner; tests substitute fakes.
type Scanner interface {
	// Scan walks the given roots and returns one record per directory
	// that declares a qualifying package.
	Scan(ctx context.Context, roots []string) ([]Record, error)
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithProgress directs per-root build progress to the given output.
func WithProgress(output mobyprogress.Output) BuilderOption {
	return func(b *Builder) {
		b.progress = output
	}
}

// WithIndexFile overrides the persisted index location.
func WithIndexFile(filename string) BuilderOption {
	return func(b *Builder) {
		b.indexFile = filename
	}
}

// NewBuilder constructs a builder that scans the given roots in order.
func NewBuilder(logger zerolog.Logger, scanner Scanner, roots []string, options ...BuilderOption) *Builder {
	b := &Builder{
		logger:   logger,
		scanner:  scanner,
		roots:    roots,
		progress: mobyprogress.NewProgressOutput(io.Discard),
	}
	if len(roots) > 0 {
		b.indexFile = filepath.Join(roots[0], DefaultIndexBasename)
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Builder aggregates scan results across the configured roots into an Index
// and persists it.
type Builder struct {
	logger    zerolog.Logger
	scanner   Scanner
	roots     []string
	indexFile string
	progress  mobyprogress.Output
}

// IndexFile returns the persisted index location.
func (b *Builder) IndexFile() string {
	return b.indexFile
}

// Build scans every configured root in caller-supplied order, aggregates the
// records, and persists the result.  A scan failure aborts the build before
// anything is written.
func (b *Builder) Build(ctx context.Context) (*Index, error) {
	if err := b.checkRoots(); err != nil {
		return nil, err
	}

	ix := New()
	for i, root := range b.roots {
		writeScanProgress(b.progress, i, len(b.roots), root)
		recs, err := b.scanner.Scan(ctx, []string{root})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
		for _, rec := range recs {
			ix.Put(rec.Name, rec.Path)
		}
	}
	writeScanDone(b.progress, len(b.roots))

	if err := WriteFile(b.indexFile, ix); err != nil {
		return nil, err
	}

	b.logger.Debug().
		Int("names", ix.Len()).
		Str("file", b.indexFile).
		Msg("persisted package index")

	return ix, nil
}

// Load returns the persisted index if one exists, building and persisting it
// otherwise.
func (b *Builder) Load(ctx context.Context) (*Index, error) {
	if err := b.checkRoots(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(b.indexFile); err == nil {
		ix, err := ReadFile(b.indexFile)
		if err != nil {
			return nil, err
		}
		b.logger.Debug().
			Int("names", ix.Len()).
			Str("file", b.indexFile).
			Msg("loaded package index")
		return ix, nil
	}
	return b.Build(ctx)
}

// checkRoots surfaces configuration errors before any scan starts; the core
// never guesses a default root.
func (b *Builder) checkRoots() error {
	if len(b.roots) == 0 {
		return fmt.Errorf("no source roots configured")
	}
	for _, root := range b.roots {
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("source root %s: %w", root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("source root %s: not a directory", root)
		}
	}
	return nil
}
