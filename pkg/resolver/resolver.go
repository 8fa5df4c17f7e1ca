// Package resolver turns short package names into fully-qualified import
// paths using a lazily-loaded package index.
package resolver

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"pkgindex/pkg/index"
)

// ImportResolver is the interface exposed to the host collaborator.
type ImportResolver interface {
	// Resolve returns the import path for name.  Zero candidates yield a
	// *NotFoundError; several yield an *AmbiguousImportError carrying the
	// candidate set.
	Resolve(ctx context.Context, name string) (string, error)
	// Reload clears the in-memory index and forces a fresh
	// build-and-persist cycle.
	Reload(ctx context.Context) error
}

// IndexLoader supplies the resolver's index.  *index.Builder is the
// production implementation.
type IndexLoader interface {
	Load(ctx context.Context) (*index.Index, error)
	Build(ctx context.Context) (*index.Index, error)
}

// NewResolver constructs a resolver over the given loader.
func NewResolver(logger zerolog.Logger, loader IndexLoader) *Resolver {
	return &Resolver{
		logger: logger,
		loader: loader,
	}
}

// Resolver implements ImportResolver.  The index is loaded at most once per
// process lifetime unless explicitly reloaded; the mutex makes the
// check-empty/build/populate transition atomic so concurrent callers cannot
// start duplicate builds.
type Resolver struct {
	logger zerolog.Logger
	loader IndexLoader

	mu sync.Mutex
	ix *index.Index
}

// Resolve implements the ImportResolver interface.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	ix, err := r.ensureLoaded(ctx)
	if err != nil {
		return "", err
	}

	paths := ix.Lookup(name)
	switch len(paths) {
	case 0:
		return "", &NotFoundError{Name: name}
	case 1:
		return paths[0], nil
	default:
		return "", &AmbiguousImportError{Name: name, Candidates: paths}
	}
}

// Reload implements the ImportResolver interface.  On build failure the
// previous in-memory index is left intact.
func (r *Resolver) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ix, err := r.loader.Build(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("index rebuild failed; keeping previous index")
		return err
	}
	r.ix = ix
	return nil
}

func (r *Resolver) ensureLoaded(ctx context.Context) (*index.Index, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ix != nil {
		return r.ix, nil
	}
	ix, err := r.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	r.ix = ix
	return ix, nil
}
