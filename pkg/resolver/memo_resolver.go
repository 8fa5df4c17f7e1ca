package resolver

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NewMemoResolver constructs a memoizing resolver over next with an LRU cache
// of the given size.
func NewMemoResolver(next ImportResolver, size int) (*MemoResolver, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &MemoResolver{next: next, cache: cache}, nil
}

// MemoResolver implements ImportResolver, memoizing successful single-match
// resolutions.  Not-found and ambiguous outcomes are never cached: both are
// expected to change after a reload.
type MemoResolver struct {
	next  ImportResolver
	cache *lru.Cache[string, string]
}

// Resolve implements the ImportResolver interface.
func (r *MemoResolver) Resolve(ctx context.Context, name string) (string, error) {
	if path, ok := r.cache.Get(name); ok {
		return path, nil
	}
	path, err := r.next.Resolve(ctx, name)
	if err != nil {
		return "", err
	}
	r.cache.Add(name, path)
	return path, nil
}

// Reload implements the ImportResolver interface, purging memoized entries
// before delegating.
func (r *MemoResolver) Reload(ctx context.Context) error {
	r.cache.Purge()
	return r.next.Reload(ctx)
}
