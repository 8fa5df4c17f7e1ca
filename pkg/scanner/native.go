// Package scanner provides the implementations of the index.Scanner
// capability: an in-process directory walk and an external helper process.
package scanner

import (
	"context"

	"github.com/rs/zerolog"

	"pkgindex/pkg/importpath"
	"pkgindex/pkg/index"
	"pkgindex/pkg/walker"
)

// Option configures a scanner implementation.
type Option func(*options)

type options struct {
	excludes []string
}

// WithExcludes adds glob patterns for directories to prune during the scan.
func WithExcludes(patterns ...string) Option {
	return func(o *options) {
		o.excludes = append(o.excludes, patterns...)
	}
}

// NewNativeScanner constructs the in-process scanner implementation.
func NewNativeScanner(logger zerolog.Logger, opts ...Option) *NativeScanner {
	s := &NativeScanner{logger: logger}
	for _, opt := range opts {
		opt(&s.options)
	}
	return s
}

// NativeScanner implements index.Scanner with an in-process walk: traverse
// each root, extract one package declaration per directory, and normalize the
// directory to its import path.
type NativeScanner struct {
	logger  zerolog.Logger
	options options
}

// Scan implements the index.Scanner interface.
func (s *NativeScanner) Scan(ctx context.Context, roots []string) ([]index.Record, error) {
	normalizer := importpath.NewNormalizer(roots)
	w := walker.NewWalker(s.logger, walker.WithExcludes(s.options.excludes...))

	var recs []index.Record
	for _, root := range roots {
		err := w.Walk(root, func(decl walker.PackageDecl) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs = append(recs, index.Record{
				Name: decl.Name,
				Path: normalizer.Normalize(decl.Dir),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return recs, nil
}
