package main

import (
	"os"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"pkgindex/pkg/index"
	"pkgindex/pkg/resolver"
	"pkgindex/pkg/scanner"
)

// memoCacheSize bounds the per-process memoization of resolved names.
const memoCacheSize = 256

// newBuilder assembles the scanner and index builder from configuration.
func newBuilder(v *viper.Viper, logger zerolog.Logger) *index.Builder {
	roots := v.GetStringSlice("root")

	var scan index.Scanner
	excludes := scanner.WithExcludes(v.GetStringSlice("exclude")...)
	if v.GetBool("exec_scanner") {
		scan = scanner.NewExecScanner(logger, excludes)
	} else {
		scan = scanner.NewNativeScanner(logger, excludes)
	}

	options := []index.BuilderOption{
		index.WithProgress(mobyprogress.NewProgressOutput(os.Stderr)),
	}
	if indexFile := v.GetString("index_file"); indexFile != "" {
		options = append(options, index.WithIndexFile(indexFile))
	}

	return index.NewBuilder(logger, scan, roots, options...)
}

// newResolver assembles the full resolver chain: memoization over the lazy
// index-backed resolver.
func newResolver(v *viper.Viper, logger zerolog.Logger) (resolver.ImportResolver, error) {
	r := resolver.NewResolver(logger, newBuilder(v, logger))
	return resolver.NewMemoResolver(r, memoCacheSize)
}
