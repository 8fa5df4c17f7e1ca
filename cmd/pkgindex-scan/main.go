// Command pkgindex-scan walks the root directories given as arguments and
// writes one package definition record per directory to stdout, with
// diagnostics on stderr.  It is the out-of-process form of the scanner for
// hosts that prefer to shell out.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/rs/zerolog"

	"pkgindex/pkg/collections"
	"pkgindex/pkg/index"
	"pkgindex/pkg/procutil"
	"pkgindex/pkg/scanner"
)

const debugEnv = procutil.EnvVar("PKGINDEX_DEBUG")

func main() {
	log.SetPrefix("pkgindex-scan: ")
	log.SetFlags(0) // don't print timestamps

	var excludes collections.StringSlice
	flag.Var(&excludes, "exclude", "glob pattern for directories to skip (repeatable)")
	flag.Parse()

	roots := flag.Args()
	if len(roots) == 0 {
		log.Fatal("usage: pkgindex-scan [-exclude PATTERN] ROOT...")
	}

	level := zerolog.WarnLevel
	if procutil.LookupBoolEnv(debugEnv, false) {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level)

	scan := scanner.NewNativeScanner(logger, scanner.WithExcludes(excludes...))
	recs, err := scan.Scan(context.Background(), roots)
	if err != nil {
		log.Fatal(err)
	}

	if err := index.WriteRecords(os.Stdout, recs); err != nil {
		log.Fatal(err)
	}
}
