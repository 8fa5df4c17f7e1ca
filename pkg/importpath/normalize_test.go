package importpath_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pkgindex/pkg/importpath"
)

func TestNormalize(t *testing.T) {
	for name, tc := range map[string]struct {
		roots []string
		dir   string
		want  string
	}{
		"stdlib root": {
			roots: []string{"/go"},
			dir:   "/go/src/html/template",
			want:  "html/template",
		},
		"gopath root": {
			roots: []string{"/go", "/home/u/gopath"},
			dir:   "/home/u/gopath/src/github.com/x/json",
			want:  "github.com/x/json",
		},
		"vendored dependency": {
			roots: []string{"/go", "/home/u/gopath"},
			dir:   "/home/u/gopath/src/github.com/x/app/vendor/github.com/y/lib",
			want:  "github.com/y/lib",
		},
		"nested vendor uses innermost": {
			roots: []string{"/go"},
			dir:   "/go/src/a/vendor/b/vendor/c/d",
			want:  "c/d",
		},
		"vendor wins over root prefix": {
			roots: []string{"/go"},
			dir:   "/go/src/app/vendor/github.com/y/lib",
			want:  "github.com/y/lib",
		},
		"trailing slash on root": {
			roots: []string{"/go/"},
			dir:   "/go/src/net/http",
			want:  "net/http",
		},
		"no matching root falls back to the directory": {
			roots: []string{"/go"},
			dir:   "/somewhere/else/pkg",
			want:  "/somewhere/else/pkg",
		},
		"source subdirectory itself is unchanged": {
			roots: []string{"/go"},
			dir:   "/go/src",
			want:  "/go/src",
		},
	} {
		t.Run(name, func(t *testing.T) {
			n := importpath.NewNormalizer(tc.roots)
			got := n.Normalize(tc.dir)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
