package scanner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"pkgindex/pkg/index"
	"pkgindex/pkg/scanner"
)

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		filename := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0o755))
		require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	}
}

var recordOrder = cmpopts.SortSlices(func(a, b index.Record) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Path < b.Path
})

func TestNativeScan(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/html/template/template.go":            "package template\n",
		"src/encoding/json/json.go":                "package json\n",
		"src/cmd/gofmt/main.go":                    "package main\n",
		"src/app/vendor/github.com/y/lib/lib.go":   "package lib\n",
		"src/app/internal/version/version_test.go": "package version_test\n",
		"src/app/internal/version/version.go":      "package version\n",
	})

	scan := scanner.NewNativeScanner(zerolog.Nop())
	got, err := scan.Scan(context.Background(), []string{root})
	require.NoError(t, err)

	want := []index.Record{
		{Name: "json", Path: "encoding/json"},
		{Name: "lib", Path: "github.com/y/lib"},
		{Name: "template", Path: "html/template"},
		{Name: "version", Path: "app/internal/version"},
	}
	if diff := cmp.Diff(want, got, recordOrder); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNativeScanMultipleRoots(t *testing.T) {
	goroot := t.TempDir()
	gopath := t.TempDir()
	writeTree(t, goroot, map[string]string{
		"src/encoding/json/json.go": "package json\n",
	})
	writeTree(t, gopath, map[string]string{
		"src/github.com/x/json/json.go": "package json\n",
	})

	scan := scanner.NewNativeScanner(zerolog.Nop())
	got, err := scan.Scan(context.Background(), []string{goroot, gopath})
	require.NoError(t, err)

	ix := index.New()
	for _, rec := range got {
		ix.Put(rec.Name, rec.Path)
	}
	want := []string{"encoding/json", "github.com/x/json"}
	if diff := cmp.Diff(want, ix.Lookup("json")); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNativeScanCanceled(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/a/a.go": "package a\n",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scan := scanner.NewNativeScanner(zerolog.Nop())
	_, err := scan.Scan(ctx, []string{root})
	require.Error(t, err)
}
