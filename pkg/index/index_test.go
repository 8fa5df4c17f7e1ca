package index_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"pkgindex/pkg/index"
)

func TestIndexPut(t *testing.T) {
	ix := index.New()

	assert.True(t, ix.Put("template", "html/template"))
	assert.True(t, ix.Put("template", "text/template"))
	assert.False(t, ix.Put("template", "html/template"), "re-adding an existing pair is a no-op")

	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, []string{"html/template", "text/template"}, ix.Lookup("template"))
	assert.Nil(t, ix.Lookup("nosuchpackage"))
}

func TestIndexRecordsSorted(t *testing.T) {
	ix := index.New()
	ix.Put("zlib", "compress/zlib")
	ix.Put("json", "github.com/x/json")
	ix.Put("json", "encoding/json")

	want := []index.Record{
		{Name: "json", Path: "encoding/json"},
		{Name: "json", Path: "github.com/x/json"},
		{Name: "zlib", Path: "compress/zlib"},
	}
	if diff := cmp.Diff(want, ix.Records()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIndexNames(t *testing.T) {
	ix := index.New()
	ix.Put("json", "encoding/json")
	ix.Put("ast", "go/ast")

	assert.Equal(t, []string{"ast", "json"}, ix.Names())
}
