package index_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgindex/pkg/index"
)

func TestRecordsRoundTrip(t *testing.T) {
	recs := []index.Record{
		{Name: "json", Path: "encoding/json"},
		{Name: "json", Path: "github.com/x/json"},
		{Name: "template", Path: "html/template"},
	}

	var buf bytes.Buffer
	require.NoError(t, index.WriteRecords(&buf, recs))

	got, err := index.ReadRecords(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(recs, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReadRecordsTolerant(t *testing.T) {
	input := "# comment\n\njson\tencoding/json\n   \n"
	got, err := index.ReadRecords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []index.Record{{Name: "json", Path: "encoding/json"}}, got)
}

func TestReadRecordsMalformed(t *testing.T) {
	for name, input := range map[string]string{
		"no separator": "jsonencoding/json\n",
		"empty name":   "\tencoding/json\n",
		"empty path":   "json\t\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := index.ReadRecords(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	ix := index.New()
	ix.Put("template", "html/template")
	ix.Put("template", "text/template")
	ix.Put("json", "encoding/json")

	filename := filepath.Join(t.TempDir(), ".pkgindex")
	require.NoError(t, index.WriteFile(filename, ix))

	got, err := index.ReadFile(filename)
	require.NoError(t, err)
	if diff := cmp.Diff(ix.Records(), got.Records()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

// Persisting the same index twice yields byte-identical files, regardless of
// insertion order.
func TestWriteFileDeterministic(t *testing.T) {
	dir := t.TempDir()

	first := index.New()
	first.Put("json", "encoding/json")
	first.Put("json", "github.com/x/json")

	second := index.New()
	second.Put("json", "github.com/x/json")
	second.Put("json", "encoding/json")

	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, index.WriteFile(a, first))
	require.NoError(t, index.WriteFile(b, second))

	contentA, err := os.ReadFile(a)
	require.NoError(t, err)
	contentB, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, contentA, contentB)
}

func TestReadFileAbsent(t *testing.T) {
	_, err := index.ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
