package index

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// The persisted index is a plain-text sequence of records, one per line, each
// a tab-separated (name, path) pair.  Blank lines and '#' comments are
// tolerated on read; anything else malformed is an error so a corrupt cache
// is never silently trusted.

// WriteRecords writes definition records to w, one per line.
func WriteRecords(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", rec.Name, rec.Path); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadRecords parses a record stream produced by WriteRecords.
func ReadRecords(r io.Reader) ([]Record, error) {
	var recs []Record
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, path, ok := strings.Cut(line, "\t")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("malformed record at line %d: %q", lineno, line)
		}
		recs = append(recs, Record{Name: name, Path: path})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return recs, nil
}

// WriteFile persists the index to filename, fully replacing any prior
// contents.  The write goes through a temp file and rename so a failed build
// never leaves a partial index behind.
func WriteFile(filename string, ix *Index) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp index file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteRecords(tmp, ix.Records()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("replacing %s: %w", filename, err)
	}
	return nil
}

// ReadFile loads a persisted index from filename.
func ReadFile(filename string) (*Index, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	defer f.Close()

	recs, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	ix := New()
	for _, rec := range recs {
		ix.Put(rec.Name, rec.Path)
	}
	return ix, nil
}
