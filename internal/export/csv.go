// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteCSV writes the table as comma-separated UTF-8 with a header row. The
// file is written under a temporary name and renamed into place, so a failed
// write leaves an existing file at path untouched.
func WriteCSV(path string, t Table) error {
	return writeAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return err
		}
		return cw.Error()
	})
}

// ReadCSV parses a file written by WriteCSV back into a Table.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(Columns)
	all, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(all) == 0 {
		return Table{}, fmt.Errorf("parsing %s: missing header row", path)
	}
	return Table{Columns: all[0], Rows: all[1:]}, nil
}

// writeAtomic writes via fill into a temp file in path's directory, then
// renames it over path.
func writeAtomic(path string, fill func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", ErrWrite, dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := fill(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}
