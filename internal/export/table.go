// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export turns harvested article records into a fixed-column table
// and writes it to disk as CSV or SQLite, plus an optional YAML manifest.
package export

import (
	"errors"

	"github.com/pdiddy/pubmed-export/pkg/types"
)

// ErrWrite wraps every failure to write an output file.
var ErrWrite = errors.New("writing output")

// Columns is the fixed column order of the output table.
var Columns = []string{"Title", "Authors", "Publication Date", "DOI", "Citation"}

// Table is the in-memory output: a header and one row per record, in
// accumulation order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// NewTable builds the output table from records. Authors are joined with ", ".
func NewTable(records []types.ArticleRecord) Table {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Title,
			types.JoinAuthors(r.Authors),
			r.PublicationDate,
			r.DOI,
			r.Citation,
		}
	}
	cols := make([]string, len(Columns))
	copy(cols, Columns)
	return Table{Columns: cols, Rows: rows}
}
