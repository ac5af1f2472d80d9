// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-export/pkg/types"
)

// CSLItem is a bibliographic entry in CSL (Citation Style Language) form,
// consumable by Pandoc and reference managers.
type CSLItem struct {
	ID     string    `yaml:"id"`
	Type   string    `yaml:"type"`
	Title  string    `yaml:"title"`
	Author []CSLName `yaml:"author,omitempty"`
	Issued *CSLDate  `yaml:"issued,omitempty"`
	DOI    string    `yaml:"DOI,omitempty"`
	PMID   string    `yaml:"PMID,omitempty"`
}

// CSLName is a person's name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes records as a CSL-YAML list. It works on records rather
// than the Table because the table has already flattened authors.
func WriteCSL(path string, records []types.ArticleRecord) error {
	return writeAtomic(path, func(w io.Writer) error {
		return encodeCSL(w, records)
	})
}

func encodeCSL(w io.Writer, records []types.ArticleRecord) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(r types.ArticleRecord) CSLItem {
	item := CSLItem{
		ID:    r.PMID,
		Type:  "article-journal",
		Title: r.Title,
		DOI:   cslDOI(r.DOI),
		PMID:  r.PMID,
	}
	if item.ID == "" {
		item.ID = item.DOI
	}
	for _, a := range r.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}
	if parts := parsePubDate(r.PublicationDate); len(parts) > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{parts}}
	}
	return item
}

// parseAuthorName splits a PubMed summary name ("Silva JA") into family and
// initials on the last space. Single-token names (collectives) use literal.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Family: name[:idx],
		Given:  name[idx+1:],
	}
}

// cslDOI returns the bare DOI from an ELocationID such as "doi: 10.1/x",
// or "" for the placeholder and non-DOI locations (e.g. "pii: S0...").
func cslDOI(loc string) string {
	loc = strings.TrimSpace(loc)
	if rest, ok := strings.CutPrefix(strings.ToLower(loc), "doi:"); ok {
		return strings.TrimSpace(loc[len(loc)-len(rest):])
	}
	if strings.HasPrefix(loc, "10.") {
		return loc
	}
	return ""
}

var months = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// parsePubDate reads the year, month and day from a free-form PubDate
// ("2021", "2021 Jan", "2021 Jan 5", "2021 Jan-Feb"). Whatever cannot be
// read is dropped; a missing year yields nil.
func parsePubDate(s string) []int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}
	parts := []int{year}
	if len(fields) < 2 || len(fields[1]) < 3 {
		return parts
	}
	month, ok := months[strings.ToLower(fields[1][:3])]
	if !ok {
		return parts
	}
	parts = append(parts, month)
	if len(fields) >= 3 {
		if day, err := strconv.Atoi(fields[2]); err == nil && day >= 1 && day <= 31 {
			parts = append(parts, day)
		}
	}
	return parts
}
