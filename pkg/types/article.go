// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-export pipeline:
// the search session handed out by esearch, the optional values parsed from
// document summaries, and the flat article record written to the output table.
package types

import "strings"

// DOIPlaceholder is written in place of a DOI when a summary has no ELocationID.
const DOIPlaceholder = "N/A"

// OptionalString is a string that may be absent from a source document.
// The zero value is absent.
type OptionalString struct {
	Value string
	Valid bool
}

// Some returns a present OptionalString holding v.
func Some(v string) OptionalString {
	return OptionalString{Value: v, Valid: true}
}

// Or returns the value if present, otherwise fallback.
func (o OptionalString) Or(fallback string) string {
	if !o.Valid {
		return fallback
	}
	return o.Value
}

// ArticleRecord is one flattened document summary.
type ArticleRecord struct {
	// PMID is the PubMed identifier of the summary (DocSum <Id>).
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Authors lists the author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// PublicationDate is the free-form PubDate string (e.g. "2021 Jan").
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// DOI is the ELocationID, or DOIPlaceholder when the summary had none.
	DOI string `json:"doi" yaml:"doi"`

	// Citation is derived from the other fields; see Citation.
	Citation string `json:"citation" yaml:"citation"`
}

// NewArticleRecord builds a record from parsed fields, resolving a missing
// DOI to DOIPlaceholder and deriving the citation.
func NewArticleRecord(pmid, title string, authors []string, pubDate string, doi OptionalString) ArticleRecord {
	d := doi.Or(DOIPlaceholder)
	if authors == nil {
		authors = []string{}
	}
	return ArticleRecord{
		PMID:            pmid,
		Title:           title,
		Authors:         authors,
		PublicationDate: pubDate,
		DOI:             d,
		Citation:        Citation(authors, pubDate, title, d),
	}
}

// JoinAuthors joins author names with ", ".
func JoinAuthors(authors []string) string {
	return strings.Join(authors, ", ")
}

// Citation formats "<authors> (<date>). <title>. DOI: <doi>".
func Citation(authors []string, pubDate, title, doi string) string {
	return JoinAuthors(authors) + " (" + pubDate + "). " + title + ". DOI: " + doi
}
