// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-export/pkg/types"
)

// FetchSummaries requests one page of document summaries from the session's
// server-side result set and returns the raw XML body.
func (c *Client) FetchSummaries(ctx context.Context, s types.SearchSession, start, pageSize int) ([]byte, error) {
	params := url.Values{
		"query_key": {s.QueryKey},
		"WebEnv":    {s.WebEnv},
		"retstart":  {strconv.Itoa(start)},
		"retmax":    {strconv.Itoa(pageSize)},
		"retmode":   {"xml"},
	}
	body, err := c.get(ctx, c.endpoint("esummary.fcgi", params))
	if err != nil {
		return nil, fmt.Errorf("esummary request (retstart=%d): %w", start, err)
	}
	return body, nil
}

// esummary DocSum XML structures. Items nest: AuthorList is an Item whose
// children are the author name Items.
type docSum struct {
	ID    string    `xml:"Id"`
	Items []docItem `xml:"Item"`
}

type docItem struct {
	Name  string    `xml:"Name,attr"`
	Type  string    `xml:"Type,attr"`
	Text  string    `xml:",chardata"`
	Items []docItem `xml:"Item"`
}

// item returns the first direct child Item with the given Name.
func (d docSum) item(name string) (docItem, bool) {
	for _, it := range d.Items {
		if it.Name == name {
			return it, true
		}
	}
	return docItem{}, false
}

// ParseSummaries parses every DocSum in an esummary body, at any depth, into
// records in document order. A DocSum without Title or PubDate fails the
// whole page.
func ParseSummaries(body []byte) ([]types.ArticleRecord, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))

	var records []types.ArticleRecord
	var serverMsg string
	sawRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Op: "esummary", Err: err}
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true

		switch se.Name.Local {
		case "DocSum":
			var ds docSum
			if err := dec.DecodeElement(&ds, &se); err != nil {
				return nil, &ParseError{Op: "esummary", Err: err}
			}
			r, err := toRecord(ds)
			if err != nil {
				return nil, err
			}
			records = append(records, r)
		case "ERROR":
			var msg string
			if err := dec.DecodeElement(&msg, &se); err != nil {
				return nil, &ParseError{Op: "esummary", Err: err}
			}
			serverMsg = strings.TrimSpace(msg)
		}
	}

	if !sawRoot {
		return nil, &ParseError{Op: "esummary", Msg: "empty document"}
	}
	if len(records) == 0 && serverMsg != "" {
		return nil, &ParseError{Op: "esummary", Msg: serverMsg}
	}
	return records, nil
}

func toRecord(ds docSum) (types.ArticleRecord, error) {
	id := strings.TrimSpace(ds.ID)

	title, ok := ds.item("Title")
	if !ok {
		return types.ArticleRecord{}, &ParseError{Op: "esummary", Field: "Title", ID: id}
	}
	pubDate, ok := ds.item("PubDate")
	if !ok {
		return types.ArticleRecord{}, &ParseError{Op: "esummary", Field: "PubDate", ID: id}
	}

	authors := []string{}
	if list, ok := ds.item("AuthorList"); ok {
		for _, a := range list.Items {
			authors = append(authors, strings.TrimSpace(a.Text))
		}
	}

	var doi types.OptionalString
	if loc, ok := ds.item("ELocationID"); ok {
		doi = types.Some(strings.TrimSpace(loc.Text))
	}

	return types.NewArticleRecord(id, strings.TrimSpace(title.Text), authors, strings.TrimSpace(pubDate.Text), doi), nil
}
