// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-export/pkg/types"
)

// esearch XML structure. Only direct children of the root are read, so the
// per-term Count elements inside TranslationStack are ignored.
type esearchResult struct {
	Count    *string `xml:"Count"`
	QueryKey *string `xml:"QueryKey"`
	WebEnv   *string `xml:"WebEnv"`
	Error    string  `xml:"ERROR"`
}

// Search runs esearch for the full query expression with history enabled
// and retmax=1: only the session handle and the total count are needed.
func (c *Client) Search(ctx context.Context, expr string) (types.SearchSession, error) {
	params := url.Values{
		"term":       {expr},
		"retmax":     {"1"},
		"usehistory": {"y"},
	}
	body, err := c.get(ctx, c.endpoint("esearch.fcgi", params))
	if err != nil {
		return types.SearchSession{}, fmt.Errorf("esearch request: %w", err)
	}
	return ParseSearch(body)
}

// ParseSearch extracts WebEnv, QueryKey and Count from an esearch response.
func ParseSearch(body []byte) (types.SearchSession, error) {
	var res esearchResult
	if err := xml.Unmarshal(body, &res); err != nil {
		return types.SearchSession{}, &ParseError{Op: "esearch", Err: err}
	}
	serverMsg := strings.TrimSpace(res.Error)

	fields := []struct {
		name string
		val  *string
	}{
		{"WebEnv", res.WebEnv},
		{"QueryKey", res.QueryKey},
		{"Count", res.Count},
	}
	for _, f := range fields {
		if f.val == nil {
			return types.SearchSession{}, &ParseError{Op: "esearch", Field: f.name, Msg: serverMsg}
		}
	}

	count, err := strconv.Atoi(strings.TrimSpace(*res.Count))
	if err != nil || count < 0 {
		return types.SearchSession{}, &ParseError{Op: "esearch", Msg: fmt.Sprintf("invalid Count %q", *res.Count)}
	}

	return types.SearchSession{
		WebEnv:   strings.TrimSpace(*res.WebEnv),
		QueryKey: strings.TrimSpace(*res.QueryKey),
		Count:    count,
	}, nil
}
