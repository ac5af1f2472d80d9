// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-export/internal/httputil"
	"github.com/pdiddy/pubmed-export/pkg/types"
)

func TestParseSummaries(t *testing.T) {
	records, err := ParseSummaries([]byte(sampleSummaryXML))
	require.NoError(t, err)
	require.Len(t, records, 2)

	r0 := records[0]
	assert.Equal(t, "39000001", r0.PMID)
	assert.Equal(t, "Memory Study", r0.Title)
	assert.Equal(t, []string{"Silva J", "Souza A"}, r0.Authors)
	assert.Equal(t, "2021 Jan", r0.PublicationDate)
	assert.Equal(t, "10.1/xyz", r0.DOI)
	assert.Equal(t, "Silva J, Souza A (2021 Jan). Memory Study. DOI: 10.1/xyz", r0.Citation)

	r1 := records[1]
	assert.Equal(t, "Anonymous & Untitled, Part 2", r1.Title)
	assert.Empty(t, r1.Authors)
	assert.Equal(t, "N/A", r1.DOI)
	assert.Equal(t, " (2022). Anonymous & Untitled, Part 2. DOI: N/A", r1.Citation)
}

func TestParseSummariesNestedDocSum(t *testing.T) {
	body := `<eSummaryResult><Wrapper><DocSum><Id>1</Id>
<Item Name="Title">T</Item><Item Name="PubDate">2020</Item></DocSum></Wrapper></eSummaryResult>`
	records, err := ParseSummaries([]byte(body))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "T", records[0].Title)
}

func TestParseSummariesEmptyPage(t *testing.T) {
	records, err := ParseSummaries([]byte(`<eSummaryResult></eSummaryResult>`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseSummariesErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing title",
			body:    `<eSummaryResult><DocSum><Id>42</Id><Item Name="PubDate">2020</Item></DocSum></eSummaryResult>`,
			wantErr: "document 42: missing Title",
		},
		{
			name:    "missing pubdate",
			body:    `<eSummaryResult><DocSum><Id>43</Id><Item Name="Title">T</Item></DocSum></eSummaryResult>`,
			wantErr: "document 43: missing PubDate",
		},
		{
			name:    "malformed xml",
			body:    `<eSummaryResult><DocSum><Id>1</Id>`,
			wantErr: "malformed response",
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: "empty document",
		},
		{
			name:    "server error",
			body:    `<eSummaryResult><ERROR>Invalid query_key</ERROR></eSummaryResult>`,
			wantErr: "Invalid query_key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSummaries([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClientFetchSummaries(t *testing.T) {
	var got url.Values
	var path string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		got = r.URL.Query()
		fmt.Fprint(w, sampleSummaryXML)
	}))
	defer ts.Close()

	s := types.SearchSession{WebEnv: "MCID_abc123", QueryKey: "1", Count: 250}
	body, err := testClient(ts).FetchSummaries(context.Background(), s, 200, 100)
	require.NoError(t, err)
	assert.Equal(t, sampleSummaryXML, string(body))

	assert.Equal(t, "/esummary.fcgi", path)
	assert.Equal(t, "pubmed", got.Get("db"))
	assert.Equal(t, "1", got.Get("query_key"))
	assert.Equal(t, "MCID_abc123", got.Get("WebEnv"))
	assert.Equal(t, "200", got.Get("retstart"))
	assert.Equal(t, "100", got.Get("retmax"))
	assert.Equal(t, "xml", got.Get("retmode"))
	assert.Equal(t, "someone@example.edu", got.Get("email"))
}

func TestClientFetchSummariesHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := testClient(ts).FetchSummaries(context.Background(), types.SearchSession{}, 100, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, httputil.ErrStatus)
	assert.Contains(t, err.Error(), "retstart=100")
}
