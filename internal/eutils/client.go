// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils talks to the NCBI E-utilities API: esearch opens a
// server-side result set, esummary pages through it.
package eutils

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-export/internal/httputil"
	"github.com/pdiddy/pubmed-export/pkg/types"
)

// defaultBaseURL is the E-utilities root. Declared as a var so tests
// can substitute an httptest server.
var defaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const defaultDatabase = "pubmed"

// Client issues esearch and esummary requests. Requests are sequential and
// never retried.
type Client struct {
	HTTP   *http.Client
	Config types.EutilsConfig
	Logger zerolog.Logger
}

// NewClient returns a Client with an http.Client honoring cfg.Timeout.
func NewClient(cfg types.EutilsConfig, logger zerolog.Logger) *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}
}

func (c *Client) baseURL() string {
	if c.Config.BaseURL != "" {
		return strings.TrimSuffix(c.Config.BaseURL, "/")
	}
	return defaultBaseURL
}

func (c *Client) database() string {
	if c.Config.Database != "" {
		return c.Config.Database
	}
	return defaultDatabase
}

// endpoint builds <base>/<util> with params plus the db, email and tool
// parameters every request carries.
func (c *Client) endpoint(util string, params url.Values) string {
	params.Set("db", c.database())
	params.Set("email", c.Config.Email)
	if c.Config.Tool != "" {
		params.Set("tool", c.Config.Tool)
	}
	return c.baseURL() + "/" + util + "?" + params.Encode()
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c.Logger.Debug().Str("url", reqURL).Msg("GET")
	body, err := httputil.Get(ctx, httpClient, reqURL, c.Config.UserAgent)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug().Int("bytes", len(body)).Msg("response received")
	return body, nil
}
