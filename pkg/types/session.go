// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchSession is the server-side result set handle returned by esearch
// with history enabled. Every summary page is fetched against it.
type SearchSession struct {
	// WebEnv is the opaque web environment token.
	WebEnv string `json:"web_env" yaml:"web_env"`

	// QueryKey identifies the query within WebEnv.
	QueryKey string `json:"query_key" yaml:"query_key"`

	// Count is the total number of matching records.
	Count int `json:"count" yaml:"count"`
}
