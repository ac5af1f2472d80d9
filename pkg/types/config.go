// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for E-utilities requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-export/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EutilsConfig holds settings for talking to NCBI E-utilities.
type EutilsConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the E-utilities root (contains esearch.fcgi, esummary.fcgi).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Database is the Entrez database name (default "pubmed").
	Database string `json:"database" yaml:"database"`

	// Email is the contact identifier required by the NCBI usage policy.
	Email string `json:"email" yaml:"email"`

	// Tool names this program to NCBI alongside Email.
	Tool string `json:"tool,omitempty" yaml:"tool,omitempty"`
}

// ExportFormat selects the output table encoding.
type ExportFormat string

const (
	FormatCSV    ExportFormat = "csv"
	FormatSQLite ExportFormat = "sqlite"
	FormatCSL    ExportFormat = "csl"
)

// ExportConfig holds settings for writing the result table.
type ExportConfig struct {
	// Output is the destination file path (default "articles.csv").
	Output string `json:"output" yaml:"output"`

	// Format selects csv, sqlite or csl. Empty infers from the Output extension.
	Format ExportFormat `json:"format" yaml:"format"`

	// Manifest is an optional path for a YAML record of the run.
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}
