// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Manifest is the on-disk record of one harvest run: what was asked, what
// the server reported, and where the table went.
type Manifest struct {
	RunID  string         `yaml:"run_id"`
	Query  ManifestQuery  `yaml:"query"`
	Result ManifestResult `yaml:"result"`
	Output ManifestOutput `yaml:"output"`
}

// ManifestQuery stores the query parameters in a serializable form.
type ManifestQuery struct {
	Term       string `yaml:"term"`
	Expression string `yaml:"expression"`
	StartYear  int    `yaml:"start_year"`
	EndYear    int    `yaml:"end_year"`
	PageSize   int    `yaml:"page_size"`
	Email      string `yaml:"email"`
}

// ManifestResult stores result statistics.
type ManifestResult struct {
	Total     int       `yaml:"total"`
	Fetched   int       `yaml:"fetched"`
	Pages     int       `yaml:"pages"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ManifestOutput records the written table.
type ManifestOutput struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// WriteManifest saves m as YAML at path.
func WriteManifest(path string, m Manifest) error {
	return writeAtomic(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&m); err != nil {
			return fmt.Errorf("marshaling manifest: %w", err)
		}
		return enc.Close()
	})
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
