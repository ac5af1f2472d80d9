// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads per-user values that should not live in a shared
// config file. Each regular file in the directory is one entry: the file
// name is the key and the trimmed contents are the value.
//
// Recognized keys: ncbi-email.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EmailKey holds the NCBI contact address used when no --email or config
// value is given.
const EmailKey = "ncbi-email"

// Secrets maps key file names to their trimmed contents.
type Secrets map[string]string

// Get returns the value for key, or "" when absent.
func (s Secrets) Get(key string) string {
	return s[key]
}

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error and yields an empty set. Unreadable files are reported on
// warn and skipped.
func Load(dir string, warn io.Writer) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			s[name] = v
		}
	}
	return s, nil
}
