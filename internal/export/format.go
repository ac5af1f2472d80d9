// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pubmed-export/pkg/types"
)

// ResolveFormat returns the explicit format if set, otherwise infers it
// from the output extension: .db, .sqlite and .sqlite3 mean SQLite, .yaml
// and .yml mean CSL-YAML, anything else CSV.
func ResolveFormat(output string, format types.ExportFormat) (types.ExportFormat, error) {
	switch strings.ToLower(string(format)) {
	case "":
	case string(types.FormatCSV):
		return types.FormatCSV, nil
	case string(types.FormatSQLite):
		return types.FormatSQLite, nil
	case string(types.FormatCSL):
		return types.FormatCSL, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv, sqlite or csl)", format)
	}

	switch strings.ToLower(filepath.Ext(output)) {
	case ".db", ".sqlite", ".sqlite3":
		return types.FormatSQLite, nil
	case ".yaml", ".yml":
		return types.FormatCSL, nil
	default:
		return types.FormatCSV, nil
	}
}

// Write builds the table from records and dispatches it to the writer for
// format.
func Write(ctx context.Context, path string, format types.ExportFormat, records []types.ArticleRecord, runID string) error {
	switch format {
	case types.FormatSQLite:
		return WriteSQLite(ctx, path, NewTable(records), runID)
	case types.FormatCSV:
		return WriteCSV(path, NewTable(records))
	case types.FormatCSL:
		return WriteCSL(path, records)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
