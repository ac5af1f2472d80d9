// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest runs the search, page, extract, export sequence against
// E-utilities. One run is strictly sequential: a single search opens a
// server-side result set, then summary pages are fetched one at a time in
// ascending offset order and their records accumulated for export.
package harvest

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-export/internal/eutils"
	"github.com/pdiddy/pubmed-export/internal/export"
	"github.com/pdiddy/pubmed-export/internal/observability"
	"github.com/pdiddy/pubmed-export/pkg/types"
)

const (
	// DefaultPageSize is the number of summaries requested per page.
	DefaultPageSize = 100

	// MaxPageSize is the largest retmax esummary accepts.
	MaxPageSize = 10000

	// DefaultOutput is the output path when none is given.
	DefaultOutput = "articles.csv"
)

// Fetcher is the E-utilities surface a run needs. *eutils.Client implements it.
type Fetcher interface {
	Search(ctx context.Context, expr string) (types.SearchSession, error)
	FetchSummaries(ctx context.Context, s types.SearchSession, start, pageSize int) ([]byte, error)
}

// Params holds the inputs of one run.
type Params struct {
	// Term is the search keyword or expression.
	Term string

	// Email is the contact identifier; recorded in the manifest.
	Email string

	// Years is the lookback window; 0 searches the current year only.
	Years int

	// PageSize is the esummary retmax per request.
	PageSize int

	// Export selects where and how the table is written. An empty Output
	// skips writing and only returns the table.
	Export types.ExportConfig

	// Now returns the current time; nil means time.Now.
	Now func() time.Time

	// Logger receives diagnostics; the zero value discards them.
	Logger zerolog.Logger
}

// NewParams returns Params with the default window, page size and output.
func NewParams(term, email string) Params {
	return Params{
		Term:     term,
		Email:    email,
		Years:    eutils.DefaultYears,
		PageSize: DefaultPageSize,
		Export:   types.ExportConfig{Output: DefaultOutput},
		Logger:   zerolog.Nop(),
	}
}

// Validate reports parameter errors before any request is made.
func (p Params) Validate() error {
	if p.Term == "" {
		return fmt.Errorf("search term is empty")
	}
	if p.Years < 0 {
		return fmt.Errorf("years must be >= 0, got %d", p.Years)
	}
	if p.PageSize <= 0 || p.PageSize > MaxPageSize {
		return fmt.Errorf("page size must be between 1 and %d, got %d", MaxPageSize, p.PageSize)
	}
	return nil
}

// Result is what a completed run hands back to the caller.
type Result struct {
	RunID      string
	Expression string
	Window     eutils.Window
	Session    types.SearchSession
	Records    []types.ArticleRecord
	Table      export.Table
	Pages      int
	Format     types.ExportFormat
}

// Run executes one harvest. Progress lines go to progress. Any transport,
// parse or write error aborts the run; no output file is written unless
// every page was fetched and parsed. The manifest is written after the
// table, so a manifest write error is returned with the new output file
// already in place.
func Run(ctx context.Context, f Fetcher, p Params, progress io.Writer) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	var format types.ExportFormat
	if p.Export.Output != "" {
		var err error
		format, err = export.ResolveFormat(p.Export.Output, p.Export.Format)
		if err != nil {
			return Result{}, err
		}
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	res := Result{
		RunID:  uuid.NewString(),
		Window: eutils.DateWindow(now(), p.Years),
		Format: format,
	}
	res.Expression = eutils.BuildTerm(p.Term, res.Window)
	log := observability.WithSearchContext(p.Logger, res.RunID, p.Term)

	session, err := f.Search(ctx, res.Expression)
	if err != nil {
		return Result{}, fmt.Errorf("search: %w", err)
	}
	res.Session = session
	fmt.Fprintf(progress, "Total articles found: %d\n", session.Count)
	log.Debug().Str("expression", res.Expression).Int("count", session.Count).
		Int("pages", PageCount(session.Count, p.PageSize)).Msg("search session opened")

	records, pages, err := fetchAll(ctx, f, session, p.PageSize, progress, log)
	if err != nil {
		return Result{}, err
	}
	res.Records = records
	res.Pages = pages
	res.Table = export.NewTable(records)

	if len(records) != session.Count {
		log.Warn().Int("fetched", len(records)).Int("count", session.Count).Msg("record count differs from search count")
	}

	if p.Export.Output != "" {
		if err := export.Write(ctx, p.Export.Output, format, records, res.RunID); err != nil {
			return Result{}, err
		}
		log.Info().Str("path", p.Export.Output).Str("format", string(format)).Int("rows", res.Table.Len()).Msg("table written")
	}

	if p.Export.Manifest != "" {
		if err := export.WriteManifest(p.Export.Manifest, manifest(p, res, now())); err != nil {
			return Result{}, fmt.Errorf("writing manifest: %w", err)
		}
	}

	return res, nil
}

// FetchArticles searches for term over the last years, fetches every
// summary in pages of pageSize, writes DefaultOutput as CSV and returns the
// table. Progress is printed to stdout.
func FetchArticles(ctx context.Context, term, email string, years, pageSize int) (export.Table, error) {
	client := eutils.NewClient(types.EutilsConfig{Email: email}, zerolog.Nop())
	p := NewParams(term, email)
	p.Years = years
	p.PageSize = pageSize
	res, err := Run(ctx, client, p, os.Stdout)
	if err != nil {
		return export.Table{}, err
	}
	return res.Table, nil
}

// fetchAll pages through the session in ascending offset order and returns
// the accumulated records and the number of pages requested. Nothing is
// sized from the server-reported count beyond a single page.
func fetchAll(ctx context.Context, f Fetcher, s types.SearchSession, pageSize int, progress io.Writer, log zerolog.Logger) ([]types.ArticleRecord, int, error) {
	records := make([]types.ArticleRecord, 0, min(max(s.Count, 0), pageSize))

	pages := 0
	for start := range offsets(s.Count, pageSize) {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		body, err := f.FetchSummaries(ctx, s, start, pageSize)
		if err != nil {
			return nil, 0, fmt.Errorf("fetching page at %d: %w", start, err)
		}
		page, err := eutils.ParseSummaries(body)
		if err != nil {
			return nil, 0, fmt.Errorf("parsing page at %d: %w", start, err)
		}
		pages++

		if want := min(pageSize, s.Count-start); len(page) < want {
			log.Warn().Int("retstart", start).Int("got", len(page)).Int("want", want).Msg("short page")
		}

		records = append(records, page...)
		fmt.Fprintf(progress, "Fetched %d of %d articles\n", start+len(page), s.Count)
	}
	return records, pages, nil
}

// Offsets returns the retstart values 0, pageSize, 2*pageSize, ... that are
// below total. Its length is PageCount(total, pageSize).
func Offsets(total, pageSize int) []int {
	return slices.Collect(offsets(total, pageSize))
}

// PageCount returns ceil(total/pageSize), or 0 when either is not positive.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	n := total / pageSize
	if total%pageSize != 0 {
		n++
	}
	return n
}

// offsets yields the retstart values lazily. It stops before start+pageSize
// could overflow.
func offsets(total, pageSize int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if total <= 0 || pageSize <= 0 {
			return
		}
		for start := 0; ; start += pageSize {
			if !yield(start) {
				return
			}
			if start >= total-pageSize {
				return
			}
		}
	}
}

func manifest(p Params, res Result, at time.Time) export.Manifest {
	return export.Manifest{
		RunID: res.RunID,
		Query: export.ManifestQuery{
			Term:       p.Term,
			Expression: res.Expression,
			StartYear:  res.Window.StartYear,
			EndYear:    res.Window.EndYear,
			PageSize:   p.PageSize,
			Email:      p.Email,
		},
		Result: export.ManifestResult{
			Total:     res.Session.Count,
			Fetched:   len(res.Records),
			Pages:     res.Pages,
			Timestamp: at.UTC(),
		},
		Output: export.ManifestOutput{
			Path:   p.Export.Output,
			Format: string(res.Format),
		},
	}
}
