// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-export/internal/eutils"
	"github.com/pdiddy/pubmed-export/internal/harvest"
	"github.com/pdiddy/pubmed-export/internal/observability"
	"github.com/pdiddy/pubmed-export/internal/secrets"
	"github.com/pdiddy/pubmed-export/pkg/types"
)

const (
	defaultUserAgent = "pubmed-export/0.1"
	defaultTool      = "pubmed-export"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <term>",
	Short: "Search PubMed and export every matching article summary",
	Long: `Fetch runs one esearch for the term restricted to publications from
January 1st, <years> years ago, through December 31st of the current year,
then pages through the server-side result set with esummary and writes
Title, Authors, Publication Date, DOI and Citation per article.

Any HTTP or parse failure aborts the run before the output file is written.
NCBI requires a contact email: pass --email, set "email" in the config file
or PUBMED_EXPORT_EMAIL, or put it in .secrets/ncbi-email.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("email", "", "contact email sent to NCBI with every request")
	fetchCmd.Flags().Int("years", eutils.DefaultYears, "lookback window in years")
	fetchCmd.Flags().Int("page-size", harvest.DefaultPageSize, "summaries per esummary request")
	fetchCmd.Flags().StringP("output", "o", harvest.DefaultOutput, "output file path")
	fetchCmd.Flags().String("format", "", "output format: csv, sqlite or csl (default: from output extension)")
	fetchCmd.Flags().String("manifest", "", "also write a YAML run manifest to this path")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default: none)")
	fetchCmd.Flags().String("base-url", "", "E-utilities base URL")

	for key, flag := range map[string]string{
		"email":     "email",
		"years":     "years",
		"page_size": "page-size",
		"output":    "output",
		"format":    "format",
		"manifest":  "manifest",
		"timeout":   "timeout",
		"base_url":  "base-url",
	} {
		viper.BindPFlag(key, fetchCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	logger := observability.NewLogger(observability.LoggingConfig{
		Level:  viper.GetString("log_level"),
		Format: viper.GetString("log_format"),
		Output: "stderr",
	})

	cfg, params, err := fetchOptions(viper.GetViper(), loadedSecrets, strings.Join(args, " "))
	if err != nil {
		return err
	}
	params.Logger = logger

	client := eutils.NewClient(cfg, logger)
	_, err = harvest.Run(cmd.Context(), client, params, cmd.OutOrStdout())
	return err
}

// fetchOptions resolves client config and run parameters from v (flags,
// env and config file, in viper precedence) with the email falling back to
// the ncbi-email secret.
func fetchOptions(v *viper.Viper, s secrets.Secrets, term string) (types.EutilsConfig, harvest.Params, error) {
	email := v.GetString("email")
	if email == "" {
		email = s.Get(secrets.EmailKey)
	}
	if email == "" {
		return types.EutilsConfig{}, harvest.Params{}, fmt.Errorf("no contact email: use --email, PUBMED_EXPORT_EMAIL, the config file, or .secrets/%s", secrets.EmailKey)
	}

	cfg := types.EutilsConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration("timeout"),
			UserAgent: defaultUserAgent,
		},
		BaseURL: v.GetString("base_url"),
		Email:   email,
		Tool:    defaultTool,
	}

	params := harvest.NewParams(term, email)
	if v.IsSet("years") {
		params.Years = v.GetInt("years")
	}
	if v.IsSet("page_size") {
		params.PageSize = v.GetInt("page_size")
	}
	if out := v.GetString("output"); out != "" {
		params.Export.Output = out
	}
	params.Export.Format = types.ExportFormat(v.GetString("format"))
	params.Export.Manifest = v.GetString("manifest")
	params.Logger = zerolog.Nop()

	return cfg, params, params.Validate()
}
