// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirseerhq/zenoti-relay/internal/config"
	relayerrors "github.com/sirseerhq/zenoti-relay/internal/errors"
	"github.com/sirseerhq/zenoti-relay/internal/output"
	"github.com/sirseerhq/zenoti-relay/internal/report"
	"github.com/sirseerhq/zenoti-relay/internal/zenoti"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// wire format for --since/--until and the output filename date
const cliDateFormat = "2006-01-02"

// fetchCmd represents the fetch command
func newFetchCommand() *cobra.Command {
	var (
		settingsPath string
		tenantsPath  string
		since        string
		until        string
		outputDir    string
		reportName   string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [org...]",
		Short: "Fetch vendor data and export it to an Excel workbook",
		Long: `Fetch vendor records for one or more organizations and export them to a
single Excel workbook with one sheet per organization.

Organizations are given as positional arguments; with none, every
organization in the tenant config is fetched. The reporting window
defaults to the first day of last month's calendar month through
yesterday, and can be overridden with --since and --until
(format: YYYY-MM-DD).

The tenant config is a JSON file mapping organizations to Zenoti API
keys and carrying the center-ID-to-name tables:
  - Use --tenants to point at the file directly
  - Or set the ZENOTI_TENANTS_FILE environment variable`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), args, settingsPath, tenantsPath, since, until, outputDir, reportName, verbose)
		},
	}

	cmd.Flags().StringVar(&settingsPath, "config", "", "Settings file path (default: standard locations)")
	cmd.Flags().StringVar(&tenantsPath, "tenants", "", "Tenant config JSON path (overrides settings and ZENOTI_TENANTS_FILE)")
	cmd.Flags().StringVar(&since, "since", "", "Start of the reporting window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&until, "until", "", "End of the reporting window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the workbook (default from settings)")
	cmd.Flags().StringVar(&reportName, "report-name", "", "Base name of the workbook file (default from settings)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// runFetch executes the fetch command
func runFetch(ctx context.Context, orgs []string, settingsPath, tenantsPath, since, until, outputDir, reportName string, verbose bool) error {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	// Flags take precedence over settings file and environment.
	if tenantsPath != "" {
		settings.Defaults.TenantsFile = tenantsPath
	}
	if outputDir != "" {
		settings.Defaults.OutputDir = outputDir
	}
	if reportName != "" {
		settings.Defaults.ReportName = reportName
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

	tenants, err := config.LoadTenants(settings.Defaults.TenantsFile, logger)
	if err != nil {
		return err
	}

	if len(orgs) == 0 {
		orgs = tenants.Orgs()
	}

	start, end, err := resolveDateRange(since, until, time.Now())
	if err != nil {
		return err
	}

	fetcher := zenoti.NewFetcher(tenants, settings, logger)
	builder := report.NewBuilder(tenants, fetcher, logger)

	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	var spin *spinner.Spinner
	if interactive {
		spin = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Suffix = fmt.Sprintf(" Fetching vendors for %d organization(s)...", len(orgs))
		spin.Start()
	}

	reports, err := builder.Build(ctx, orgs, start, end)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	dateStr := end.Format(cliDateFormat)
	path, err := output.ExportReports(reports, settings.Defaults.OutputDir, settings.Defaults.ReportName, dateStr, logger)
	if err != nil {
		return fmt.Errorf("failed to export workbook: %w", err)
	}

	printSummary(reports, path)
	return nil
}

// newLogger sets up the zap logger to log to stderr in a human readable format
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// resolveDateRange turns the --since/--until flags into an inclusive window.
// With both flags empty the window is the first day of yesterday's calendar
// month through yesterday.
func resolveDateRange(since, until string, now time.Time) (time.Time, time.Time, error) {
	start, end := defaultDateRange(now)

	if until != "" {
		parsed, err := time.Parse(cliDateFormat, until)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --until date %q: expected YYYY-MM-DD", until)
		}
		end = parsed
		// Without an explicit start, anchor to the until month.
		if since == "" {
			start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
		}
	}
	if since != "" {
		parsed, err := time.Parse(cliDateFormat, since)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --since date %q: expected YYYY-MM-DD", since)
		}
		start = parsed
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("date range is inverted: %s is after %s",
			start.Format(cliDateFormat), end.Format(cliDateFormat))
	}

	return start, end, nil
}

// defaultDateRange returns yesterday's calendar month so far: the first day
// of the month containing yesterday, through yesterday.
func defaultDateRange(now time.Time) (time.Time, time.Time) {
	end := now.AddDate(0, 0, -1)
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	return start, end
}

// printSummary renders the per-organization record counts and the workbook
// path to stdout.
func printSummary(reports map[string]*report.Table, path string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Organization", "Vendors")

	total := 0
	for _, org := range sortedKeys(reports) {
		table.Append(org, fmt.Sprintf("%d", reports[org].Len()))
		total += reports[org].Len()
	}
	table.Render()

	green := color.New(color.FgGreen, color.Bold)
	green.Printf("Saved %d vendor(s) across %d sheet(s) to %s\n", total, len(reports), path)
}

func sortedKeys(reports map[string]*report.Table) []string {
	keys := make([]string, 0, len(reports))
	for k := range reports {
		keys = append(keys, k)
	}
	// Sheet order in the workbook is sorted too; keep the summary aligned.
	sort.Strings(keys)
	return keys
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, relayerrors.ErrConfigNotFound) ||
		errors.Is(err, relayerrors.ErrConfigInvalid) ||
		errors.Is(err, relayerrors.ErrMissingAPIKey) ||
		errors.Is(err, relayerrors.ErrInvalidAPIKey) ||
		errors.Is(err, relayerrors.ErrNoValidOrgs) ||
		errors.Is(err, relayerrors.ErrRateLimit) {
		return 2 // Configuration/authentication errors
	}

	if errors.Is(err, relayerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
